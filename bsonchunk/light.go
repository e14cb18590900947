package bsonchunk

import "github.com/oriumgames/hytile/codec"

// LightLevel is the uniform value baked into a section's full-sky
// octree (§4.6).
type LightLevel uint16

const (
	LightFull LightLevel = 0xF000
	LightDark LightLevel = 0x0000
)

// WriteLightOctree writes one local-or-global light entry: a change id
// of 0, has_data=true, and a uniform octree of the given level
// (§4.4 step 6).
func WriteLightOctree(w *codec.Writer, level LightLevel) {
	w.WriteU16(0)    // change_id
	w.WriteBool(true) // has_data
	w.WriteI32(17)   // octree byte length: 1 mask byte + 8 u16 values
	w.WriteU8(0)     // mask
	for i := 0; i < 8; i++ {
		w.WriteU16(uint16(level))
	}
}

// skipLightData consumes the local and global light entries written by
// two WriteLightOctree calls.
func skipLightData(r *codec.Reader) error {
	for i := 0; i < 2; i++ {
		if _, err := r.ReadU16(); err != nil { // change_id
			return err
		}
		has, err := r.ReadBool()
		if err != nil {
			return err
		}
		if has {
			if _, err := r.ReadI32(); err != nil { // len
				return err
			}
			if _, err := r.ReadU8(); err != nil { // mask
				return err
			}
			for j := 0; j < 8; j++ {
				if _, err := r.ReadU16(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
