package view

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/animparty/animated"
)

// Recorder folds every style written to its elements into one running hash.
// Two runs that apply the same values in the same order end with the same
// digest.
type Recorder struct {
	digest *xxhash.Digest
	writes int
	buf    [8]byte
}

func NewRecorder() *Recorder {
	return &Recorder{digest: xxhash.New()}
}

func (r *Recorder) record(element string, values animated.StyleValues) {
	r.writes++
	r.digest.WriteString(element)
	for _, name := range values.Keys() {
		r.digest.WriteString(name)
		r.float(values.Properties[name])
	}
	for _, t := range values.Transform {
		r.digest.WriteString(t.Name)
		r.float(t.Value)
	}
}

func (r *Recorder) float(f float64) {
	binary.LittleEndian.PutUint64(r.buf[:], math.Float64bits(f))
	r.digest.Write(r.buf[:])
}

func (r *Recorder) Digest() uint64 {
	return r.digest.Sum64()
}

// Writes is the number of styles recorded.
func (r *Recorder) Writes() int {
	return r.writes
}
