// This file is part of yasp.
//
// yasp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yasp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yasp.  If not, see <https://www.gnu.org/licenses/>.

// Package adpcm decodes the ADPCM-B format used by the delta-T unit of the
// YM2608. Samples are encoded as 4 bit deltas, two samples to a byte with the
// high nibble first.
package adpcm

// adjustment to the step size for each delta magnitude. the table values are
// multiplied by the step size and divided by 64
var stepTable = [8]int{57, 57, 57, 57, 77, 102, 128, 153}

const (
	minStep     = 127
	maxStep     = 24576
	initialStep = minStep
)

// Decoder keeps the state of an ADPCM-B stream between calls to Decode().
// The zero value is not ready for use. Use NewDecoder().
type Decoder struct {
	acc  int
	step int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder() *Decoder {
	dec := &Decoder{}
	dec.Reset()
	return dec
}

// Reset the decoder to the state at the start of a stream. The YM2608 resets
// the decoder whenever playback of a sample starts.
func (dec *Decoder) Reset() {
	dec.acc = 0
	dec.step = initialStep
}

// nibble decodes a single 4 bit delta.
func (dec *Decoder) nibble(n uint8) int16 {
	delta := (int(n&0x07)*2 + 1) * dec.step / 8
	if n&0x08 == 0x08 {
		dec.acc -= delta
	} else {
		dec.acc += delta
	}

	if dec.acc > 32767 {
		dec.acc = 32767
	} else if dec.acc < -32768 {
		dec.acc = -32768
	}

	dec.step = dec.step * stepTable[n&0x07] / 64
	if dec.step < minStep {
		dec.step = minStep
	} else if dec.step > maxStep {
		dec.step = maxStep
	}

	return int16(dec.acc)
}

// Decode appends the samples encoded in data to the samples slice. Two
// samples are decoded from every byte.
func (dec *Decoder) Decode(samples []int16, data []byte) []int16 {
	for _, b := range data {
		samples = append(samples, dec.nibble(b>>4))
		samples = append(samples, dec.nibble(b&0x0f))
	}
	return samples
}

// Decode is a convenience function that decodes a complete ADPCM-B stream.
func Decode(data []byte) []int16 {
	return NewDecoder().Decode(make([]int16, 0, len(data)*2), data)
}
