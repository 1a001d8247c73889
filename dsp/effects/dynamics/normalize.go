package dynamics

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/stats/level"
)

// normalizeBlock is the length of the constant gain vector Normalize
// multiplies through, independent of the buffer length.
const normalizeBlock = 1024

// Peak returns the largest absolute sample over all channels of buf.
func Peak(buf *buffer.AudioBuffer) float64 {
	return level.Buffer(buf).Peak
}

// Normalize scales buf in place so that its peak is at most 1. Buffers that
// already peak at or below 1 are left untouched, which makes repeated calls
// a no-op. It is meant for the reference path, whose makeup gain can push
// samples past full scale.
func Normalize(buf *buffer.AudioBuffer) {
	if buf.IsEmpty() {
		return
	}

	peak := Peak(buf)
	if !(peak > 1) || math.IsInf(peak, 1) {
		return
	}

	// 1/peak can round up; step down until the peak lands on or below 1.
	scale := 1 / peak
	for peak*scale > 1 {
		scale = math.Nextafter(scale, 0)
	}

	gains := make([]float64, min(buf.Len(), normalizeBlock))
	for i := range gains {
		gains[i] = scale
	}
	for c := 0; c < buf.Channels(); c++ {
		ch := buf.Channel(c)
		for start := 0; start < len(ch); start += len(gains) {
			block := ch[start:min(start+len(gains), len(ch))]
			vecmath.MulBlockInPlace(block, gains[:len(block)])
		}
	}
}
