// SPDX-License-Identifier: EPL-2.0

package mad

import "github.com/go-audio/audio"

// IntBuffer copies the frame into a go-audio IntBuffer. The returned buffer
// owns its data, so it stays valid after the engine's next SynthFrame
// overwrites Samples. Use it to hand frames to go-audio consumers such as
// the wav encoder, or simply as the persistence escape hatch for the
// borrowed Samples view.
func (p PCM) IntBuffer() *audio.IntBuffer {
	data := make([]int, len(p.Samples))
	for i, s := range p.Samples {
		data[i] = int(s)
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: p.Channels,
			SampleRate:  p.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
