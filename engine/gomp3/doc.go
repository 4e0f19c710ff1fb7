// SPDX-License-Identifier: EPL-2.0

// Package gomp3 is the default mad.Engine, decoding MPEG-1 Layer III audio.
//
// The engine splits frame processing in two layers. The stream layer is
// native: it skips ID3v2 tags, scans for the frame sync word, parses and
// validates the full MPEG header (all versions and layers), sizes the frame,
// and verifies the CRC-16 of protected frames. The synthesis layer hands the
// bytes of accepted frames to github.com/hajimehoshi/go-mp3, which performs
// the Huffman decoding, requantization and polyphase synthesis.
//
// # Decode Scope
//
// Only MPEG-1 Layer III frames are synthesized; they are what gives every
// frame the fixed 1152-samples-per-channel granularity. Frames of other
// versions or layers are recognized, sized and reported as mad.ErrBadLayer,
// and a retry after that error continues past them.
//
// # Output Convention
//
// PCM is always 2-channel interleaved signed 16-bit at the frame's sample
// rate. Mono streams are emitted with the signal duplicated on both
// channels. This is go-mp3's convention, surfaced unchanged.
//
// # Error Positions
//
// After mad.ErrBufferLen, NextFrame is the offset of the incomplete frame at
// the buffer tail. A caller feeding a stream incrementally appends new data
// to input[NextFrame():] and rebinds:
//
//	if !d.DecodeFrame() && d.Err() == mad.ErrBufferLen {
//	    input = append(input[d.NextFrame():], more...)
//	    d.SetInput(input)
//	}
package gomp3
