// SPDX-License-Identifier: EPL-2.0

// Package mad provides frame-oriented pull decoding of MPEG audio data.
//
// The package turns a flat byte buffer of compressed MPEG audio into a
// sequence of decoded frames, each yielding 16-bit PCM samples plus metadata
// (sample rate, channel count). It is an orchestration layer: the actual
// bitstream reconstruction is performed by an Engine (see engine/gomp3 for
// the default pure-Go engine).
//
// # Decode Loop
//
// The Decoder is driven one frame at a time:
//
//	d := mad.NewDecoder(gomp3.New())
//	defer d.Close()
//
//	d.SetInput(data)
//	for {
//	    if !d.DecodeFrame() {
//	        if d.Recoverable() {
//	            continue // engine resynchronizes, retry
//	        }
//	        break // end of buffer or fatal error
//	    }
//	    if err := d.SynthFrame(); err != nil {
//	        continue
//	    }
//	    // d.Output() holds FrameSampleCount samples per channel at
//	    // d.SampleRate() Hz, valid until the next SynthFrame.
//	}
//
// # Errors
//
// Decode-time failures never panic. DecodeFrame returns false and records an
// Error code queryable through Err, ErrorMessage and Recoverable. Recoverable
// codes (lost synchronization, malformed frame content) mean the engine has
// repositioned itself and the caller may simply retry DecodeFrame; the
// distinguished ErrBufferLen code means the buffer ended before a full frame
// and the caller should bind more data. Unrecoverable codes mean decoding of
// this stream must stop.
//
// # Output Lifetime
//
// The sample slice returned by Output borrows engine-internal memory. It is
// valid only until the next frame is synthesized; callers that need the
// samples afterwards must copy them first, for example with PCM.IntBuffer.
//
// # Streaming
//
// For callers that just want PCM and do not care about per-frame control,
// Reader wraps the decode loop behind io.Reader:
//
//	r, err := mad.NewReader(gomp3.New(), data)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	// r yields little-endian int16 PCM at r.SampleRate(), r.Channels().
//
// # Concurrency
//
// A Decoder is single-threaded: no locks, no goroutines, no shared state
// between instances. Callers wanting parallel decoding run independent
// Decoder instances, each with its own Engine.
package mad
