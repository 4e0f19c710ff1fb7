// SPDX-License-Identifier: EPL-2.0

package mad

import "io"

// FrameSampleCount is the number of samples per channel in a decoded frame.
// It is fixed by the MPEG layer's frame granularity, not configurable.
const FrameSampleCount = 1152

// Decoder drives an Engine over a caller-owned input buffer, one frame at a
// time. It tracks the cursor position, the validity of the last decoded
// frame, the last synthesized PCM and the last classified error.
//
// The zero value is not usable; create instances with NewDecoder and release
// them with Close. A Decoder must not be used from multiple goroutines
// without external synchronization.
type Decoder struct {
	engine Engine
	input  []byte
	bound  bool
	closed bool

	err        Error
	frameValid bool
	synthDone  bool
	pcm        PCM
}

// NewDecoder creates a Decoder driving e. It panics if e is nil; passing no
// engine is a programming error, not a runtime condition.
func NewDecoder(e Engine) *Decoder {
	if e == nil {
		panic("mad: NewDecoder called with nil engine")
	}
	return &Decoder{engine: e}
}

// Close releases the decoder. If the engine implements io.Closer its Close
// error is returned. After Close every operation is a no-op and every
// accessor reports its zero value. Close is idempotent.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.input = nil
	d.bound = false
	d.frameValid = false
	d.synthDone = false
	d.err = ErrNone
	d.pcm = PCM{}
	if c, ok := d.engine.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SetInput binds data as the input buffer and resets the read position to
// its start. The decoder never mutates data; it must remain valid and
// unchanged until rebound or Close. Any previously decoded frame or
// synthesized output becomes stale. A zero-length buffer is accepted; the
// next DecodeFrame then reports ErrBufferLen.
func (d *Decoder) SetInput(data []byte) {
	if d.closed {
		return
	}
	d.input = data
	d.bound = true
	d.frameValid = false
	d.synthDone = false
	d.err = ErrNone
	d.engine.Bind(data)
}

// DecodeFrame decodes the next frame from the input buffer, advancing the
// cursor. It returns false if an error occurred; the code is then available
// through Err, and Recoverable tells whether retrying DecodeFrame makes
// sense. Decoding before SetInput, or after Close, fails with ErrBufferPtr.
func (d *Decoder) DecodeFrame() bool {
	if d.closed || !d.bound {
		if !d.closed {
			d.err = ErrBufferPtr
		}
		return false
	}
	code := d.engine.DecodeFrame()
	if code != ErrNone {
		d.err = code
		d.frameValid = false
		return false
	}
	d.frameValid = true
	d.synthDone = false
	return true
}

// SynthFrame synthesizes PCM samples for the frame decoded by the last
// successful DecodeFrame. On success SampleRate, Channels and Output reflect
// that frame until the next synthesized frame replaces them. Calling
// SynthFrame again without an intervening DecodeFrame is an idempotent read:
// the engine runs once per decoded frame and later calls return the cached
// result.
//
// It returns ErrClosed after Close and ErrNoFrame when no valid decoded
// frame exists. An engine synthesis failure is returned as its Error code,
// which is also recorded for Err/Recoverable/ErrorMessage.
func (d *Decoder) SynthFrame() error {
	if d.closed {
		return ErrClosed
	}
	if !d.frameValid {
		return ErrNoFrame
	}
	if d.synthDone {
		return nil
	}
	pcm, code := d.engine.SynthFrame()
	if code != ErrNone {
		d.err = code
		d.frameValid = false
		return code
	}
	d.pcm = pcm
	d.synthDone = true
	return nil
}

// CurrentFrame returns the byte offset within the input buffer of the most
// recently decoded frame (0 before the first decode). The bytes before it
// have been consumed.
func (d *Decoder) CurrentFrame() int {
	if d.closed {
		return 0
	}
	return d.engine.CurrentFrame()
}

// NextFrame returns the byte offset within the input buffer at which the
// next DecodeFrame will begin. After an ErrBufferLen failure, input from
// NextFrame on holds an incomplete frame tail: carry input[d.NextFrame():]
// into the next SetInput when appending data.
func (d *Decoder) NextFrame() int {
	if d.closed {
		return 0
	}
	return d.engine.NextFrame()
}

// SampleRate returns the sample rate in Hz of the last synthesized frame,
// or 0 if no frame has been synthesized.
func (d *Decoder) SampleRate() int { return d.pcm.SampleRate }

// Channels returns the channel count of the last synthesized frame, or 0 if
// no frame has been synthesized.
func (d *Decoder) Channels() int { return d.pcm.Channels }

// Output returns the samples of the last synthesized frame: Channels
// interleaved channels, FrameSampleCount samples each. The slice borrows
// engine memory and is invalidated by the next synthesized frame; copy it
// (see PCM.IntBuffer) if it must outlive that.
func (d *Decoder) Output() []int16 { return d.pcm.Samples }

// Err returns the last recorded error code. A successful DecodeFrame does
// not clear it; use SetErr(ErrNone) to acknowledge an error explicitly.
func (d *Decoder) Err() Error { return d.err }

// SetErr overwrites the recorded error code. Callers use it to clear a
// recoverable error before resuming the decode loop.
func (d *Decoder) SetErr(e Error) {
	if d.closed {
		return
	}
	d.err = e
}

// Recoverable reports whether the recorded error allows decoding to resume
// from NextFrame. It is false for ErrNone, buffer and memory conditions.
func (d *Decoder) Recoverable() bool { return d.err.Recoverable() }

// ErrorMessage returns the diagnostic text for the recorded error code.
func (d *Decoder) ErrorMessage() string {
	if d.closed {
		return ""
	}
	return d.err.Error()
}
