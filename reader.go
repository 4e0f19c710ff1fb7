// SPDX-License-Identifier: EPL-2.0

package mad

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader streams decoded PCM from an input buffer through io.Reader. It
// wraps the Decoder's frame loop with the standard retry policy: recoverable
// errors are skipped, running out of input maps to io.EOF, anything else
// becomes a sticky read error.
//
// Read yields little-endian signed 16-bit samples, interleaved by channel,
// at the rate and channel count of the first decoded frame.
type Reader struct {
	dec *Decoder

	sampleRate int
	channels   int
	buf        []byte // remaining bytes of the current frame
	err        error  // sticky; io.EOF at end of input
}

// NewReader binds data to a new Decoder over e and decodes the first frame.
// It fails if the buffer contains no decodable frame. The Reader owns the
// Decoder; Close releases it.
func NewReader(e Engine, data []byte) (*Reader, error) {
	r := &Reader{dec: NewDecoder(e)}
	r.dec.SetInput(data)
	if err := r.nextFrame(); err != nil {
		r.dec.Close()
		return nil, fmt.Errorf("mad: no decodable frame: %w", err)
	}
	r.sampleRate = r.dec.SampleRate()
	r.channels = r.dec.Channels()
	return r, nil
}

// SampleRate returns the stream's sample rate in Hz.
func (r *Reader) SampleRate() int { return r.sampleRate }

// Channels returns the stream's channel count.
func (r *Reader) Channels() int { return r.channels }

// Read fills p with PCM bytes. It returns io.EOF once the input buffer has
// no further complete frame.
func (r *Reader) Read(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if len(r.buf) == 0 {
			if r.err != nil {
				if total > 0 {
					return total, nil
				}
				return 0, r.err
			}
			if err := r.nextFrame(); err != nil {
				r.err = err
				continue
			}
		}
		n := copy(p, r.buf)
		r.buf = r.buf[n:]
		p = p[n:]
		total += n
	}
	return total, nil
}

// nextFrame decodes and synthesizes one frame, refilling r.buf. Recoverable
// decode errors are cleared and retried; ErrBufferLen becomes io.EOF.
func (r *Reader) nextFrame() error {
	for {
		if r.dec.DecodeFrame() {
			if err := r.dec.SynthFrame(); err != nil {
				if code, ok := err.(Error); ok && code.Recoverable() {
					r.dec.SetErr(ErrNone)
					continue
				}
				return err
			}
			r.fill(r.dec.Output())
			return nil
		}
		code := r.dec.Err()
		if code == ErrBufferLen {
			return io.EOF
		}
		if code.Recoverable() {
			r.dec.SetErr(ErrNone)
			continue
		}
		return code
	}
}

func (r *Reader) fill(samples []int16) {
	need := len(samples) * 2
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	r.buf = r.buf[:need]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(r.buf[2*i:], uint16(s))
	}
}

// Close releases the underlying Decoder. Further reads return ErrClosed.
func (r *Reader) Close() error {
	r.err = ErrClosed
	return r.dec.Close()
}
