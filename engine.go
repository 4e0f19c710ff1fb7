// SPDX-License-Identifier: EPL-2.0

package mad

// Engine is the decoding engine a Decoder drives. It performs the actual
// bitstream work: frame synchronization and parsing in DecodeFrame, sample
// reconstruction in SynthFrame. The default implementation is engine/gomp3.
//
// An Engine is stateful and owned by exactly one Decoder. Engines that hold
// resources may additionally implement io.Closer; Decoder.Close forwards to
// it.
type Engine interface {
	// Bind sets the input window for subsequent decode calls and resets the
	// engine's synchronization state. The engine reads from data but never
	// mutates it; data must stay valid and unchanged while bound.
	Bind(data []byte)

	// DecodeFrame attempts to decode exactly one frame starting at the
	// current position. It returns ErrNone on success, having advanced the
	// position past the frame. On failure it returns the code describing why
	// and leaves the position wherever decoding stopped; for recoverable
	// codes a retry continues from there.
	DecodeFrame() Error

	// SynthFrame produces PCM for the most recently decoded frame. The
	// returned sample slice aliases engine-internal memory and is valid only
	// until the next SynthFrame call.
	SynthFrame() (PCM, Error)

	// CurrentFrame returns the byte offset of the most recently decoded
	// frame within the bound input.
	CurrentFrame() int

	// NextFrame returns the byte offset where the next decode attempt will
	// begin.
	NextFrame() int
}

// PCM is one synthesized frame of audio.
//
// Samples holds Channels interleaved channels of signed 16-bit samples,
// FrameSampleCount per channel. The slice borrows engine memory: it is
// overwritten by the engine's next SynthFrame. Callers needing the samples
// beyond that must copy them, e.g. via IntBuffer.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}
