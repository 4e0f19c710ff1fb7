// SPDX-License-Identifier: EPL-2.0

// Package madtest provides test doubles for the decoder core: a scriptable
// fake engine and builders for synthetic MPEG audio streams.
package madtest

import "github.com/dzamkov/go-mad"

// FakeEngine is a scriptable mad.Engine for testing decode orchestration
// without real bitstream work. Each DecodeFrame call consumes the next code
// from Script (ErrBufferLen once the script runs out); a successful decode
// advances the cursor by FrameSize bytes. SynthFrame returns PCM, or the
// next code from SynthErrs when non-empty.
//
// Call counters and the recorded Bind arguments let tests assert engine-call
// discipline, e.g. that repeated SynthFrame calls hit the engine only once.
type FakeEngine struct {
	Script    []mad.Error
	FrameSize int
	PCM       mad.PCM
	SynthErrs []mad.Error

	Binds       [][]byte
	DecodeCalls int
	SynthCalls  int
	CloseCalls  int

	data []byte
	cur  int
	next int
}

// NewFakeEngine returns a fake whose successful decodes advance frameSize
// bytes and whose synthesis yields pcm.
func NewFakeEngine(frameSize int, pcm mad.PCM, script ...mad.Error) *FakeEngine {
	return &FakeEngine{
		Script:    script,
		FrameSize: frameSize,
		PCM:       pcm,
	}
}

// SilentPCM returns a mono frame of silence at the given rate.
func SilentPCM(sampleRate int) mad.PCM {
	return mad.PCM{
		SampleRate: sampleRate,
		Channels:   1,
		Samples:    make([]int16, mad.FrameSampleCount),
	}
}

func (f *FakeEngine) Bind(data []byte) {
	f.Binds = append(f.Binds, data)
	f.data = data
	f.cur = 0
	f.next = 0
}

func (f *FakeEngine) DecodeFrame() mad.Error {
	f.DecodeCalls++
	if len(f.Script) == 0 {
		return mad.ErrBufferLen
	}
	code := f.Script[0]
	f.Script = f.Script[1:]
	if code == mad.ErrNone {
		f.cur = f.next
		f.next += f.FrameSize
		if f.next > len(f.data) {
			f.next = len(f.data)
		}
	}
	return code
}

func (f *FakeEngine) SynthFrame() (mad.PCM, mad.Error) {
	f.SynthCalls++
	if len(f.SynthErrs) > 0 {
		code := f.SynthErrs[0]
		f.SynthErrs = f.SynthErrs[1:]
		if code != mad.ErrNone {
			return mad.PCM{}, code
		}
	}
	return f.PCM, mad.ErrNone
}

func (f *FakeEngine) CurrentFrame() int { return f.cur }
func (f *FakeEngine) NextFrame() int    { return f.next }

func (f *FakeEngine) Close() error {
	f.CloseCalls++
	return nil
}
