// SPDX-License-Identifier: EPL-2.0

package mad

// fakeEngine is a minimal scriptable Engine for white-box tests. A shared
// version lives in internal/madtest; importing it here would cycle, so the
// fake is duplicated in its simplest form.
type fakeEngine struct {
	script    []Error
	frameSize int
	pcm       PCM
	synthErrs []Error

	binds       int
	decodeCalls int
	synthCalls  int
	closeCalls  int

	data []byte
	cur  int
	next int
}

func newFakeEngine(frameSize int, pcm PCM, script ...Error) *fakeEngine {
	return &fakeEngine{script: script, frameSize: frameSize, pcm: pcm}
}

func (f *fakeEngine) Bind(data []byte) {
	f.binds++
	f.data = data
	f.cur = 0
	f.next = 0
}

func (f *fakeEngine) DecodeFrame() Error {
	f.decodeCalls++
	if len(f.script) == 0 {
		return ErrBufferLen
	}
	code := f.script[0]
	f.script = f.script[1:]
	if code == ErrNone {
		f.cur = f.next
		f.next += f.frameSize
		if f.next > len(f.data) {
			f.next = len(f.data)
		}
	}
	return code
}

func (f *fakeEngine) SynthFrame() (PCM, Error) {
	f.synthCalls++
	if len(f.synthErrs) > 0 {
		code := f.synthErrs[0]
		f.synthErrs = f.synthErrs[1:]
		if code != ErrNone {
			return PCM{}, code
		}
	}
	return f.pcm, ErrNone
}

func (f *fakeEngine) CurrentFrame() int { return f.cur }
func (f *fakeEngine) NextFrame() int    { return f.next }

func (f *fakeEngine) Close() error {
	f.closeCalls++
	return nil
}

func stereoPCM(rate int) PCM {
	return PCM{
		SampleRate: rate,
		Channels:   2,
		Samples:    make([]int16, FrameSampleCount*2),
	}
}
