// SPDX-License-Identifier: EPL-2.0

package gomp3

import (
	"encoding/binary"
	"io"

	"github.com/hajimehoshi/go-mp3"

	mad "github.com/dzamkov/go-mad"
)

// frameBytes is the PCM byte size of one frame as emitted by go-mp3:
// 1152 samples, 2 channels, 2 bytes per sample.
const frameBytes = mad.FrameSampleCount * 2 * 2

// mp3Reader is the part of mp3.Decoder the synthesis layer uses, split out
// so tests can substitute it.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Engine decodes MPEG-1 Layer III audio. Frame synchronization, header
// validation and CRC checking are handled natively; sample reconstruction
// for accepted frames is delegated to github.com/hajimehoshi/go-mp3.
//
// Output convention: SynthFrame always yields 2-channel interleaved signed
// 16-bit samples at the frame's sample rate. Mono frames are decoded with
// both channels carrying the same signal, following go-mp3.
type Engine struct {
	data   []byte
	bound  bool
	cur    int
	next   int
	synced bool

	queue    frameQueue
	pending  int // frames queued but not yet drained from the decoder
	lastRate int
	dec      mp3Reader
	frame    []byte
	samples  []int16
	pcm      mad.PCM
	havePCM  bool
}

// New returns an Engine with no input bound.
func New() *Engine {
	return &Engine{}
}

// Bind sets the input window and resets synchronization and synthesis
// state. Frames decoded from a previous binding are discarded.
func (e *Engine) Bind(data []byte) {
	e.data = data
	e.bound = true
	e.cur = 0
	e.next = 0
	e.synced = true
	e.resetSynth()
	e.pcm = mad.PCM{}
	e.havePCM = false
}

// DecodeFrame scans for and validates one frame at the current position.
//
// Position policy on failure: mad.ErrBufferLen leaves NextFrame at the start
// of the incomplete frame so the caller can rebind the tail with more data
// appended; mad.ErrLostSync leaves it at the byte where synchronization was
// lost, and the retry scans silently from there; header-field errors resume
// scanning one byte further; mad.ErrBadLayer and mad.ErrBadCRC on a sizable
// frame skip it whole, so the retry decodes the following frame.
func (e *Engine) DecodeFrame() mad.Error {
	if !e.bound {
		return mad.ErrBufferPtr
	}
	pos := e.next
	for {
		rem := len(e.data) - pos
		if rem < 4 {
			e.next = pos
			return mad.ErrBufferLen
		}
		if n := id3v2Len(e.data[pos:]); n > 0 {
			if rem < n {
				e.next = pos
				return mad.ErrBufferLen
			}
			pos += n
			continue
		}
		if e.data[pos] != 0xFF || e.data[pos+1]&0xE0 != 0xE0 {
			if e.synced {
				e.synced = false
				e.next = pos
				return mad.ErrLostSync
			}
			pos++
			continue
		}
		h, code := parseHeader(e.data[pos:])
		if code == mad.ErrLostSync {
			// reserved version bits: a false sync, not a frame
			if e.synced {
				e.synced = false
				e.next = pos
				return mad.ErrLostSync
			}
			pos++
			continue
		}
		if code != mad.ErrNone {
			// invalid header field; the frame cannot be sized, so the
			// retry rescans just past this sync word
			e.synced = false
			e.next = pos + 1
			return code
		}
		length := h.frameLen()
		if rem < length {
			e.next = pos
			return mad.ErrBufferLen
		}
		if h.version != version1 || h.layer != layerIII {
			// syntactically valid but outside this engine's decode scope
			e.cur = pos
			e.next = pos + length
			return mad.ErrBadLayer
		}
		if h.protected && !crcOK(e.data[pos:pos+length], h) {
			e.cur = pos
			e.next = pos + length
			return mad.ErrBadCRC
		}
		e.cur = pos
		e.next = pos + length
		e.synced = true
		e.queue.push(e.data[pos : pos+length])
		e.pending++
		e.lastRate = h.sampleRate
		return mad.ErrNone
	}
}

// SynthFrame produces the PCM of the most recently decoded frame. Frames
// that were decoded but never synthesized are drained first, so the output
// always corresponds to the frame CurrentFrame points at. The sample slice
// is reused across calls.
func (e *Engine) SynthFrame() (mad.PCM, mad.Error) {
	if e.pending == 0 {
		if e.havePCM {
			return e.pcm, mad.ErrNone
		}
		return mad.PCM{}, mad.ErrBufferLen
	}
	if e.dec == nil {
		dec, err := mp3.NewDecoder(&e.queue)
		if err != nil {
			e.resetSynth()
			return mad.PCM{}, mad.ErrBadDataPtr
		}
		e.dec = dec
	}
	if e.frame == nil {
		e.frame = make([]byte, frameBytes)
		e.samples = make([]int16, frameBytes/2)
	}
	for e.pending > 0 {
		if _, err := io.ReadFull(e.dec, e.frame); err != nil {
			// starved bit reservoir or corrupt main data; restart the
			// synthesis pipeline so the next decoded frame begins clean
			e.resetSynth()
			return mad.PCM{}, mad.ErrBadDataPtr
		}
		e.pending--
	}
	for i := range e.samples {
		e.samples[i] = int16(binary.LittleEndian.Uint16(e.frame[2*i:]))
	}
	e.pcm = mad.PCM{SampleRate: e.lastRate, Channels: 2, Samples: e.samples}
	e.havePCM = true
	return e.pcm, mad.ErrNone
}

// CurrentFrame returns the offset of the most recently decoded frame.
func (e *Engine) CurrentFrame() int { return e.cur }

// NextFrame returns the offset where the next decode attempt begins.
func (e *Engine) NextFrame() int { return e.next }

func (e *Engine) resetSynth() {
	e.dec = nil
	e.queue = frameQueue{}
	e.pending = 0
	e.havePCM = false
}

// frameQueue feeds accepted frame bytes to the go-mp3 decoder. go-mp3 only
// ever sees whole validated frames, so it never has to scan or resync.
type frameQueue struct {
	buf []byte
	off int
}

func (q *frameQueue) push(frame []byte) {
	if q.off > 0 && q.off == len(q.buf) {
		q.buf = q.buf[:0]
		q.off = 0
	}
	q.buf = append(q.buf, frame...)
}

func (q *frameQueue) Read(p []byte) (int, error) {
	if q.off >= len(q.buf) {
		return 0, io.EOF
	}
	n := copy(p, q.buf[q.off:])
	q.off += n
	return n, nil
}
