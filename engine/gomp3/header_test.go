// SPDX-License-Identifier: EPL-2.0

package gomp3

import (
	"testing"

	mad "github.com/dzamkov/go-mad"
	"github.com/dzamkov/go-mad/internal/madtest"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bytes   [4]byte
		code    mad.Error
		version int
		layer   int
		bitrate int
		rate    int
		mode    int
	}{
		{
			name:    "mpeg1 layer3 128k 44100 mono",
			bytes:   [4]byte{0xFF, 0xFB, 0x90, 0xC0},
			code:    mad.ErrNone,
			version: version1, layer: layerIII,
			bitrate: 128000, rate: 44100, mode: modeMono,
		},
		{
			name:    "mpeg1 layer3 320k 48000 stereo",
			bytes:   [4]byte{0xFF, 0xFB, 0xE4, 0x00},
			code:    mad.ErrNone,
			version: version1, layer: layerIII,
			bitrate: 320000, rate: 48000, mode: modeStereo,
		},
		{
			name:    "mpeg1 layer2",
			bytes:   [4]byte{0xFF, 0xFD, 0x90, 0xC0},
			code:    mad.ErrNone,
			version: version1, layer: layerII,
			bitrate: 160000, rate: 44100, mode: modeMono,
		},
		{
			name:    "mpeg1 layer1",
			bytes:   [4]byte{0xFF, 0xFF, 0x90, 0xC0},
			code:    mad.ErrNone,
			version: version1, layer: layerI,
			bitrate: 288000, rate: 44100, mode: modeMono,
		},
		{
			name:    "mpeg2 layer3 64k 22050",
			bytes:   [4]byte{0xFF, 0xF3, 0x80, 0xC0},
			code:    mad.ErrNone,
			version: version2, layer: layerIII,
			bitrate: 64000, rate: 22050, mode: modeMono,
		},
		{
			name:    "mpeg2.5 layer3 8k 11025",
			bytes:   [4]byte{0xFF, 0xE3, 0x10, 0xC0},
			code:    mad.ErrNone,
			version: version25, layer: layerIII,
			bitrate: 8000, rate: 11025, mode: modeMono,
		},
		{
			name:  "reserved version is a false sync",
			bytes: [4]byte{0xFF, 0xEB, 0x90, 0xC0},
			code:  mad.ErrLostSync,
		},
		{
			name:  "reserved layer",
			bytes: [4]byte{0xFF, 0xF9, 0x90, 0xC0},
			code:  mad.ErrBadLayer,
		},
		{
			name:  "forbidden bitrate index",
			bytes: [4]byte{0xFF, 0xFB, 0xF0, 0xC0},
			code:  mad.ErrBadBitRate,
		},
		{
			name:  "free format bitrate",
			bytes: [4]byte{0xFF, 0xFB, 0x00, 0xC0},
			code:  mad.ErrBadBitRate,
		},
		{
			name:  "reserved sample rate index",
			bytes: [4]byte{0xFF, 0xFB, 0x9C, 0xC0},
			code:  mad.ErrBadSampleRate,
		},
		{
			name:  "reserved emphasis",
			bytes: [4]byte{0xFF, 0xFB, 0x90, 0xC2},
			code:  mad.ErrBadEmphasis,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, code := parseHeader(tt.bytes[:])
			if code != tt.code {
				t.Fatalf("parseHeader() code = %#04x, want %#04x", int(code), int(tt.code))
			}
			if code != mad.ErrNone {
				return
			}
			if h.version != tt.version || h.layer != tt.layer {
				t.Errorf("version/layer = %d/%d, want %d/%d", h.version, h.layer, tt.version, tt.layer)
			}
			if h.bitrate != tt.bitrate {
				t.Errorf("bitrate = %d, want %d", h.bitrate, tt.bitrate)
			}
			if h.sampleRate != tt.rate {
				t.Errorf("sampleRate = %d, want %d", h.sampleRate, tt.rate)
			}
			if h.mode != tt.mode {
				t.Errorf("mode = %d, want %d", h.mode, tt.mode)
			}
		})
	}
}

func TestFrameLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bytes [4]byte
		want  int
	}{
		// 144 * 128000 / 44100
		{"mpeg1 layer3", [4]byte{0xFF, 0xFB, 0x90, 0xC0}, 417},
		// padding adds one byte
		{"mpeg1 layer3 padded", [4]byte{0xFF, 0xFB, 0x92, 0xC0}, 418},
		// 144 * 128000 / 48000
		{"mpeg1 layer3 48k", [4]byte{0xFF, 0xFB, 0x94, 0xC0}, 384},
		// layer II: 144 * 160000 / 44100
		{"mpeg1 layer2", [4]byte{0xFF, 0xFD, 0x90, 0xC0}, 522},
		// layer I: (12 * 288000 / 44100 + 0) * 4
		{"mpeg1 layer1", [4]byte{0xFF, 0xFF, 0x90, 0xC0}, 312},
		// MPEG-2 layer III half frame: 72 * 64000 / 22050
		{"mpeg2 layer3", [4]byte{0xFF, 0xF3, 0x80, 0xC0}, 208},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, code := parseHeader(tt.bytes[:])
			if code != mad.ErrNone {
				t.Fatalf("parseHeader() code = %#04x", int(code))
			}
			if got := h.frameLen(); got != tt.want {
				t.Errorf("frameLen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSideInfoLen(t *testing.T) {
	t.Parallel()

	mono := header{mode: modeMono}
	if got := mono.sideInfoLen(); got != 17 {
		t.Errorf("mono sideInfoLen() = %d, want 17", got)
	}
	stereo := header{mode: modeStereo}
	if got := stereo.sideInfoLen(); got != 32 {
		t.Errorf("stereo sideInfoLen() = %d, want 32", got)
	}
}

func TestID3v2Len(t *testing.T) {
	t.Parallel()

	if got := id3v2Len(madtest.ID3v2(200)); got != 210 {
		t.Errorf("id3v2Len() = %d, want 210", got)
	}
	if got := id3v2Len(madtest.SilentFrame()); got != 0 {
		t.Errorf("id3v2Len(frame) = %d, want 0", got)
	}
	if got := id3v2Len([]byte("ID3")); got != 0 {
		t.Errorf("id3v2Len(truncated) = %d, want 0", got)
	}

	// a non-syncsafe size byte disqualifies the tag
	bad := madtest.ID3v2(8)
	bad[9] |= 0x80
	if got := id3v2Len(bad); got != 0 {
		t.Errorf("id3v2Len(non-syncsafe) = %d, want 0", got)
	}
}

func TestCRC(t *testing.T) {
	t.Parallel()

	frame := protectedSilentFrame()
	h, code := parseHeader(frame)
	if code != mad.ErrNone {
		t.Fatalf("parseHeader() code = %#04x", int(code))
	}
	if !h.protected {
		t.Fatal("protection bit not parsed")
	}
	if !crcOK(frame, h) {
		t.Fatal("crcOK() = false for a correctly checksummed frame")
	}

	// flipping a covered side info bit must break the check
	frame[10] ^= 0x40
	if crcOK(frame, h) {
		t.Error("crcOK() = true after side info corruption")
	}
	frame[10] ^= 0x40

	// flipping a main data bit outside the covered region must not
	frame[100] ^= 0x01
	if !crcOK(frame, h) {
		t.Error("crcOK() = false after uncovered corruption")
	}
}

// protectedSilentFrame is a silence frame with the protection bit set and a
// valid CRC-16 over the header and side information.
func protectedSilentFrame() []byte {
	f := madtest.SilentFrame()
	f[1] &^= 0x01 // protection on
	crc := crc16(0xFFFF, f[2:4])
	crc = crc16(crc, f[6:6+17])
	f[4] = byte(crc >> 8)
	f[5] = byte(crc)
	return f
}
