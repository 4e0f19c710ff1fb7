// SPDX-License-Identifier: EPL-2.0

package gomp3

import mad "github.com/dzamkov/go-mad"

// MPEG frame header fields, as encoded in the four header bytes.
const (
	version1        = 3
	version2        = 2
	versionReserved = 1
	version25       = 0

	layerI        = 3
	layerII       = 2
	layerIII      = 1
	layerReserved = 0

	modeStereo = 0
	modeJoint  = 1
	modeDual   = 2
	modeMono   = 3
)

// Bitrate tables in kbit/s, indexed by the 4-bit bitrate index. Index 0 is
// free format, index 15 is forbidden; both are unusable here.
var (
	v1l1Bitrate = [16]int{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0}
	v1l2Bitrate = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0}
	v1l3Bitrate = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	v2l1Bitrate = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}
	v2l2Bitrate = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

// Sample rate tables in Hz, indexed by the 2-bit sample rate index. Index 3
// is reserved.
var sampleRates = map[int][3]int{
	version1:  {44100, 48000, 32000},
	version2:  {22050, 24000, 16000},
	version25: {11025, 12000, 8000},
}

type header struct {
	version    int
	layer      int
	bitrate    int // bits per second
	sampleRate int // Hz
	padding    int
	mode       int
	emphasis   int
	protected  bool // CRC-16 follows the header
}

// parseHeader decodes the four header bytes at the start of b. The sync word
// must already have been checked. It returns mad.ErrLostSync for a reserved
// version field (a false sync), or the taxonomy code for any other invalid
// field; the header is only usable when the code is mad.ErrNone.
func parseHeader(b []byte) (header, mad.Error) {
	var h header

	h.version = int(b[1]>>3) & 3
	if h.version == versionReserved {
		return h, mad.ErrLostSync
	}
	h.layer = int(b[1]>>1) & 3
	if h.layer == layerReserved {
		return h, mad.ErrBadLayer
	}
	h.protected = b[1]&1 == 0

	idx := int(b[2]>>4) & 0xF
	h.bitrate = bitrateFor(h.version, h.layer, idx) * 1000
	if h.bitrate == 0 {
		// free format (index 0) is unsupported, index 15 is forbidden
		return h, mad.ErrBadBitRate
	}

	sr := int(b[2]>>2) & 3
	if sr == 3 {
		return h, mad.ErrBadSampleRate
	}
	h.sampleRate = sampleRates[h.version][sr]
	h.padding = int(b[2]>>1) & 1

	h.mode = int(b[3]>>6) & 3
	h.emphasis = int(b[3]) & 3
	if h.emphasis == 2 {
		return h, mad.ErrBadEmphasis
	}
	return h, mad.ErrNone
}

func bitrateFor(version, layer, idx int) int {
	switch {
	case version == version1 && layer == layerI:
		return v1l1Bitrate[idx]
	case version == version1 && layer == layerII:
		return v1l2Bitrate[idx]
	case version == version1:
		return v1l3Bitrate[idx]
	case layer == layerI:
		return v2l1Bitrate[idx]
	default:
		// MPEG-2/2.5 Layers II and III share one table
		return v2l2Bitrate[idx]
	}
}

// frameLen returns the byte length of the physical frame, header included.
func (h header) frameLen() int {
	switch {
	case h.layer == layerI:
		return (12*h.bitrate/h.sampleRate + h.padding) * 4
	case h.layer == layerIII && h.version != version1:
		// MPEG-2/2.5 Layer III frames carry half as many samples
		return 72*h.bitrate/h.sampleRate + h.padding
	default:
		return 144*h.bitrate/h.sampleRate + h.padding
	}
}

// sideInfoLen returns the Layer III side information length in bytes.
func (h header) sideInfoLen() int {
	if h.mode == modeMono {
		return 17
	}
	return 32
}

// id3v2Len returns the total length of an ID3v2 tag starting at b, or 0 if
// b does not start with one.
func id3v2Len(b []byte) int {
	if len(b) < 10 || b[0] != 'I' || b[1] != 'D' || b[2] != '3' {
		return 0
	}
	if b[6]&0x80 != 0 || b[7]&0x80 != 0 || b[8]&0x80 != 0 || b[9]&0x80 != 0 {
		return 0 // size bytes must be syncsafe
	}
	size := int(b[6])<<21 | int(b[7])<<14 | int(b[8])<<7 | int(b[9])
	return 10 + size
}

// crc16 updates a CRC-16 (polynomial 0x8005, MSB first) over data.
func crc16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x8005
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// crcOK verifies the CRC-16 of a protected frame: the checksum stored in
// bytes 4-5 covers header bytes 2-3 plus the side information block.
func crcOK(frame []byte, h header) bool {
	end := 6 + h.sideInfoLen()
	if len(frame) < end {
		return false
	}
	stored := uint16(frame[4])<<8 | uint16(frame[5])
	crc := crc16(0xFFFF, frame[2:4])
	crc = crc16(crc, frame[6:end])
	return crc == stored
}
