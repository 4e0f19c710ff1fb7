// SPDX-License-Identifier: EPL-2.0

package madtest

// Synthetic MPEG-1 Layer III frames for engine tests. A silence frame has an
// all-zero side information block (main_data_begin 0, part2_3_length 0 in
// every granule) and an empty main data region, so any conforming decoder
// reconstructs 1152 zero samples from it.

// SilentFrameLen is the byte length of the frame SilentFrame builds:
// 144 * 128000 / 44100, no padding.
const SilentFrameLen = 417

// SilentFrame returns one valid mono MPEG-1 Layer III frame of silence,
// 44.1 kHz, 128 kbit/s, no CRC, no padding.
func SilentFrame() []byte {
	f := make([]byte, SilentFrameLen)
	// sync, MPEG-1, Layer III, no protection
	f[0] = 0xFF
	f[1] = 0xFB
	// bitrate index 9 (128k), sample rate index 0 (44100), no padding
	f[2] = 0x90
	// single-channel mode, no emphasis
	f[3] = 0xC0
	return f
}

// SilentStream returns n consecutive silence frames.
func SilentStream(n int) []byte {
	out := make([]byte, 0, n*SilentFrameLen)
	for i := 0; i < n; i++ {
		out = append(out, SilentFrame()...)
	}
	return out
}

// Garbage returns n bytes that contain no frame sync pattern.
func Garbage(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(0x11 * (i%13 + 1) & 0x7F)
	}
	return out
}

// CorruptSync returns a copy of frame with its sync word destroyed.
func CorruptSync(frame []byte) []byte {
	out := append([]byte(nil), frame...)
	if len(out) > 0 {
		out[0] = 0x00
	}
	return out
}

// ID3v2 returns a minimal ID3v2 tag whose payload is n bytes of zeros.
// n must fit in a syncsafe 28-bit size.
func ID3v2(n int) []byte {
	tag := make([]byte, 10+n)
	copy(tag, "ID3")
	tag[3] = 4 // version 2.4.0
	tag[6] = byte(n >> 21 & 0x7F)
	tag[7] = byte(n >> 14 & 0x7F)
	tag[8] = byte(n >> 7 & 0x7F)
	tag[9] = byte(n & 0x7F)
	return tag
}
