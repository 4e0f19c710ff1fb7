// SPDX-License-Identifier: EPL-2.0

package mad

import "errors"

// Precondition violations. These are distinct from the Error taxonomy below:
// they indicate the Decoder was driven outside its documented lifecycle, not
// that the input stream is bad.
var (
	ErrClosed  = errors.New("mad: decoder is closed")
	ErrNoFrame = errors.New("mad: no decoded frame to synthesize")
)

// Error identifies a decoding error reported by an Engine.
//
// The numeric values are libmad's mad_error codes, kept for cross-boundary
// compatibility. The high byte encodes severity: codes with a non-zero high
// byte are recoverable (the engine has resynchronized and the caller may
// retry DecodeFrame), codes with a zero high byte are not.
type Error int

const (
	ErrNone           Error = 0x0000 // no error
	ErrBufferLen      Error = 0x0001 // input buffer too small (or EOF)
	ErrBufferPtr      Error = 0x0002 // invalid (null) buffer pointer
	ErrNoMem          Error = 0x0031 // not enough memory
	ErrLostSync       Error = 0x0101 // lost synchronization
	ErrBadLayer       Error = 0x0102 // reserved header layer value
	ErrBadBitRate     Error = 0x0103 // forbidden bitrate value
	ErrBadSampleRate  Error = 0x0104 // reserved sample frequency value
	ErrBadEmphasis    Error = 0x0105 // reserved emphasis value
	ErrBadCRC         Error = 0x0201 // CRC check failed
	ErrBadBitAlloc    Error = 0x0211 // forbidden bit allocation value
	ErrBadScaleFactor Error = 0x0221 // bad scalefactor index
	ErrBadMode        Error = 0x0222 // bad bitrate/mode combination
	ErrBadFrameLen    Error = 0x0231 // bad frame length
	ErrBadBigValues   Error = 0x0232 // bad big_values count
	ErrBadBlockType   Error = 0x0233 // reserved block_type
	ErrBadSCFSI       Error = 0x0234 // bad scalefactor selection info
	ErrBadDataPtr     Error = 0x0235 // bad main_data_begin pointer
	ErrBadPart3Len    Error = 0x0236 // bad audio data length
	ErrBadHuffTable   Error = 0x0237 // bad Huffman table select
	ErrBadHuffData    Error = 0x0238 // Huffman data overrun
	ErrBadStereo      Error = 0x0239 // incompatible block_type for JS
)

// errMessages maps each code to libmad's diagnostic string.
var errMessages = map[Error]string{
	ErrNone:           "no error",
	ErrBufferLen:      "input buffer too small (or EOF)",
	ErrBufferPtr:      "invalid (null) buffer pointer",
	ErrNoMem:          "not enough memory",
	ErrLostSync:       "lost synchronization",
	ErrBadLayer:       "reserved header layer value",
	ErrBadBitRate:     "forbidden bitrate value",
	ErrBadSampleRate:  "reserved sample frequency value",
	ErrBadEmphasis:    "reserved emphasis value",
	ErrBadCRC:         "CRC check failed",
	ErrBadBitAlloc:    "forbidden bit allocation value",
	ErrBadScaleFactor: "bad scalefactor index",
	ErrBadMode:        "bad bitrate/mode combination",
	ErrBadFrameLen:    "bad frame length",
	ErrBadBigValues:   "bad big_values count",
	ErrBadBlockType:   "reserved block_type",
	ErrBadSCFSI:       "bad scalefactor selection info",
	ErrBadDataPtr:     "bad main_data_begin pointer",
	ErrBadPart3Len:    "bad audio data length",
	ErrBadHuffTable:   "bad Huffman table select",
	ErrBadHuffData:    "Huffman data overrun",
	ErrBadStereo:      "incompatible block_type for JS",
}

// Errors returns every defined code, including ErrNone, in ascending order.
func Errors() []Error {
	return []Error{
		ErrNone, ErrBufferLen, ErrBufferPtr, ErrNoMem,
		ErrLostSync, ErrBadLayer, ErrBadBitRate, ErrBadSampleRate, ErrBadEmphasis,
		ErrBadCRC, ErrBadBitAlloc, ErrBadScaleFactor, ErrBadMode, ErrBadFrameLen,
		ErrBadBigValues, ErrBadBlockType, ErrBadSCFSI, ErrBadDataPtr,
		ErrBadPart3Len, ErrBadHuffTable, ErrBadHuffData, ErrBadStereo,
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	if msg, ok := errMessages[e]; ok {
		return msg
	}
	return "unknown error"
}

// Recoverable reports whether decoding can continue from the next frame
// boundary after this error. Synchronization and frame-content errors are
// recoverable; buffer and memory errors are not. ErrNone is not an error and
// reports false.
func (e Error) Recoverable() bool {
	return e&0xff00 != 0
}
