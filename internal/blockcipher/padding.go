package blockcipher

import "errors"

// ErrBadPadding is returned by StripPKCS7 when the trailing pad byte is
// outside the valid 1..blockSize range.
var ErrBadPadding = errors.New("blockcipher: invalid PKCS#7 padding")

// PadPKCS7 returns data with p trailing bytes of value p appended, where
// p = blockSize - (len(data) mod blockSize), p always in 1..blockSize. This
// generalizes PKCS#5 (defined only for 8-byte blocks) to any block size up
// to 255, which is what AES's 16-byte blocks need alongside DES's 8.
func PadPKCS7(data []byte, blockSize int) []byte {
	p := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+p)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(p)
	}
	return out
}

// StripPKCS7 validates the trailing pad byte of buf and reports the logical
// (unpadded) length. Rather than truncating buf — callers hold a fixed-size
// output buffer, mirroring the C facade's output_len contract — it writes a
// single terminating 0x00 at offset logicalLen, so callers that treat the
// buffer as a NUL-terminated string see the boundary even
// without consulting the returned length.
func StripPKCS7(buf []byte, blockSize int) (logicalLen int, err error) {
	if len(buf) == 0 || len(buf)%blockSize != 0 {
		return 0, ErrBadPadding
	}
	p := int(buf[len(buf)-1])
	if p < 1 || p > blockSize {
		return 0, ErrBadPadding
	}
	logicalLen = len(buf) - p
	buf[logicalLen] = 0x00
	return logicalLen, nil
}
