package cablelock

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func mustHex(t *testing.T, got []byte, want []byte) {
	t.Helper()
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestDESEncryptCBCVector(t *testing.T) {
	key := []byte("password")
	iv := []byte("initialz")
	plaintext := []byte("abcdefghijklmnop")
	want := []byte{0xf1, 0xf2, 0xe9, 0x72, 0x56, 0xb5, 0xb2, 0xd0, 0xff, 0x69, 0xd4, 0x99, 0x69, 0xd1, 0x73, 0x09}

	got, err := DESEncrypt(plaintext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, want)
}

func TestDESEncryptECBVector(t *testing.T) {
	key := []byte("password")
	plaintext := []byte("abcdefghijklmnop")
	want := []byte{0x16, 0x0b, 0x3b, 0x0e, 0xea, 0x65, 0x62, 0x49, 0x75, 0xc9, 0xf6, 0x67, 0x13, 0x9a, 0x0d, 0x2e}

	got, err := DESEncrypt(plaintext, key, nil, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, want)
}

func TestTripleDESEncryptCBCVector(t *testing.T) {
	key := []byte("twentyfourcharacterinput")
	iv := []byte("initialz")
	plaintext := []byte("abcdefghijklmnop")
	want := []byte{0xa4, 0x75, 0xa0, 0xc2, 0x2a, 0x11, 0xca, 0xa4, 0xe9, 0x29, 0x47, 0x6b, 0xc7, 0xb3, 0x98, 0x9e}

	got, err := TripleDESEncrypt(plaintext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, want)
}

func TestTripleDESEncryptECBVector(t *testing.T) {
	key := []byte("twentyfourcharacterinput")
	plaintext := []byte("abcdefghijklmnop")
	want := []byte{0xc8, 0x7c, 0xe0, 0x7c, 0x0b, 0xf0, 0xd3, 0x6b, 0xc6, 0x1c, 0x15, 0xdb, 0xdc, 0x25, 0x1c, 0x3f}

	got, err := TripleDESEncrypt(plaintext, key, nil, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, want)
}

func TestDESRoundTrip(t *testing.T) {
	key := []byte("password")
	iv := []byte("initialz")
	plaintext := []byte("abcdefghijklmnop")

	ciphertext, err := DESEncrypt(plaintext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))

	got, err := DESDecrypt(ciphertext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, plaintext)
}

func TestDESRoundTripPadded(t *testing.T) {
	key := []byte("password")
	iv := []byte("initialz")
	plaintext := []byte("not a whole block")

	ciphertext, err := DESEncrypt(plaintext, key, iv, true)
	qt.Assert(t, qt.IsNil(err))

	got, err := DESDecrypt(ciphertext, key, iv, true)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, plaintext)
}

func TestTripleDESRoundTrip(t *testing.T) {
	key := []byte("twentyfourcharacterinput")
	iv := []byte("initialz")
	plaintext := []byte("abcdefghijklmnop")

	ciphertext, err := TripleDESEncrypt(plaintext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))

	got, err := TripleDESDecrypt(ciphertext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, plaintext)
}

func TestAES128RoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("zyxwvutsrqponmlk")
	plaintext := []byte("abcdefghijklmnop")

	ciphertext, err := AES128Encrypt(plaintext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))

	got, err := AES128Decrypt(ciphertext, key, iv, false)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, plaintext)
}

func TestAES256RoundTripPadded(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	iv := []byte("zyxwvutsrqponmlk")
	plaintext := []byte("an odd-length plaintext that needs padding")

	ciphertext, err := AES256Encrypt(plaintext, key, iv, true)
	qt.Assert(t, qt.IsNil(err))

	got, err := AES256Decrypt(ciphertext, key, iv, true)
	qt.Assert(t, qt.IsNil(err))
	mustHex(t, got, plaintext)
}

func TestAESNullIVIsECB(t *testing.T) {
	key := []byte("0123456789abcdef")
	plaintext := []byte("abcdefghijklmnopabcdefghijklmnop")

	ciphertext, err := AES128Encrypt(plaintext, key, nil, false)
	qt.Assert(t, qt.IsNil(err))

	firstBlock := ciphertext[:16]
	secondBlock := ciphertext[16:]
	mustHex(t, firstBlock, secondBlock)
}

func TestDESInvalidKeyLength(t *testing.T) {
	_, err := DESEncrypt([]byte("abcdefgh"), []byte("short"), nil, false)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))
}

func TestDESUnpaddedNonMultipleLength(t *testing.T) {
	_, err := DESEncrypt([]byte("notright"[:7]), []byte("password"), nil, false)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))
}
