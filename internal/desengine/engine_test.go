package desengine

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestOperateRoundTrip(t *testing.T) {
	key := []byte("password")
	plaintext := []byte("abcdefgh")

	ciphertext := make([]byte, BlockSize)
	Operate(ciphertext, plaintext, key, true)

	got := make([]byte, BlockSize)
	Operate(got, ciphertext, key, false)

	qt.Assert(t, qt.DeepEquals(got, plaintext))
}

func TestOperateChangesBlock(t *testing.T) {
	key := []byte("password")
	plaintext := []byte("abcdefgh")
	ciphertext := make([]byte, BlockSize)
	Operate(ciphertext, plaintext, key, true)

	qt.Assert(t, qt.Not(qt.DeepEquals(ciphertext, plaintext)))
}

func TestOperateTripleRoundTrip(t *testing.T) {
	var key TripleDESKey
	copy(key[:], "twentyfourcharacterinput")
	plaintext := []byte("abcdefgh")

	ciphertext := make([]byte, BlockSize)
	OperateTriple(ciphertext, plaintext, &key, true)

	got := make([]byte, BlockSize)
	OperateTriple(got, ciphertext, &key, false)

	qt.Assert(t, qt.DeepEquals(got, plaintext))
}
