package cablelock

import (
	"fmt"

	"github.com/cablelock/crypto/internal/aesengine"
	"github.com/cablelock/crypto/internal/blockcipher"
	"github.com/cablelock/crypto/internal/desengine"
)

const (
	// DESKeySize is the fixed key length for DES, in bytes.
	DESKeySize = desengine.KeySize
	// TripleDESKeySize is the fixed key length for Triple-DES: three
	// independent 8-byte DES keys concatenated.
	TripleDESKeySize = 3 * desengine.KeySize
	// AES128KeySize is the fixed key length for AES-128, in bytes.
	AES128KeySize = 16
	// AES256KeySize is the fixed key length for AES-256, in bytes.
	AES256KeySize = 32
)

type desBlock struct {
	key []byte
}

func (d desBlock) BlockSize() int { return desengine.BlockSize }
func (d desBlock) Encrypt(dst, src []byte) {
	desengine.Operate(dst, src, d.key, true)
}
func (d desBlock) Decrypt(dst, src []byte) {
	desengine.Operate(dst, src, d.key, false)
}

type tripleDESBlock struct {
	key *desengine.TripleDESKey
}

func (t tripleDESBlock) BlockSize() int { return desengine.BlockSize }
func (t tripleDESBlock) Encrypt(dst, src []byte) {
	desengine.OperateTriple(dst, src, t.key, true)
}
func (t tripleDESBlock) Decrypt(dst, src []byte) {
	desengine.OperateTriple(dst, src, t.key, false)
}

type aesBlock struct {
	schedule  [][4]byte
	numRounds int
}

func (a aesBlock) BlockSize() int { return aesengine.BlockSize }
func (a aesBlock) Encrypt(dst, src []byte) {
	aesengine.BlockEncrypt(dst, src, a.schedule, a.numRounds)
}
func (a aesBlock) Decrypt(dst, src []byte) {
	aesengine.BlockDecrypt(dst, src, a.schedule, a.numRounds)
}

// copyIV returns a defensive copy of iv sized to blockSize, or a zero IV of
// blockSize bytes if iv is nil (runCipher then runs every block on its own,
// so a nil IV degenerates CBC to ECB: no chaining). This is the
// "copy IV on entry" contract spec.md §4.5 requires of every facade entry
// point, so the caller's IV buffer is never mutated by chaining.
func copyIV(iv []byte, blockSize int) ([]byte, error) {
	if iv == nil {
		return make([]byte, blockSize), nil
	}
	if len(iv) != blockSize {
		return nil, fmt.Errorf("cablelock: iv length %d, want %d: %w", len(iv), blockSize, ErrInvalidArgument)
	}
	out := make([]byte, blockSize)
	copy(out, iv)
	return out, nil
}

func validateInput(input []byte, key []byte, wantKeyLen int) error {
	if len(input) == 0 {
		return fmt.Errorf("cablelock: empty input: %w", ErrInvalidArgument)
	}
	if len(key) != wantKeyLen {
		return fmt.Errorf("cablelock: key length %d, want %d: %w", len(key), wantKeyLen, ErrInvalidArgument)
	}
	return nil
}

func runCipher(cipher blockcipher.Block, input, key, iv []byte, addPadding, encrypt bool) ([]byte, error) {
	blockSize := cipher.BlockSize()
	chained := iv != nil
	iv, err := copyIV(iv, blockSize)
	if err != nil {
		return nil, err
	}

	data := input
	if encrypt && addPadding {
		data = blockcipher.PadPKCS7(input, blockSize)
	} else if len(input)%blockSize != 0 {
		return nil, fmt.Errorf("cablelock: input length %d not a multiple of block size %d: %w", len(input), blockSize, ErrInvalidArgument)
	}

	out := make([]byte, len(data))
	// Without a caller IV each block goes through the driver on its own with
	// the zero IV, so nothing chains from one block to the next.
	step := len(data)
	if !chained {
		step = blockSize
	}
	for off := 0; off < len(data); off += step {
		if encrypt {
			blockcipher.EncryptCBC(cipher, out[off:off+step], data[off:off+step], iv)
		} else {
			blockcipher.DecryptCBC(cipher, out[off:off+step], data[off:off+step], iv)
		}
	}
	if encrypt {
		return out, nil
	}

	if addPadding {
		logicalLen, err := blockcipher.StripPKCS7(out, blockSize)
		if err != nil {
			return nil, fmt.Errorf("cablelock: %w: %w", err, ErrMalformedData)
		}
		return out[:logicalLen], nil
	}
	return out, nil
}

// DESEncrypt encrypts plaintext with an 8-byte key under CBC chaining. iv
// may be nil for ECB behavior. If addPadding is set, plaintext of any length
// is accepted and PKCS#5 padding is applied; otherwise len(plaintext) must
// be a multiple of 8.
func DESEncrypt(plaintext, key, iv []byte, addPadding bool) ([]byte, error) {
	if err := validateInput(plaintext, key, DESKeySize); err != nil {
		return nil, err
	}
	return runCipher(desBlock{key: key}, plaintext, key, iv, addPadding, true)
}

// DESDecrypt is the inverse of DESEncrypt.
func DESDecrypt(ciphertext, key, iv []byte, isPadded bool) ([]byte, error) {
	if err := validateInput(ciphertext, key, DESKeySize); err != nil {
		return nil, err
	}
	return runCipher(desBlock{key: key}, ciphertext, key, iv, isPadded, false)
}

// TripleDESEncrypt encrypts plaintext with a 24-byte key (three independent
// 8-byte DES keys) using the EEE composition E_k1 -> E_k2 -> E_k3 per block
// (not the industry-standard EDE; see desengine.OperateTriple).
func TripleDESEncrypt(plaintext, key, iv []byte, addPadding bool) ([]byte, error) {
	if err := validateInput(plaintext, key, TripleDESKeySize); err != nil {
		return nil, err
	}
	var tk desengine.TripleDESKey
	copy(tk[:], key)
	return runCipher(tripleDESBlock{key: &tk}, plaintext, key, iv, addPadding, true)
}

// TripleDESDecrypt is the inverse of TripleDESEncrypt, using the mirrored
// D_k3 -> D_k2 -> D_k1 order.
func TripleDESDecrypt(ciphertext, key, iv []byte, isPadded bool) ([]byte, error) {
	if err := validateInput(ciphertext, key, TripleDESKeySize); err != nil {
		return nil, err
	}
	var tk desengine.TripleDESKey
	copy(tk[:], key)
	return runCipher(tripleDESBlock{key: &tk}, ciphertext, key, iv, isPadded, false)
}

func newAESBlock(key []byte) aesBlock {
	schedule := aesengine.ExpandKey(key)
	return aesBlock{schedule: schedule, numRounds: aesengine.NumRounds(len(key))}
}

// AES128Encrypt encrypts plaintext with a 16-byte key under CBC chaining.
func AES128Encrypt(plaintext, key, iv []byte, addPadding bool) ([]byte, error) {
	if err := validateInput(plaintext, key, AES128KeySize); err != nil {
		return nil, err
	}
	return runCipher(newAESBlock(key), plaintext, key, iv, addPadding, true)
}

// AES128Decrypt is the inverse of AES128Encrypt.
func AES128Decrypt(ciphertext, key, iv []byte, isPadded bool) ([]byte, error) {
	if err := validateInput(ciphertext, key, AES128KeySize); err != nil {
		return nil, err
	}
	return runCipher(newAESBlock(key), ciphertext, key, iv, isPadded, false)
}

// AES256Encrypt encrypts plaintext with a 32-byte key under CBC chaining.
func AES256Encrypt(plaintext, key, iv []byte, addPadding bool) ([]byte, error) {
	if err := validateInput(plaintext, key, AES256KeySize); err != nil {
		return nil, err
	}
	return runCipher(newAESBlock(key), plaintext, key, iv, addPadding, true)
}

// AES256Decrypt is the inverse of AES256Encrypt.
func AES256Decrypt(ciphertext, key, iv []byte, isPadded bool) ([]byte, error) {
	if err := validateInput(ciphertext, key, AES256KeySize); err != nil {
		return nil, err
	}
	return runCipher(newAESBlock(key), ciphertext, key, iv, isPadded, false)
}
