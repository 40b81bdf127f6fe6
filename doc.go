// Overview
//
// cablelock is a small, from-scratch cryptographic primitives library. It
// implements three independent engines rather than wrapping crypto/aes,
// crypto/des, or math/big:
//
//   - a block cipher engine (DES, Triple-DES, AES-128, AES-256) in CBC mode
//     with optional PKCS#5/7 padding,
//   - a multi-precision unsigned big-integer type (internal/bigint), and
//   - an ASN.1 DER tag-length-value walker (internal/asn1cert) for
//     traversing the outer structure of an X.509 certificate after PEM
//     armor is stripped.
//
// Basic usage
//
//	ciphertext, err := cablelock.DESEncrypt(plaintext, key, iv, true)
//	if err != nil {
//		// err wraps one of the sentinel errors in errors.go
//	}
//	decrypted, err := cablelock.DESDecrypt(ciphertext, key, iv, true)
//
// A nil iv degenerates CBC chaining to ECB (each block is encrypted
// independently). Keys are fixed-length per algorithm: 8 bytes for DES, 24
// for Triple-DES (three independent 8-byte subkeys), 16 for AES-128, 32 for
// AES-256.
//
// Supported algorithms
//
// DES and Triple-DES operate on 8-byte blocks; AES-128 and AES-256 on
// 16-byte blocks. AES's key schedule (internal/aesengine) supports any of
// the three NIST key lengths, including 192-bit, but only the 128 and
// 256-bit variants are exposed at this package's boundary.
//
// Non-goals
//
// This is not a constant-time-hardened library, not a TLS stack, and
// implements no authenticated encryption mode (no GCM, no HMAC) and no
// asymmetric primitives.
package cablelock
