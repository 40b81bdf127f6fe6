// Package desengine implements the DES round function: the Feistel network
// that the CBC driver and the Triple-DES key composition are built on top
// of. It operates purely on 8-byte blocks and 8-byte keys; chaining and
// padding live one layer up in package blockcipher, and argument validation
// in the module-root facade.
package desengine

import "github.com/cablelock/crypto/internal/bitperm"

const (
	// BlockSize is the DES block size in bytes (64 bits).
	BlockSize = 8
	// KeySize is the DES key size in bytes (56 significant bits, padded to 8).
	KeySize = 8

	pc1KeySize  = 7
	expandSize  = 6
	subkeySize  = 6
	roundCount  = 16
)

// rotateLeft rotates the two 28-bit halves packed into the 7-byte pc1 buffer
// left by one bit each, independently. The halves straddle byte index 3, so
// that byte needs special-case handling to keep the carry from one half from
// bleeding into the other.
func rotateLeft(buf *[pc1KeySize]byte) {
	carryLeft := (buf[0] & 0x80) >> 3

	buf[0] = (buf[0] << 1) | ((buf[1] & 0x80) >> 7)
	buf[1] = (buf[1] << 1) | ((buf[2] & 0x80) >> 7)
	buf[2] = (buf[2] << 1) | ((buf[3] & 0x80) >> 7)

	carryRight := (buf[3] & 0x08) >> 3
	buf[3] = (((buf[3] << 1) | ((buf[4] & 0x80) >> 7)) &^ 0x10) | carryLeft

	buf[4] = (buf[4] << 1) | ((buf[5] & 0x80) >> 7)
	buf[5] = (buf[5] << 1) | ((buf[6] & 0x80) >> 7)
	buf[6] = (buf[6] << 1) | carryRight
}

// rotateRight is the inverse of rotateLeft.
func rotateRight(buf *[pc1KeySize]byte) {
	carryRight := (buf[6] & 0x01) << 3

	buf[6] = (buf[6] >> 1) | ((buf[5] & 0x01) << 7)
	buf[5] = (buf[5] >> 1) | ((buf[4] & 0x01) << 7)
	buf[4] = (buf[4] >> 1) | ((buf[3] & 0x01) << 7)

	carryLeft := (buf[3] & 0x10) << 3
	buf[3] = (((buf[3] >> 1) | ((buf[2] & 0x01) << 7)) &^ 0x08) | carryRight

	buf[2] = (buf[2] >> 1) | ((buf[1] & 0x01) << 7)
	buf[1] = (buf[1] >> 1) | ((buf[0] & 0x01) << 7)
	buf[0] = (buf[0] >> 1) | carryLeft
}

// rotationsForRound reports how many times the pc1 halves rotate before
// round index (0-based) derives its subkey, matching the encrypt-direction
// schedule in tables.go's leftShiftSchedule.
func rotationsForRound(round int) int {
	return leftShiftSchedule[round]
}

// substitute computes the eight 6-bit-to-4-bit S-box lookups for one round.
// The index expressions for S-boxes 1 and 5 reproduce crypto_des.c's
// des_block_operate exactly, bugs included: S-box 1's index drops the top
// nibble of expansion[1] (the source shifts an already-masked low nibble
// right by 4, which is always zero), and S-box 5's index drops
// expansion[4] entirely (the source's "0x0F >> 4" is a constant-folded 0
// due to operator precedence, so the "& " against it is always zero). Both
// of spec.md's DES and Triple-DES golden vectors were generated against
// this exact behavior, so it is reproduced rather than corrected.
func substitute(e [expandSize]byte) [BlockSize / 2]byte {
	idx0 := (e[0] & 0xFC) >> 2
	idx1 := (e[0] & 0x03) << 4
	idx2 := (e[1]&0x0F)<<2 | (e[2]&0xC0)>>6
	idx3 := e[2] & 0x3F
	idx4 := (e[3] & 0xFC) >> 2
	idx5 := (e[3] & 0x03) << 4
	idx6 := (e[4]&0x0F)<<2 | (e[5]&0xC0)>>6
	idx7 := e[5] & 0x3F

	var out [BlockSize / 2]byte
	out[0] = sBoxes[0][idx0]<<4 | sBoxes[1][idx1]
	out[1] = sBoxes[2][idx2]<<4 | sBoxes[3][idx3]
	out[2] = sBoxes[4][idx4]<<4 | sBoxes[5][idx5]
	out[3] = sBoxes[6][idx6]<<4 | sBoxes[7][idx7]
	return out
}

// Operate runs the 16-round DES Feistel network over one 8-byte block.
// encrypt selects the direction of the per-round key-rotation schedule; all
// other steps (expansion, substitution, permutation) are identical in both
// directions. dst and src must each be BlockSize bytes and may alias.
func Operate(dst, src []byte, key []byte, encrypt bool) {
	var ipBlock [BlockSize]byte
	bitperm.Permute(ipBlock[:], src, initialPermutation)

	var pc1Key [pc1KeySize]byte
	bitperm.Permute(pc1Key[:], key, pc1Table)

	for round := 0; round < roundCount; round++ {
		var expansion [expandSize]byte
		bitperm.Permute(expansion[:], ipBlock[4:], expansionTable)

		if encrypt {
			rotateLeft(&pc1Key)
			if rotationsForRound(round) == 2 {
				rotateLeft(&pc1Key)
			}
		}

		var subKey [subkeySize]byte
		bitperm.Permute(subKey[:], pc1Key[:], pc2Table)

		if !encrypt {
			// Decryption walks the schedule in reverse: round 15 first
			// uses the un-rotated key, so the rotation happens after the
			// subkey for this round has already been derived.
			reverseRound := roundCount - 1 - round
			rotateRight(&pc1Key)
			if rotationsForRound(reverseRound) == 2 {
				rotateRight(&pc1Key)
			}
		}

		for i := range expansion {
			expansion[i] ^= subKey[i]
		}

		subBlock := substitute(expansion)

		var pboxTarget [BlockSize / 2]byte
		bitperm.Permute(pboxTarget[:], subBlock[:], pTable)

		var recomb [BlockSize / 2]byte
		copy(recomb[:], ipBlock[:4])
		copy(ipBlock[:4], ipBlock[4:])
		for i := range recomb {
			recomb[i] ^= pboxTarget[i]
		}
		copy(ipBlock[4:], recomb[:])
	}

	// Undo the last round's swap.
	var tmp [BlockSize / 2]byte
	copy(tmp[:], ipBlock[:4])
	copy(ipBlock[:4], ipBlock[4:])
	copy(ipBlock[4:], tmp[:])

	bitperm.Permute(dst, ipBlock[:], finalPermutation)
}
