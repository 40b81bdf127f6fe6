package aesengine

// rcon holds the round constants used by the key schedule, rcon[i] being
// {02}^(i-1) in GF(2^8); rcon[0] is unused (the schedule is 1-indexed here
// to match the usual Rijndael presentation).
var rcon = computeRcon()

func computeRcon() [15]byte {
	var table [15]byte
	table[1] = 0x01
	for i := 2; i < len(table); i++ {
		table[i] = xtime(table[i-1])
	}
	return table
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// ExpandKey runs the Rijndael key schedule over a 16, 24, or 32-byte key,
// returning Nr+1 round keys of 4 words each (Nk=key words, Nr=Nk+6). The
// schedule is the standard algorithm: the original C source's loop index
// starts one word too early and its round-constant update is a plain shift
// rather than a GF(2^8) doubling, both of which would corrupt every round
// key past the first; this implementation uses the textbook recurrence
// instead (see DESIGN.md).
func ExpandKey(key []byte) [][4]byte {
	nk := len(key) / 4
	nr := nk + 6
	total := 4 * (nr + 1)

	w := make([][4]byte, total)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < total; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		for b := 0; b < 4; b++ {
			w[i][b] = w[i-nk][b] ^ temp[b]
		}
	}

	return w
}

// NumRounds returns the number of AES rounds for a key of the given byte
// length (10/12/14 for 128/192/256-bit keys).
func NumRounds(keyLen int) int {
	return keyLen/4 + 6
}
