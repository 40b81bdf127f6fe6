package desengine

// TripleDESKey is a 24-byte Triple-DES key, kept as a named type instead of
// three raw byte slices so the key order has exactly one definition.
type TripleDESKey [3 * KeySize]byte

// Halves splits the key into its three independent DES key slices.
func (k *TripleDESKey) Halves() (k1, k2, k3 []byte) {
	return k[0:KeySize], k[KeySize : 2*KeySize], k[2*KeySize : 3*KeySize]
}

// OperateTriple runs Triple-DES over one 8-byte block. Unlike the
// industry-standard EDE composition, crypto_des.c's des_operation passes the
// same operation (direction) flag to all three inner des_block_operate
// calls, so this is EEE for encryption (Encrypt(k1) -> Encrypt(k2) ->
// Encrypt(k3)) and DDD for decryption, in reverse key order
// (Decrypt(k3) -> Decrypt(k2) -> Decrypt(k1)).
func OperateTriple(dst, src []byte, key *TripleDESKey, encrypt bool) {
	k1, k2, k3 := key.Halves()
	var stage [BlockSize]byte

	if encrypt {
		Operate(stage[:], src, k1, true)
		Operate(stage[:], stage[:], k2, true)
		Operate(dst, stage[:], k3, true)
		return
	}

	Operate(stage[:], src, k3, false)
	Operate(stage[:], stage[:], k2, false)
	Operate(dst, stage[:], k1, false)
}
