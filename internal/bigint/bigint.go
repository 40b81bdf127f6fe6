// Package bigint implements a variable-length unsigned big-endian integer:
// assign, compare, add, subtract, multiply, divide, and exponentiate, built
// directly over a byte-slice representation with no reliance on math/big.
package bigint

import "errors"

// ErrNegativeResult is returned by Subtract when the minuend is smaller than
// the subtrahend; this type has no representation for negative values.
var ErrNegativeResult = errors.New("bigint: subtraction would produce a negative result")

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("bigint: division by zero")

// Int is a variable-length unsigned integer: an ordered byte slice,
// most-significant byte first. The leading byte is never zero unless the
// whole value is zero, in which case the slice is exactly []byte{0x00}.
type Int struct {
	data []byte
}

// New returns the zero value, represented as a single 0x00 byte.
func New() *Int {
	return &Int{data: []byte{0x00}}
}

// Assign sets v to the machine integer n, using the minimum number of bytes
// (1 to 4) needed to hold its most-significant non-zero byte.
func (v *Int) Assign(n uint32) {
	switch {
	case n == 0:
		v.data = []byte{0x00}
	case n <= 0xFF:
		v.data = []byte{byte(n)}
	case n <= 0xFFFF:
		v.data = []byte{byte(n >> 8), byte(n)}
	case n <= 0xFFFFFF:
		v.data = []byte{byte(n >> 16), byte(n >> 8), byte(n)}
	default:
		v.data = []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
}

// Bytes returns the big-endian byte representation. The caller must not
// mutate the returned slice.
func (v *Int) Bytes() []byte {
	return v.data
}

// SetBytes sets v directly from a big-endian byte slice, establishing the
// no-leading-zero invariant by contracting away any leading zero bytes.
func (v *Int) SetBytes(b []byte) {
	v.data = contract(append([]byte(nil), b...))
}

// IsZero reports whether v is the zero value.
func (v *Int) IsZero() bool {
	return len(v.data) == 1 && v.data[0] == 0
}

// allocate returns a zeroed buffer of length n.
func allocate(n int) []byte {
	return make([]byte, n)
}

// expand grows v by one byte on the most-significant side, placing 0x01 in
// the new top byte; it is used to absorb a carry that would otherwise
// overflow the current width.
func expand(v []byte) []byte {
	out := allocate(len(v) + 1)
	out[0] = 0x01
	copy(out[1:], v)
	return out
}

// contract strips leading zero bytes, leaving at least one byte.
func contract(v []byte) []byte {
	i := 0
	for i < len(v)-1 && v[i] == 0 {
		i++
	}
	return v[i:]
}

// leftShift shifts the byte vector left by one bit, expanding first if the
// top bit would otherwise be lost.
func leftShift(v []byte) []byte {
	if v[0]&0x80 != 0 {
		v = expand(v)
	}
	carry := byte(0)
	for i := len(v) - 1; i >= 0; i-- {
		next := (v[i] & 0x80) >> 7
		v[i] = (v[i] << 1) | carry
		carry = next
	}
	return v
}

// rightShift shifts the byte vector right by one bit, then contracts.
func rightShift(v []byte) []byte {
	carry := byte(0)
	for i := 0; i < len(v); i++ {
		next := (v[i] & 0x01) << 7
		v[i] = (v[i] >> 1) | carry
		carry = next
	}
	return contract(v)
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b, using the conventional sign (unlike the original source's inverted
// contract — see DESIGN.md).
func Compare(a, b *Int) int {
	ab, bb := a.data, b.data
	if len(ab) != len(bb) {
		if len(ab) < len(bb) {
			return -1
		}
		return 1
	}
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets result = a + b. result must not alias a or b.
func Add(result, a, b *Int) {
	width := len(a.data)
	if len(b.data) > width {
		width = len(b.data)
	}
	sum := allocate(width)

	carry := 0
	for i := 0; i < width; i++ {
		av, bv := byteAt(a.data, width, i), byteAt(b.data, width, i)
		total := int(av) + int(bv) + carry
		sum[width-1-i] = byte(total)
		carry = total >> 8
	}
	if carry != 0 {
		sum = expand(sum)
	}
	result.data = contract(sum)
}

// Subtract sets result = a - b, returning ErrNegativeResult if a < b.
// result must not alias a or b.
func Subtract(result, a, b *Int) error {
	if Compare(a, b) < 0 {
		return ErrNegativeResult
	}
	width := len(a.data)
	diff := allocate(width)

	borrow := 0
	for i := 0; i < width; i++ {
		av, bv := byteAt(a.data, width, i), byteAt(b.data, width, i)
		total := int(av) - int(bv) - borrow
		if total < 0 {
			total += 256
			borrow = 1
		} else {
			borrow = 0
		}
		diff[width-1-i] = byte(total)
	}
	result.data = contract(diff)
	return nil
}

// byteAt returns the i-th byte from the least-significant end of a value
// whose true width is narrower than width, as if it were zero-padded on the
// left to width bytes.
func byteAt(data []byte, width, i int) byte {
	idx := len(data) - 1 - i
	if idx < 0 {
		return 0
	}
	return data[idx]
}

// Multiply sets result = a * b using shift-and-add (double-and-add over the
// bits of b). result must not alias a or b.
func Multiply(result, a, b *Int) {
	acc := New()
	addend := &Int{data: append([]byte(nil), a.data...)}
	multiplier := &Int{data: append([]byte(nil), b.data...)}

	for !multiplier.IsZero() {
		if multiplier.data[len(multiplier.data)-1]&0x01 != 0 {
			Add(acc, acc, addend)
		}
		multiplier.data = rightShift(append([]byte(nil), multiplier.data...))
		addend.data = leftShift(append([]byte(nil), addend.data...))
	}
	result.data = acc.data
}

// Exponentiate sets result = base^exp using square-and-multiply. result must
// not alias base or exp.
func Exponentiate(result, base, exp *Int) {
	acc := New()
	acc.Assign(1)
	b := &Int{data: append([]byte(nil), base.data...)}
	e := &Int{data: append([]byte(nil), exp.data...)}

	for !e.IsZero() {
		if e.data[len(e.data)-1]&0x01 != 0 {
			next := New()
			Multiply(next, acc, b)
			acc = next
		}
		e.data = rightShift(append([]byte(nil), e.data...))
		if !e.IsZero() {
			next := New()
			Multiply(next, b, b)
			b = next
		}
	}
	result.data = acc.data
}
