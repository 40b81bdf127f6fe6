package asn1cert

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParsePrimitiveLeaf(t *testing.T) {
	// An INTEGER tag (0x02), length 1, value 0x05.
	buf := []byte{0x02, 0x01, 0x05}
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(node.Constructed))
	qt.Assert(t, qt.Equals(node.Tag, 0x02))
	qt.Assert(t, qt.Equals(node.Length, 1))
	qt.Assert(t, qt.DeepEquals(node.Data, []byte{0x05}))
	qt.Assert(t, qt.IsNil(node.Child))
	qt.Assert(t, qt.IsNil(node.Next))
}

func TestParseConstructedWithChild(t *testing.T) {
	// A SEQUENCE (0x30, constructed) containing one INTEGER (0x02 01 05).
	buf := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(node.Constructed))
	qt.Assert(t, qt.Equals(node.Length, len(buf)))
	qt.Assert(t, qt.DeepEquals(node.Data, buf))

	qt.Assert(t, qt.IsNotNil(node.Child))
	qt.Assert(t, qt.Equals(node.Child.Tag, 0x02))
	qt.Assert(t, qt.DeepEquals(node.Child.Data, []byte{0x05}))
}

func TestParseSiblings(t *testing.T) {
	buf := []byte{0x02, 0x01, 0x05, 0x02, 0x01, 0x07}
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(node.Next))
	qt.Assert(t, qt.DeepEquals(node.Data, []byte{0x05}))
	qt.Assert(t, qt.DeepEquals(node.Next.Data, []byte{0x07}))

	diff := cmp.Diff(node.Next.Data, []byte{0x07}, cmpopts.EquateEmpty())
	qt.Assert(t, qt.Equals(diff, ""))
}

func TestParseLengthAgreement(t *testing.T) {
	buf := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(node.Length, len(buf)))
}

func TestParseMultiByteLength(t *testing.T) {
	content := make([]byte, 200)
	for i := range content {
		content[i] = byte(i)
	}
	buf := append([]byte{0x04, 0x81, 0xC8}, content...) // OCTET STRING, long-form length
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(node.Length, 200))
	qt.Assert(t, qt.DeepEquals(node.Data, content))
}

func TestParseTruncatedBufferIsMalformed(t *testing.T) {
	buf := []byte{0x02, 0x05, 0x01} // declares 5 bytes of content, only 1 present
	_, err := Parse(buf)
	qt.Assert(t, qt.ErrorIs(err, ErrMalformedData))
}

func TestParseMultiByteTag(t *testing.T) {
	// Tag number 31 encoded as a multi-byte tag: low 5 bits all set (0x1F),
	// followed by a single continuation byte with the high bit clear.
	buf := []byte{0x1F, 0x1F, 0x01, 0x05}
	node, err := Parse(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(node.Tag, 0x1F))
}
