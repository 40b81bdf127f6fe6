package asn1cert

import (
	"encoding/base64"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestExtractDERRoundTrip(t *testing.T) {
	der := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	body := base64.StdEncoding.EncodeToString(der)

	pem := []byte("-----BEGIN CERTIFICATE-----\n" + body + "\n-----END CERTIFICATE-----\n")

	got, err := ExtractDER(pem)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, der))
}

func TestExtractDERRejectsNonPEM(t *testing.T) {
	_, err := ExtractDER([]byte{0x30, 0x03, 0x02, 0x01, 0x05})
	qt.Assert(t, qt.ErrorIs(err, ErrNotPEM))
}
