package asn1cert

import (
	"bytes"
	"encoding/base64"
	"errors"
)

var pemPrefix = []byte("-----BEGIN")

// ErrNotPEM is returned by ExtractDER when the input does not start with the
// PEM armor prefix.
var ErrNotPEM = errors.New("asn1cert: input is not PEM-armored")

// ExtractDER strips PEM armor and returns the decoded DER bytes. It detects
// PEM by the literal "-----BEGIN" prefix, takes the Base64 body between the
// first and last newlines that bound the armor (newlines after the closing
// armor line are ignored), and delegates the actual
// transform to encoding/base64 — this package never reimplements Base64
// itself, per spec.md's "external collaborator" framing.
func ExtractDER(pem []byte) ([]byte, error) {
	if !bytes.HasPrefix(pem, pemPrefix) {
		return nil, ErrNotPEM
	}

	firstNL := bytes.IndexByte(pem, '\n')
	if firstNL < 0 {
		return nil, ErrMalformedData
	}
	lastNL := bytes.LastIndexByte(bytes.TrimRight(pem, "\r\n"), '\n')
	if lastNL <= firstNL {
		return nil, ErrMalformedData
	}

	body := bytes.TrimSpace(pem[firstNL+1 : lastNL])
	body = bytes.Join(bytes.Fields(body), nil)

	der, err := base64.StdEncoding.DecodeString(string(body))
	if err != nil {
		return nil, ErrMalformedData
	}
	return der, nil
}
