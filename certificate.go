package cablelock

import (
	"fmt"

	"github.com/cablelock/crypto/internal/asn1cert"
)

// Certificate is an opaque handle wrapping a parsed certificate's ASN.1
// tree. Property extraction (issuer, validity window) is stubbed: this
// library's scope stops at the TLV walker, not X.509 semantic decoding.
type Certificate struct {
	root *asn1cert.Node
}

// CreateCertificate parses certBytes (DER, or PEM if it carries the
// "-----BEGIN" armor) into a Certificate handle. keyBytes is accepted for
// API shape parity with the original facade but is unused: no private-key
// operations are implemented.
func CreateCertificate(certBytes, keyBytes []byte) (*Certificate, error) {
	der := certBytes
	if len(certBytes) >= len("-----BEGIN") && string(certBytes[:len("-----BEGIN")]) == "-----BEGIN" {
		decoded, err := asn1cert.ExtractDER(certBytes)
		if err != nil {
			return nil, fmt.Errorf("cablelock: %w: %w", err, ErrMalformedData)
		}
		der = decoded
	}

	root, err := asn1cert.Parse(der)
	if err != nil {
		return nil, fmt.Errorf("cablelock: %w: %w", err, ErrMalformedData)
	}
	return &Certificate{root: root}, nil
}

// IsExpired always reports true for any non-nil handle. This mirrors a
// documented defect in the original source (crypto_certificate.c never
// implemented the validity-window check), carried forward deliberately
// rather than silently fixed, since spec.md treats it as a caller-visible
// part of the legacy behavior.
func (c *Certificate) IsExpired() bool {
	return c != nil
}

// Root returns the parsed ASN.1 tree's root node, for callers that want to
// walk the certificate structure directly.
func (c *Certificate) Root() *asn1cert.Node {
	if c == nil {
		return nil
	}
	return c.root
}
