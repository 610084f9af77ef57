package contract

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DomainContract is the domain prefix for contract content hashing.
// The version suffix enables future algorithm migration.
const DomainContract = "orqui/contract/v1"

// stampKey is the reserved top-level key excluded from hashing.
const stampKey = "$orqui"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeHash computes the content-addressed hash of a contract
// document given as raw JSON. The `$orqui` stamp is removed before
// canonicalization so stamping is idempotent: hashing a stamped
// document yields the same hash that was stamped.
func ComputeHash(doc []byte) (string, error) {
	m, err := decodeDoc(doc)
	if err != nil {
		return "", fmt.Errorf("compute hash: %w", err)
	}
	delete(m, stampKey)

	canonical, err := MarshalCanonical(m)
	if err != nil {
		return "", fmt.Errorf("compute hash: %w", err)
	}
	return hashWithDomain(DomainContract, canonical), nil
}

// VerifyHash checks the `$orqui.hash` stamp of a contract document.
// Returns an error when the stamp is missing or does not match the
// recomputed content hash.
func VerifyHash(doc []byte) error {
	m, err := decodeDoc(doc)
	if err != nil {
		return fmt.Errorf("verify hash: %w", err)
	}

	stamp, ok := m[stampKey].(map[string]any)
	if !ok {
		return fmt.Errorf("verify hash: document has no %s stamp", stampKey)
	}
	want, _ := stamp["hash"].(string)
	if want == "" {
		return fmt.Errorf("verify hash: stamp has no hash field")
	}

	got, err := ComputeHash(doc)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("verify hash: mismatch: stamped %s, computed %s", want, got)
	}
	return nil
}

// decodeDoc decodes raw JSON into a generic map, preserving number
// precision via json.Number so canonicalization does not lose large
// integers to float64.
func decodeDoc(doc []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}
