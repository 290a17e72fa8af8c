package ipn

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// VerifySignature checks the IPN v2 payload signature. The signature covers
// every scalar leaf of the payload except the signature member itself,
// flattened depth-first in the exact order the provider serialized them,
// joined with "|", followed by the merchant's IPN key, hashed with SHA-256.
//
// The raw body is walked token by token instead of decoding into a map so
// object key order survives; the scheme is deliberately not canonicalized
// and only verifies against the byte order SimPay sent.
func VerifySignature(body []byte, secret string) bool {
	leaves, signature, err := flattenPayload(body)
	if err != nil || signature == "" {
		return false
	}

	leaves = append(leaves, secret)
	sum := sha256.Sum256([]byte(strings.Join(leaves, "|")))
	expected := hex.EncodeToString(sum[:])

	return hmac.Equal([]byte(expected), []byte(signature))
}

// flattenPayload collects the scalar leaves of the top-level JSON object in
// document order, skipping the "signature" member and returning its value
// separately.
func flattenPayload(body []byte) ([]string, string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, "", err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, "", errors.New("payload is not a JSON object")
	}

	var leaves []string
	var signature string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, "", err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, "", fmt.Errorf("unexpected token %v", keyTok)
		}

		if key == "signature" {
			valTok, err := dec.Token()
			if err != nil {
				return nil, "", err
			}
			if s, ok := valTok.(string); ok {
				signature = s
				continue
			}
			return nil, "", errors.New("signature is not a string")
		}

		if leaves, err = flattenValue(dec, leaves); err != nil {
			return nil, "", err
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, "", err
	}

	return leaves, signature, nil
}

func flattenValue(dec *json.Decoder, leaves []string) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if t != '{' && t != '[' {
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
		for dec.More() {
			if t == '{' {
				if _, err := dec.Token(); err != nil {
					return nil, err
				}
			}
			if leaves, err = flattenValue(dec, leaves); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return leaves, nil
	case string:
		return append(leaves, t), nil
	case json.Number:
		return append(leaves, numberLeaf(t)), nil
	case bool:
		if t {
			return append(leaves, "1"), nil
		}
		return append(leaves, ""), nil
	default:
		// null
		return append(leaves, ""), nil
	}
}

// numberLeaf renders a number the way the provider stringifies decoded
// values: integer literals keep their text, fractional values drop
// insignificant zeros. 99.00 contributes "99", 99.50 contributes "99.5".
func numberLeaf(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}

	f, err := n.Float64()
	if err != nil {
		return s
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
