// Package barcode validates EAN-8, EAN-13, EAN-14 and UPC-A codes and
// normalizes them to their canonical full code.
package barcode

import (
	"errors"
)

var (
	ErrNotNumeric        = errors.New("barcode must contain digits only")
	ErrInvalidLength     = errors.New("invalid barcode length")
	ErrInvalidCheckDigit = errors.New("invalid barcode check digit")
)

// Normalize validates code against its symbology's check digit and returns
// the canonical form. A 12-digit UPC-A is normalized to its 13-digit EAN
// spelling so every product has exactly one stored representation.
func Normalize(code string) (string, error) {
	if !numeric(code) {
		return "", ErrNotNumeric
	}

	switch len(code) {
	case 8, 12, 13, 14:
	default:
		return "", ErrInvalidLength
	}

	if !checksumOK(code) {
		return "", ErrInvalidCheckDigit
	}

	if len(code) == 12 {
		return "0" + code, nil
	}
	return code, nil
}

// Valid reports whether code is a well-formed, checksum-valid barcode.
func Valid(code string) bool {
	_, err := Normalize(code)
	return err == nil
}

func numeric(code string) bool {
	if code == "" {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// checksumOK applies the GS1 check-digit algorithm shared by all supported
// symbologies: alternating 3/1 weights starting from the digit next to the
// check digit.
func checksumOK(code string) bool {
	sum := 0
	for i := 0; i < len(code)-1; i++ {
		d := int(code[len(code)-2-i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	check := (10 - sum%10) % 10
	return check == int(code[len(code)-1]-'0')
}
