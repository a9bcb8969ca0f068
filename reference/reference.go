//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package reference computes reference ciphertexts from the packed
// private inputs of the two parties. The first party's input is the
// cipher key and the second party's input is the plaintext block.
// The result can be compared against the output of the secure
// computation.
package reference

import (
	"fmt"
)

// InvalidKeyOrBlockSizeError is returned when the key or plaintext
// length does not match the cipher's block size.
type InvalidKeyOrBlockSizeError struct {
	What string
	Len  int
	Want int
}

func (e *InvalidKeyOrBlockSizeError) Error() string {
	return fmt.Sprintf("invalid %s size %d bytes, expected %d",
		e.What, e.Len, e.Want)
}

func checkSize(enc Encrypter, what string, data []byte) error {
	if len(data) != enc.BlockSize() {
		return &InvalidKeyOrBlockSizeError{
			What: what,
			Len:  len(data),
			Want: enc.BlockSize(),
		}
	}
	return nil
}

// Compute encrypts the single plaintext block with key. Both key and
// plaintext must be exactly one block long; the encrypter rejects
// other sizes with InvalidKeyOrBlockSizeError. The input is never
// padded or truncated.
func Compute(enc Encrypter, key, plaintext []byte) ([]byte, error) {
	ciphertext, err := enc.Encrypt(key, plaintext)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) != enc.BlockSize() {
		return nil, fmt.Errorf("cipher returned %d bytes, expected %d",
			len(ciphertext), enc.BlockSize())
	}
	return ciphertext, nil
}

// MismatchError describes the difference between the reference and
// the protocol output.
type MismatchError struct {
	Offset   int
	Expected []byte
	Actual   []byte
}

func (e *MismatchError) Error() string {
	if len(e.Expected) != len(e.Actual) {
		return fmt.Sprintf("output length %d, expected %d",
			len(e.Actual), len(e.Expected))
	}
	return fmt.Sprintf("output differs at byte %d: 0x%02x, expected 0x%02x",
		e.Offset, e.Actual[e.Offset], e.Expected[e.Offset])
}

// Compare compares the protocol output actual against the reference
// value expected.
func Compare(expected, actual []byte) error {
	if len(expected) != len(actual) {
		return &MismatchError{
			Expected: expected,
			Actual:   actual,
		}
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return &MismatchError{
				Offset:   i,
				Expected: expected,
				Actual:   actual,
			}
		}
	}
	return nil
}
