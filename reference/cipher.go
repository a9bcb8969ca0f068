//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package reference

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/twofish"
)

// Encrypter encrypts one block of plaintext with the key.
type Encrypter interface {
	// BlockSize returns the key and block size in bytes.
	BlockSize() int
	// Encrypt encrypts the plaintext block with key.
	Encrypt(key, plaintext []byte) ([]byte, error)
}

// AES128 implements the Encrypter with AES-128.
type AES128 struct{}

// BlockSize implements Encrypter.BlockSize.
func (c AES128) BlockSize() int {
	return aes.BlockSize
}

// Encrypt implements Encrypter.Encrypt.
func (c AES128) Encrypt(key, plaintext []byte) ([]byte, error) {
	return encryptBlock(c, aes.NewCipher, key, plaintext)
}

// Twofish128 implements the Encrypter with Twofish and 128-bit keys.
type Twofish128 struct{}

// BlockSize implements Encrypter.BlockSize.
func (c Twofish128) BlockSize() int {
	return twofish.BlockSize
}

// Encrypt implements Encrypter.Encrypt.
func (c Twofish128) Encrypt(key, plaintext []byte) ([]byte, error) {
	return encryptBlock(c, func(key []byte) (cipher.Block, error) {
		return twofish.NewCipher(key)
	}, key, plaintext)
}

func encryptBlock(enc Encrypter, newCipher func([]byte) (cipher.Block, error),
	key, plaintext []byte) ([]byte, error) {

	if err := checkSize(enc, "key", key); err != nil {
		return nil, err
	}
	if err := checkSize(enc, "plaintext", plaintext); err != nil {
		return nil, err
	}
	block, err := newCipher(key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, block.BlockSize())
	block.Encrypt(ciphertext, plaintext)
	return ciphertext, nil
}

var encrypters = map[string]Encrypter{
	"aes":     AES128{},
	"twofish": Twofish128{},
}

// Ciphers returns the names of the supported ciphers.
func Ciphers() []string {
	var names []string
	for name := range encrypters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEncrypter creates the named encrypter.
func NewEncrypter(name string) (Encrypter, error) {
	enc, ok := encrypters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown cipher '%s', expected one of: %s",
			name, strings.Join(Ciphers(), ", "))
	}
	return enc, nil
}
