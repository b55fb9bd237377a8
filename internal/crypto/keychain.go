// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	sealedPrefix = "v1:"
	// SaltSize is the length of salts returned by NewSalt.
	SaltSize = 16
)

// argonParams are the Argon2id cost parameters.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgon follows the OWASP (2024) Argon2id recommendation: one pass
// over 64 MiB with four lanes and a 256-bit key.
var defaultArgon = argonParams{time: 1, memory: 64 * 1024, threads: 4, keyLen: 32}

type keyChain struct {
	aead cipher.AEAD
}

// NewSalt returns SaltSize random bytes from the OS CSPRNG. The salt is not
// secret and is stored next to the sealed values.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// NewKeyChain derives the sealing key from secret and salt.
func NewKeyChain(secret string, salt []byte) (KeyChain, error) {
	return newKeyChain(secret, salt, defaultArgon)
}

func newKeyChain(secret string, salt []byte, p argonParams) (*keyChain, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if len(salt) < 8 {
		return nil, ErrShortSalt
	}

	key := argon2.IDKey([]byte(secret), salt, p.time, p.memory, p.threads, p.keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &keyChain{aead: aead}, nil
}

func (k *keyChain) Seal(plaintext string) (string, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	blob := k.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChain) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", ErrNotSealed
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	nonceSize := k.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	plaintext, err := k.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return string(plaintext), nil
}
