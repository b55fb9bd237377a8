// Package crypto protects the credentials the client keeps on disk.
//
// A [KeyChain] derives an AES-256-GCM key from an operator secret with
// Argon2id and seals short strings such as access and refresh tokens. The
// sealed form is "v1:" followed by base64(nonce || ciphertext).
package crypto

// KeyChain seals and opens secrets at rest.
type KeyChain interface {
	// Seal encrypts plaintext. Every call uses a fresh nonce.
	Seal(plaintext string) (string, error)

	// Open decrypts a value produced by Seal. It returns ErrNotSealed for
	// values without the sealed prefix and ErrDecrypt when the secret is
	// wrong or the value was tampered with.
	Open(sealed string) (string, error)
}
