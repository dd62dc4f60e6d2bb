package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Keeper encrypts and decrypts secret values using ChaCha20-Poly1305.
// It lets settings files carry ciphertext instead of plaintext credentials.
type Keeper struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
		NonceSize() int
	}
}

// NewKeeper creates a Keeper from a passphrase. The passphrase is hashed
// with SHA-256 to produce a consistent 32-byte key.
func NewKeeper(passphrase string) (*Keeper, error) {
	hasher := sha256.New()
	hasher.Write([]byte(passphrase))
	keyBytes := hasher.Sum(nil)

	aead, err := chacha20poly1305.New(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("create chacha20: %w", err)
	}

	return &Keeper{aead: aead}, nil
}

// Encrypt encrypts plaintext and returns a base64-encoded result.
func (k *Keeper) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := k.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a base64-encoded ciphertext.
func (k *Keeper) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := k.aead.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	plaintext, err := k.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

// Encrypted is a Secret whose value is stored as Keeper ciphertext.
// Reveal decrypts on demand; a decryption failure yields an empty value.
type Encrypted struct {
	keeper     *Keeper
	ciphertext string
}

// NewEncrypted wraps a base64 ciphertext produced by keeper.Encrypt.
func NewEncrypted(keeper *Keeper, ciphertext string) *Encrypted {
	return &Encrypted{keeper: keeper, ciphertext: ciphertext}
}

// Reveal decrypts and returns the plaintext value.
func (e *Encrypted) Reveal() string {
	if e.keeper == nil {
		return ""
	}
	plaintext, err := e.keeper.Decrypt(e.ciphertext)
	if err != nil {
		return ""
	}
	return plaintext
}

// String masks the value so accidental formatting never leaks it.
func (e *Encrypted) String() string { return "<secret>" }
