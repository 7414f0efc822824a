package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"contract_monthly_claim/internal/usecase/interfaces"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32

	// BlobVersionAESGCM tags blobs sealed with AES-256-GCM and a 12-byte nonce.
	BlobVersionAESGCM byte = 0x01

	nonceSize = 12
	hkdfInfo  = "contract-monthly-claim/document-vault/v1"
)

var (
	ErrMissingKey             = errors.New("missing DOCUMENT_ENCRYPTION_KEY")
	ErrInvalidKeySize         = errors.New("encryption key must be 32 bytes")
	ErrMalformedBlob          = errors.New("malformed encrypted blob")
	ErrUnsupportedBlobVersion = errors.New("unsupported encrypted blob version")
	ErrDecryptionFailed       = errors.New("decryption failed: authentication tag mismatch")
)

// AESGCMCipher seals document payloads for the vault.
//
// Blob layout:
//   - byte 0: version tag (also bound as GCM additional data)
//   - bytes 1..12: random nonce
//   - rest: ciphertext || tag
//
// The AEAD is read-only after construction, so one instance is safe for
// concurrent use by every request.
type AESGCMCipher struct {
	aead cipher.AEAD
}

var _ interfaces.ICipher = (*AESGCMCipher)(nil)

func NewAESGCMCipher(key []byte) (*AESGCMCipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM cipher: %w", err)
	}
	return &AESGCMCipher{aead: gcm}, nil
}

// KeyFromSecret turns the configured secret into a 32-byte key. A base64
// value that decodes to exactly 32 bytes is used as-is; anything else is run
// through HKDF-SHA256.
func KeyFromSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrMissingKey
	}
	if raw, err := base64.StdEncoding.DecodeString(secret); err == nil && len(raw) == KeySize {
		return raw, nil
	}

	key := make([]byte, KeySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

func (c *AESGCMCipher) Encrypt(plaintext []byte) ([]byte, error) {
	out := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+c.aead.Overhead())
	out[0] = BlobVersionAESGCM
	if _, err := io.ReadFull(rand.Reader, out[1:1+nonceSize]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(out, out[1:1+nonceSize], plaintext, out[:1]), nil
}

func (c *AESGCMCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 1+nonceSize+c.aead.Overhead() {
		return nil, ErrMalformedBlob
	}
	if ciphertext[0] != BlobVersionAESGCM {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedBlobVersion, ciphertext[0])
	}
	nonce := ciphertext[1 : 1+nonceSize]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext[1+nonceSize:], ciphertext[:1])
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
