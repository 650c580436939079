package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"ownly-protocol/internal/core/domain"
	"ownly-protocol/pkg/apperror"

	"golang.org/x/crypto/pbkdf2"
)

// PayloadCipherService implements ports.PayloadCipher: PBKDF2-derived key,
// AES-256-GCM over the JSON lock payload, base64 output with the nonce
// prefixed. The authenticated mode makes wrong-key decryption fail
// deterministically instead of yielding silent garbage.
type PayloadCipherService struct {
	salt       []byte
	iterations int
}

// NewPayloadCipherService creates a payload cipher with the given
// key-derivation parameters.
func NewPayloadCipherService(salt string, iterations int) *PayloadCipherService {
	return &PayloadCipherService{
		salt:       []byte(salt),
		iterations: iterations,
	}
}

func (s *PayloadCipherService) deriveKey(passphrase string) []byte {
	return pbkdf2.Key([]byte(passphrase), s.salt, s.iterations, 32, sha256.New)
}

// Encrypt serializes and encrypts a lock payload under the passphrase.
func (s *PayloadCipherService) Encrypt(passphrase string, payload *domain.LockPayload) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	block, err := aes.NewCipher(s.deriveKey(passphrase))
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := aesGCM.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts a payload ciphertext. A wrong passphrase fails the GCM
// authentication check (CRYPTO_001); a plaintext that does not parse into the
// expected structure is surfaced as garbage (CRYPTO_002).
func (s *PayloadCipherService) Decrypt(passphrase string, ciphertext string) (*domain.LockPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(fmt.Errorf("decoding ciphertext: %w", err))
	}

	block, err := aes.NewCipher(s.deriveKey(passphrase))
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(fmt.Errorf("creating cipher: %w", err))
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(fmt.Errorf("creating GCM: %w", err))
	}

	nonceSize := aesGCM.NonceSize()
	if len(raw) < nonceSize {
		return nil, apperror.ErrDecryptionFailed(fmt.Errorf("ciphertext too short"))
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(err)
	}

	payload := &domain.LockPayload{}
	if err := json.Unmarshal(plaintext, payload); err != nil {
		return nil, apperror.ErrDecryptionGarbage(err)
	}
	if err := payload.Validate(); err != nil {
		return nil, apperror.ErrDecryptionGarbage(err)
	}
	return payload, nil
}
