// Package crypto implements password-based authenticated encryption of the
// vault: PBKDF2 (baseline) or Argon2id (opt-in upgrade) key derivation and
// AES-256-GCM sealing of the JSON-serialized wallet list.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"owt/internal/model"
)

// blobVersion is the current EncryptedBlob format version.
const blobVersion = 1

// Encrypt serializes v to JSON and seals it under the given password with a
// fresh random salt and nonce. The KDF identifier and parameters are embedded
// in the returned blob so future code can decrypt it unchanged.
// password must be []byte for security (caller should zero it after use).
func Encrypt(v any, password []byte, kdf string) (*model.EncryptedBlob, error) {
	params, err := DefaultKDFParams(kdf)
	if err != nil {
		return nil, err
	}

	// Generate salt and nonce; never reused across calls
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := DeriveKey(password, salt, kdf, params)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vault data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	return &model.EncryptedBlob{
		Version:    blobVersion,
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		KDF:        kdf,
		KDFParams:  params,
	}, nil
}

// Reencrypt decrypts a blob with oldPassword and seals the same payload under
// newPassword with a fresh salt and nonce. The target KDF may differ from the
// blob's, which makes this the explicit Argon2id migration path as well as
// the password-change primitive.
func Reencrypt(blob *model.EncryptedBlob, oldPassword, newPassword []byte, kdf string) (*model.EncryptedBlob, error) {
	var payload json.RawMessage
	if err := Decrypt(blob, oldPassword, &payload); err != nil {
		return nil, err
	}
	defer clear(payload)
	return Encrypt(payload, newPassword, kdf)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
