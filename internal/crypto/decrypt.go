package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"owt/internal/model"
)

// ErrDecryption is returned for every unlock failure: wrong password,
// corrupted ciphertext, or a malformed blob. The causes are deliberately
// indistinguishable so a caller cannot be used as a password oracle.
var ErrDecryption = errors.New("invalid password or corrupted data")

// Decrypt opens a blob with the given password and unmarshals the plaintext
// JSON into out.
// password must be []byte for security (caller should zero it after use).
func Decrypt(blob *model.EncryptedBlob, password []byte, out any) error {
	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	if err != nil {
		return ErrDecryption
	}

	nonce, err := base64.StdEncoding.DecodeString(blob.Nonce)
	if err != nil {
		return ErrDecryption
	}

	ciphertext, err := base64.StdEncoding.DecodeString(blob.CipherText)
	if err != nil {
		return ErrDecryption
	}

	key, err := DeriveKey(password, salt, blob.KDF, blob.KDFParams)
	if err != nil {
		return ErrDecryption
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return ErrDecryption
	}
	if len(nonce) != aesGCM.NonceSize() {
		return ErrDecryption
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// authentication tag mismatch
		return ErrDecryption
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	if err := json.Unmarshal(plaintext, out); err != nil {
		return fmt.Errorf("failed to unmarshal vault data: %w", err)
	}

	return nil
}
