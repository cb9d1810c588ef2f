package model

// KDF identifiers stored inside an EncryptedBlob.
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// KDFParams are the tuning parameters of the key derivation function that
// protected a blob. They are persisted next to the ciphertext so legacy
// vaults stay decryptable after defaults change.
type KDFParams struct {
	Iterations  int    `json:"iterations,omitempty"`  // pbkdf2
	MemoryKiB   uint32 `json:"memoryKiB,omitempty"`   // argon2id
	Time        uint32 `json:"time,omitempty"`        // argon2id
	Parallelism uint8  `json:"parallelism,omitempty"` // argon2id
	KeyLen      int    `json:"keyLen"`
}

// EncryptedBlob is the stable wire format of password-encrypted data.
// Binary fields are base64 strings.
type EncryptedBlob struct {
	Version    int       `json:"version"`
	CipherText string    `json:"ciphertext"`
	Nonce      string    `json:"nonce"`
	Salt       string    `json:"salt"`
	KDF        string    `json:"kdf"`
	KDFParams  KDFParams `json:"kdfParams"`
}
