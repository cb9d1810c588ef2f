package model

// Wallet represents a single decrypted wallet entry in the vault.
// PublicKey and PrivateKey are base64-encoded Ed25519 keys (32-byte seed for
// the private key). Mnemonic is empty for wallets imported from a raw key.
type Wallet struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Vault is the decrypted wallet collection plus the active wallet pointer.
// It is only ever persisted in encrypted form.
type Vault struct {
	Wallets     []Wallet `json:"wallets"`
	ActiveIndex int      `json:"activeIndex"`
}

// MaxWalletNameLen caps user-editable wallet display names.
const MaxWalletNameLen = 20
