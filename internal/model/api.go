package model

// GenerateRequest represents request for POST /wallet/generate
type GenerateRequest struct {
	Name string `json:"name,omitempty"`
}

// GenerateResponse represents response for POST /wallet/generate.
// The mnemonic is returned exactly once, at generation time.
type GenerateResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ID       string `json:"id,omitempty"`
	Address  string `json:"address,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"`
	QR       string `json:"qr,omitempty"`
}

// ImportRequest represents request for POST /wallet/import.
// Exactly one of Mnemonic and PrivateKey must be set.
type ImportRequest struct {
	Name       string `json:"name,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// WalletInfo is the public view of a vault entry: no key material.
type WalletInfo struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// ListResponse represents response for GET /wallet/list
type ListResponse struct {
	Wallets []WalletInfo `json:"wallets"`
}

// RenameRequest represents request for POST /wallet/rename
type RenameRequest struct {
	ID   string `json:"id"` // wallet id, or address for legacy vaults
	Name string `json:"name"`
}

// RemoveRequest represents request for POST /wallet/remove
type RemoveRequest struct {
	ID string `json:"id"`
}

// SwitchActiveRequest represents request for POST /wallet/active
type SwitchActiveRequest struct {
	Index int `json:"index"`
}

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// SendRequest represents request for POST /wallet/send
type SendRequest struct {
	ToAddress string `json:"toAddress" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Message   string `json:"message,omitempty"`
}

// SendResponse represents response for POST /wallet/send
type SendResponse struct {
	TxHash string `json:"txHash"`
}
