package model

// SignedTransaction is the network wire format for a signed transfer.
// Field names, the "to_" spelling and the string-typed Amount/OU are part of
// the compatibility surface with the Octra network. Message is appended after
// signing and is never covered by the signature.
type SignedTransaction struct {
	From      string  `json:"from"`
	To        string  `json:"to_"`
	Amount    string  `json:"amount"`
	Nonce     uint64  `json:"nonce"`
	OU        string  `json:"ou"`
	Timestamp float64 `json:"timestamp"`
	Signature string  `json:"signature"`
	PublicKey string  `json:"public_key"`
	Message   string  `json:"message,omitempty"`
}

// FeeEstimate is the network fee quote in operation units.
type FeeEstimate struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

// Balance is the account state returned by the RPC node.
type Balance struct {
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// StagedTransaction is a pending (not yet finalized) transaction reported by
// the node; used to avoid nonce collisions against in-flight sends.
type StagedTransaction struct {
	Hash  string `json:"hash"`
	From  string `json:"from"`
	Nonce uint64 `json:"nonce"`
}
