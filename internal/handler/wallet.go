package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"owt/internal/config"
	"owt/internal/crypto"
	"owt/internal/model"
	"owt/internal/store"
	"owt/wallet"
)

// WalletHandler serves the wallet engine over HTTP.
type WalletHandler struct {
	svc *wallet.Service
}

// NewWalletHandler creates a new WalletHandler over the given service.
func NewWalletHandler(svc *wallet.Service) *WalletHandler {
	return &WalletHandler{svc: svc}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new wallet from fresh entropy and stores it in the encrypted vault. The mnemonic is returned once.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Optional display name"
// @Success      200      {object}  model.GenerateResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if r.Body != nil {
		// body is optional; a missing name gets a default
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetVaultPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	generated, err := h.svc.Generate(req.Name, passwordBytes)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	qr, err := wallet.AddressQR(generated.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:  true,
		Message:  "Wallet generated successfully",
		ID:       generated.ID,
		Address:  generated.Address,
		Mnemonic: generated.Mnemonic,
		QR:       qr,
	})
}

// Import handles POST /wallet/import
// @Summary      Import wallet
// @Description  Imports a wallet from a mnemonic or a raw private key (hex or base64)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Mnemonic or private key"
// @Success      200      {object}  model.GenerateResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if (req.Mnemonic == "") == (req.PrivateKey == "") {
		writeError(w, http.StatusBadRequest, errors.New("provide exactly one of mnemonic or privateKey"))
		return
	}

	passwordBytes, err := config.GetVaultPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	var imported *model.Wallet
	if req.Mnemonic != "" {
		imported, err = h.svc.ImportMnemonic(req.Mnemonic, req.Name, passwordBytes)
	} else {
		imported, err = h.svc.ImportPrivateKey(req.PrivateKey, req.Name, passwordBytes)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet imported successfully",
		ID:      imported.ID,
		Address: imported.Address,
	})
}

// List handles GET /wallet/list
// @Summary      List wallets
// @Description  Lists the wallets in the vault without any key material
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ListResponse
// @Router       /wallet/list [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	wallets, err := h.svc.Store().Wallets()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	active, _ := h.svc.Store().Active()

	resp := model.ListResponse{Wallets: make([]model.WalletInfo, 0, len(wallets))}
	for _, entry := range wallets {
		resp.Wallets = append(resp.Wallets, model.WalletInfo{
			ID:      entry.ID,
			Name:    entry.Name,
			Address: entry.Address,
			Active:  active != nil && active.Address == entry.Address,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rename handles POST /wallet/rename
// @Summary      Rename wallet
// @Description  Changes a wallet's display name, looked up by id or (for legacy vaults) by address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body  model.RenameRequest  true  "Wallet id (or address) and new name"
// @Success      204
// @Router       /wallet/rename [post]
func (h *WalletHandler) Rename(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	passwordBytes, err := config.GetVaultPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	if err := h.svc.Store().RenameWallet(req.ID, req.Name, passwordBytes); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove handles POST /wallet/remove
// @Summary      Remove wallet
// @Description  Removes a wallet from the vault by id
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body  model.RemoveRequest  true  "Wallet id"
// @Success      204
// @Router       /wallet/remove [post]
func (h *WalletHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	passwordBytes, err := config.GetVaultPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	if err := h.svc.Store().RemoveWallet(req.ID, passwordBytes); err != nil {
		writeStoreError(w, err)
		return
	}
	h.svc.InvalidateAllBalances()
	w.WriteHeader(http.StatusNoContent)
}

// SwitchActive handles POST /wallet/active
// @Summary      Switch active wallet
// @Description  Updates the active wallet pointer; no re-encryption happens
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body  model.SwitchActiveRequest  true  "Wallet index"
// @Success      204
// @Router       /wallet/active [post]
func (h *WalletHandler) SwitchActive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SwitchActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.svc.Store().SwitchActive(req.Index); err != nil {
		writeStoreError(w, err)
		return
	}
	h.svc.InvalidateAllBalances()
	w.WriteHeader(http.StatusNoContent)
}

// GetBalance handles GET /wallet/balance
// @Summary      Get active wallet balance
// @Description  Gets the balance and nonce of the active wallet, cached with a short TTL
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address, balance, err := h.svc.ActiveBalance(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: address,
		Balance: balance.Balance,
		Nonce:   balance.Nonce,
	})
}

// Send handles POST /wallet/send
// @Summary      Send OCT
// @Description  Builds, signs and submits a transfer from the active wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer data"
// @Success      200      {object}  model.SendResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	passwordBytes, err := config.GetVaultPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes)

	hash, err := h.svc.Send(r.Context(), req.ToAddress, req.Amount, req.Message, passwordBytes)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SendResponse{TxHash: hash})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// writeStoreError maps engine errors onto HTTP statuses. Decryption failures
// keep their single generic message.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, store.ErrDuplicateWallet):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, store.ErrLocked):
		writeError(w, http.StatusForbidden, err)
	case errors.Is(err, crypto.ErrDecryption):
		writeError(w, http.StatusUnauthorized, crypto.ErrDecryption)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
