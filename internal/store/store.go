package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"owt/internal/crypto"
	"owt/internal/model"

	"github.com/google/uuid"
)

// Storage keys inside the KV store.
const (
	vaultKey    = "wallets"
	settingsKey = "settings"
)

var (
	// ErrLocked is returned by operations that require an unlocked vault.
	ErrLocked = errors.New("vault is locked")
	// ErrNotFound is returned when no wallet matches the given id or address.
	ErrNotFound = errors.New("wallet not found")
	// ErrDuplicateWallet is returned when the vault already holds the address.
	ErrDuplicateWallet = errors.New("wallet with this address already exists")
)

// settings is the small plaintext per-install state kept next to the vault.
// The active index is duplicated here so switching wallets never has to pay
// for a KDF round trip.
type settings struct {
	ActiveIndex int `json:"activeIndex"`
}

// Store is a state machine over the encrypted vault: Locked until a password
// is accepted, Unlocked until an explicit Lock. Every mutating operation is a
// read-modify-write of the whole encrypted blob under one mutex, so a second
// mutation can never start before the first one's write completes.
type Store struct {
	mu sync.Mutex

	kv       KV
	unlocked bool
	kdf      string       // KDF of the persisted blob, preserved across mutations
	vault    *model.Vault // decrypted copy, valid only while unlocked
}

// New returns a locked store over the given KV backend.
func New(kv KV) *Store {
	return &Store{kv: kv, kdf: model.KDFPBKDF2}
}

// Unlock decrypts the vault with the given password and transitions to the
// Unlocked state. A missing vault unlocks as empty, so a first run accepts
// any password; a deleted or renamed vault file looks exactly the same.
// Callers that need to tell those apart should check HasVault first. Any
// decryption failure is reported as the single generic crypto.ErrDecryption.
func (s *Store) Unlock(password []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vault, kdf, err := s.load(password)
	if err != nil {
		return err
	}

	// plaintext settings may carry a fresher active index than the blob
	if st, err := s.loadSettings(); err == nil && st != nil {
		vault.ActiveIndex = st.ActiveIndex
	}
	clampActive(vault)

	s.vault = vault
	s.kdf = kdf
	s.unlocked = true
	return nil
}

// HasVault reports whether an encrypted vault blob exists in the backing
// store. It does not require the store to be unlocked.
func (s *Store) HasVault() (bool, error) {
	raw, err := s.kv.Get(vaultKey)
	if err != nil {
		return false, fmt.Errorf("failed to read vault: %w", err)
	}
	return raw != nil, nil
}

// Lock drops the decrypted vault copy and returns to the Locked state.
func (s *Store) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vault = nil
	s.unlocked = false
}

// Unlocked reports whether the vault is currently unlocked.
func (s *Store) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

// Wallets returns a copy of the wallet list.
func (s *Store) Wallets() ([]model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return nil, ErrLocked
	}
	out := make([]model.Wallet, len(s.vault.Wallets))
	copy(out, s.vault.Wallets)
	return out, nil
}

// Active returns a copy of the currently selected wallet.
func (s *Store) Active() (*model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return nil, ErrLocked
	}
	if len(s.vault.Wallets) == 0 {
		return nil, ErrNotFound
	}
	w := s.vault.Wallets[s.vault.ActiveIndex]
	return &w, nil
}

// SwitchActive updates the active wallet pointer. It is a pure pointer
// update: the plaintext settings entry is rewritten but the encrypted blob
// is not touched.
func (s *Store) SwitchActive(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return ErrLocked
	}
	if index < 0 || index >= len(s.vault.Wallets) {
		return fmt.Errorf("active index %d out of range", index)
	}
	s.vault.ActiveIndex = index
	return s.saveSettings(&settings{ActiveIndex: index})
}

// AddWallet appends a wallet to the vault. A generated unique id and a
// default display name are assigned if absent. The first wallet added becomes
// the active one.
func (s *Store) AddWallet(w model.Wallet, password []byte) (*model.Wallet, error) {
	if len(w.Name) > model.MaxWalletNameLen {
		return nil, fmt.Errorf("wallet name exceeds %d characters", model.MaxWalletNameLen)
	}

	var added model.Wallet
	err := s.mutate(password, func(v *model.Vault) error {
		for _, existing := range v.Wallets {
			if existing.Address == w.Address {
				return ErrDuplicateWallet
			}
		}
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if w.Name == "" {
			w.Name = fmt.Sprintf("Wallet %d", len(v.Wallets)+1)
		}
		if w.CreatedAt == "" {
			w.CreatedAt = time.Now().Format(time.RFC3339)
		}
		v.Wallets = append(v.Wallets, w)
		if len(v.Wallets) == 1 {
			v.ActiveIndex = 0
		}
		added = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// RemoveWallet deletes the wallet with the given id and re-clamps the active
// index into bounds.
func (s *Store) RemoveWallet(id string, password []byte) error {
	return s.mutate(password, func(v *model.Vault) error {
		for i, w := range v.Wallets {
			if w.ID == id {
				v.Wallets = append(v.Wallets[:i], v.Wallets[i+1:]...)
				clampActive(v)
				return nil
			}
		}
		return ErrNotFound
	})
}

// RenameWallet changes a wallet's display name. Lookup is by id first, then
// by address, for vaults created before wallets carried ids.
func (s *Store) RenameWallet(idOrAddress, name string, password []byte) error {
	if len(name) > model.MaxWalletNameLen {
		return fmt.Errorf("wallet name exceeds %d characters", model.MaxWalletNameLen)
	}
	return s.mutate(password, func(v *model.Vault) error {
		for i := range v.Wallets {
			if v.Wallets[i].ID != "" && v.Wallets[i].ID == idOrAddress {
				v.Wallets[i].Name = name
				return nil
			}
		}
		for i := range v.Wallets {
			if v.Wallets[i].Address == idOrAddress {
				v.Wallets[i].Name = name
				return nil
			}
		}
		return ErrNotFound
	})
}

// ChangePassword re-encrypts the vault under a new password with a fresh
// salt and nonce. The stored blob is only replaced after the new one has
// been written successfully (atomic KV replace).
func (s *Store) ChangePassword(oldPassword, newPassword []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return ErrLocked
	}
	return s.reencrypt(oldPassword, newPassword, s.kdf)
}

// MigrateKDF re-encrypts the vault under the given KDF. This is the explicit
// opt-in upgrade path (e.g. pbkdf2 to argon2id); unlocking never migrates
// implicitly.
func (s *Store) MigrateKDF(password []byte, kdf string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return ErrLocked
	}
	if err := s.reencrypt(password, password, kdf); err != nil {
		return err
	}
	s.kdf = kdf
	return nil
}

// mutate runs the decrypt-modify-encrypt-persist cycle for one mutation.
func (s *Store) mutate(password []byte, fn func(v *model.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlocked {
		return ErrLocked
	}

	vault, kdf, err := s.load(password)
	if err != nil {
		return err
	}
	// SwitchActive only rewrites the settings entry, so the blob's active
	// index may be stale; the in-memory one is authoritative.
	vault.ActiveIndex = s.vault.ActiveIndex
	clampActive(vault)
	if err := fn(vault); err != nil {
		return err
	}
	if err := s.persist(vault, password, kdf); err != nil {
		return err
	}
	s.vault = vault
	s.kdf = kdf
	return nil
}

// load reads and decrypts the persisted vault. A missing blob yields an
// empty vault under the default KDF.
func (s *Store) load(password []byte) (*model.Vault, string, error) {
	raw, err := s.kv.Get(vaultKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read vault: %w", err)
	}
	if raw == nil {
		return &model.Vault{Wallets: []model.Wallet{}}, model.KDFPBKDF2, nil
	}

	var blob model.EncryptedBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, "", crypto.ErrDecryption
	}

	var vault model.Vault
	if err := crypto.Decrypt(&blob, password, &vault); err != nil {
		return nil, "", err
	}
	if vault.Wallets == nil {
		vault.Wallets = []model.Wallet{}
	}
	return &vault, blob.KDF, nil
}

func (s *Store) persist(vault *model.Vault, password []byte, kdf string) error {
	blob, err := crypto.Encrypt(vault, password, kdf)
	if err != nil {
		return fmt.Errorf("failed to encrypt vault: %w", err)
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("failed to marshal vault blob: %w", err)
	}
	if err := s.kv.Put(vaultKey, raw); err != nil {
		return fmt.Errorf("failed to persist vault: %w", err)
	}
	return nil
}

func (s *Store) reencrypt(oldPassword, newPassword []byte, kdf string) error {
	vault, _, err := s.load(oldPassword)
	if err != nil {
		return err
	}
	vault.ActiveIndex = s.vault.ActiveIndex
	clampActive(vault)
	if err := s.persist(vault, newPassword, kdf); err != nil {
		return err
	}
	s.vault = vault
	return nil
}

func (s *Store) loadSettings() (*settings, error) {
	raw, err := s.kv.Get(settingsKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var st settings
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) saveSettings(st *settings) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.kv.Put(settingsKey, raw)
}

// clampActive resets the active index into bounds after removals.
func clampActive(v *model.Vault) {
	if v.ActiveIndex < 0 || v.ActiveIndex >= len(v.Wallets) {
		v.ActiveIndex = 0
	}
}
