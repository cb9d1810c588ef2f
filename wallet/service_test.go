package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"owt/internal/client"
	"owt/internal/model"
	"owt/internal/store"

	"github.com/stretchr/testify/require"
)

var pw = []byte("vault password")

// fakeNode is a minimal in-memory Octra node.
type fakeNode struct {
	balance      model.Balance
	staged       []model.StagedTransaction
	fee          *model.FeeEstimate
	balanceCalls atomic.Int32

	received atomic.Pointer[model.SignedTransaction]
}

func (n *fakeNode) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance/", func(w http.ResponseWriter, r *http.Request) {
		n.balanceCalls.Add(1)
		json.NewEncoder(w).Encode(n.balance)
	})
	mux.HandleFunc("/staging", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"staged_transactions": n.staged})
	})
	mux.HandleFunc("/fee-estimate", func(w http.ResponseWriter, r *http.Request) {
		if n.fee == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(n.fee)
	})
	mux.HandleFunc("/send-tx", func(w http.ResponseWriter, r *http.Request) {
		var tx model.SignedTransaction
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		n.received.Store(&tx)
		json.NewEncoder(w).Encode(map[string]string{"status": "accepted", "tx_hash": "cafe01"})
	})
	return mux
}

func newTestService(t *testing.T, node *fakeNode) *Service {
	t.Helper()
	srv := httptest.NewServer(node.handler())
	t.Cleanup(srv.Close)

	kv, err := store.NewFileKV(t.TempDir())
	require.NoError(t, err)
	st := store.New(kv)
	require.NoError(t, st.Unlock(pw))

	return NewService(st, client.NewOctraClient(srv.URL, nil), 30*time.Second, nil)
}

func TestGenerateAddsToVault(t *testing.T) {
	s := newTestService(t, &fakeNode{})

	w, err := s.Generate("main", pw)
	require.NoError(t, err)
	require.NotEmpty(t, w.ID)
	require.Equal(t, "main", w.Name)
	require.Len(t, strings.Fields(w.Mnemonic), 12)

	ws, err := s.Store().Wallets()
	require.NoError(t, err)
	require.Len(t, ws, 1)

	// recovery through the service reproduces the address but is rejected
	// as a duplicate
	_, err = s.ImportMnemonic(w.Mnemonic, "copy", pw)
	require.ErrorIs(t, err, store.ErrDuplicateWallet)
}

func TestImportPrivateKey(t *testing.T) {
	s := newTestService(t, &fakeNode{})

	w, err := s.Generate("", pw)
	require.NoError(t, err)

	s2 := newTestService(t, &fakeNode{})
	imported, err := s2.ImportPrivateKey(w.PrivateKey, "imported", pw)
	require.NoError(t, err)
	require.Equal(t, w.Address, imported.Address)
	require.Empty(t, imported.Mnemonic)
}

func TestBalanceCached(t *testing.T) {
	node := &fakeNode{balance: model.Balance{Balance: "5.000000", Nonce: 2}}
	s := newTestService(t, node)

	_, err := s.Generate("", pw)
	require.NoError(t, err)

	addr, b, err := s.ActiveBalance(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, addr)
	require.Equal(t, "5.000000", b.Balance)

	// second read is served from the cache
	_, _, err = s.ActiveBalance(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, node.balanceCalls.Load())

	// invalidation forces a refetch
	s.InvalidateBalance(addr)
	_, _, err = s.ActiveBalance(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, node.balanceCalls.Load())
}

func TestSend(t *testing.T) {
	node := &fakeNode{
		balance: model.Balance{Balance: "100.000000", Nonce: 4},
		fee:     &model.FeeEstimate{Low: "1", Medium: "2", High: "3"},
	}
	s := newTestService(t, node)

	w, err := s.Generate("", pw)
	require.NoError(t, err)

	other, err := s.ImportPrivateKey(
		// any 32-byte seed; base64 of 32 zero bytes
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", "peer", pw)
	require.NoError(t, err)
	require.NoError(t, s.Store().SwitchActive(0))

	hash, err := s.Send(context.Background(), other.Address, "1.5", "", pw)
	require.NoError(t, err)
	require.Equal(t, "cafe01", hash)

	tx := node.received.Load()
	require.NotNil(t, tx)
	require.Equal(t, w.Address, tx.From)
	require.Equal(t, other.Address, tx.To)
	require.Equal(t, "1500000", tx.Amount)
	require.EqualValues(t, 5, tx.Nonce) // chain nonce 4 + 1
	require.Equal(t, "2", tx.OU)        // medium estimate

	ok, err := Verify(tx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSendBumpsNonceOverStaged(t *testing.T) {
	node := &fakeNode{
		balance: model.Balance{Balance: "100.000000", Nonce: 4},
	}
	s := newTestService(t, node)

	w, err := s.Generate("", pw)
	require.NoError(t, err)
	node.staged = []model.StagedTransaction{
		{Hash: "h", From: w.Address, Nonce: 7},
		{Hash: "h2", From: "octSomeoneElse", Nonce: 50},
	}

	other, err := s.ImportPrivateKey("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", "", pw)
	require.NoError(t, err)
	require.NoError(t, s.Store().SwitchActive(0))

	_, err = s.Send(context.Background(), other.Address, "2", "", pw)
	require.NoError(t, err)

	tx := node.received.Load()
	require.NotNil(t, tx)
	require.EqualValues(t, 8, tx.Nonce, "staged nonce 7 from us must be skipped")
}

func TestSendMessageAttachedUnsigned(t *testing.T) {
	node := &fakeNode{balance: model.Balance{Balance: "10.000000", Nonce: 0}}
	s := newTestService(t, node)

	_, err := s.Generate("", pw)
	require.NoError(t, err)
	other, err := s.ImportPrivateKey("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", "", pw)
	require.NoError(t, err)
	require.NoError(t, s.Store().SwitchActive(0))

	_, err = s.Send(context.Background(), other.Address, "0.5", "thanks!", pw)
	require.NoError(t, err)

	tx := node.received.Load()
	require.Equal(t, "thanks!", tx.Message)

	// signature stays valid with or without the message present
	ok, err := Verify(tx)
	require.NoError(t, err)
	require.True(t, ok)
	tx.Message = ""
	ok, err = Verify(tx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAddressQR(t *testing.T) {
	png, err := AddressQR("octSomeAddress")
	require.NoError(t, err)
	require.NotEmpty(t, png)
}
