package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"owt/internal/model"

	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/balance/octAbc", r.URL.Path)
		json.NewEncoder(w).Encode(model.Balance{Balance: "12.5", Nonce: 4})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	b, err := c.GetBalance(context.Background(), "octAbc")
	require.NoError(t, err)
	require.Equal(t, "12.5", b.Balance)
	require.EqualValues(t, 4, b.Nonce)
}

func TestGetFeeEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/fee-estimate", r.URL.Path)
		require.Equal(t, "1500000", r.URL.Query().Get("amount"))
		json.NewEncoder(w).Encode(model.FeeEstimate{Low: "1", Medium: "2", High: "3"})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	q, err := c.GetFeeEstimate(context.Background(), "1500000")
	require.NoError(t, err)
	require.Equal(t, "2", q.Medium)
}

func TestGetStagedTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/staging", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"staged_transactions": []model.StagedTransaction{{Hash: "h1", From: "octA", Nonce: 9}},
		})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	staged, err := c.GetStagedTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, staged, 1)
	require.EqualValues(t, 9, staged[0].Nonce)
}

func TestSendTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/send-tx", r.URL.Path)

		var tx model.SignedTransaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tx))
		require.Equal(t, "octFrom", tx.From)

		json.NewEncoder(w).Encode(map[string]string{"status": "accepted", "tx_hash": "deadbeef"})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	hash, err := c.SendTransaction(context.Background(), &model.SignedTransaction{From: "octFrom"})
	require.NoError(t, err)
	require.Equal(t, "deadbeef", hash)
}

func TestSendTransactionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid nonce"})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	_, err := c.SendTransaction(context.Background(), &model.SignedTransaction{})
	require.ErrorContains(t, err, "invalid nonce")
}

func TestRetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(model.Balance{Balance: "1", Nonce: 1})
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	b, err := c.GetBalance(context.Background(), "octA")
	require.NoError(t, err)
	require.Equal(t, "1", b.Balance)
	require.EqualValues(t, 3, calls.Load())
}

func TestNoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	_, err := c.GetBalance(context.Background(), "octA")
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}

func TestTimeoutSurfacesAsNetworkTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewOctraClient(srv.URL, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetBalance(ctx, "octA")
	require.ErrorIs(t, err, ErrNetworkTimeout)
}
