// Package client implements the HTTP client for the Octra RPC node.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"owt/internal/model"

	"github.com/jpillora/backoff"
	"go.uber.org/zap"
)

const (
	requestTimeout = 15 * time.Second
	maxAttempts    = 3
)

// ErrNetworkTimeout is returned when the node does not answer within the
// request deadline. Callers degrade to defaults or stale cache instead of
// failing the user-visible operation.
var ErrNetworkTimeout = errors.New("rpc request timed out")

// OctraClient is a client for the Octra node RPC
type OctraClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewOctraClient creates a new client for the given node URL.
func NewOctraClient(baseURL string, log *zap.Logger) *OctraClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &OctraClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// GetBalance gets the balance and nonce for an address.
func (c *OctraClient) GetBalance(ctx context.Context, address string) (*model.Balance, error) {
	var out model.Balance
	path := "/balance/" + url.PathEscape(address)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &out, nil
}

// GetFeeEstimate gets the current fee quote for a raw (micro unit) amount.
func (c *OctraClient) GetFeeEstimate(ctx context.Context, amountRaw string) (*model.FeeEstimate, error) {
	var out model.FeeEstimate
	path := "/fee-estimate?amount=" + url.QueryEscape(amountRaw)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("failed to get fee estimate: %w", err)
	}
	return &out, nil
}

// GetStagedTransactions lists pending transactions known to the node, used
// to avoid nonce collisions against in-flight sends.
func (c *OctraClient) GetStagedTransactions(ctx context.Context) ([]model.StagedTransaction, error) {
	var out struct {
		StagedTransactions []model.StagedTransaction `json:"staged_transactions"`
	}
	if err := c.getJSON(ctx, "/staging", &out); err != nil {
		return nil, fmt.Errorf("failed to get staged transactions: %w", err)
	}
	return out.StagedTransactions, nil
}

// SendTransaction submits a signed transaction and returns its hash.
func (c *OctraClient) SendTransaction(ctx context.Context, tx *model.SignedTransaction) (string, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transaction: %w", err)
	}

	var out struct {
		Status string `json:"status"`
		TxHash string `json:"tx_hash"`
		Error  string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/send-tx", body, &out); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("node rejected transaction: %s", out.Error)
	}
	return out.TxHash, nil
}

func (c *OctraClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do performs one RPC call with bounded retries. Transport errors and 5xx
// responses are retried with exponential backoff; 4xx responses are not.
func (c *OctraClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	b := &backoff.Backoff{
		Min:    200 * time.Millisecond,
		Max:    2 * time.Second,
		Jitter: true,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = c.once(ctx, method, path, body, out)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}

		c.log.Warn("rpc request failed, retrying",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))

		select {
		case <-time.After(b.Duration()):
		case <-ctx.Done():
			return mapCtxErr(ctx.Err())
		}
	}
	return lastErr
}

// retryableStatusError marks a 5xx response for the retry loop.
type retryableStatusError struct {
	status int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("node returned status %d", e.status)
}

func retryable(err error) bool {
	var statusErr *retryableStatusError
	if errors.As(err, &statusErr) {
		return true
	}
	if errors.Is(err, ErrNetworkTimeout) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (c *OctraClient) once(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return ErrNetworkTimeout
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &retryableStatusError{status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func mapCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrNetworkTimeout
	}
	return err
}
