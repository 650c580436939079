package ledger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ownly-protocol/config"
	"ownly-protocol/internal/core/domain"
	"ownly-protocol/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// Client talks JSON-RPC to a pool of equivalent fullnode endpoints. The
// current endpoint index lives on the client, not in package state, and
// advances whenever a request fails with a transport error.
type Client struct {
	httpClient *http.Client
	endpoints  []string
	packageID  string
	maxRetries int
	baseWait   time.Duration
	log        zerolog.Logger

	mu      sync.Mutex
	current int
	nextID  atomic.Int64
}

// NewClient creates a ledger client from configuration. The http.Client is
// injected so tests can point it at a stub server.
func NewClient(cfg config.LedgerConfig, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		endpoints:  cfg.Endpoints,
		packageID:  cfg.PackageID,
		maxRetries: cfg.MaxRetries,
		baseWait:   cfg.RetryBaseWait,
		log:        log,
	}
}

// PackageID returns the configured escrow contract package id.
func (c *Client) PackageID() string { return c.packageID }

func (c *Client) endpoint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.endpoints[c.current]
}

func (c *Client) rotate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % len(c.endpoints)
	c.log.Debug().Str("endpoint", c.endpoints[c.current]).Msg("switched ledger endpoint")
}

// call performs one JSON-RPC method call with endpoint rotation and
// exponential backoff. Exhausting all attempts yields NET_001.
func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.baseWait * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doCall(ctx, c.endpoint(), method, params, out)
		if err == nil {
			return nil
		}
		lastErr = err

		var rpcErr *rpcCallError
		if errors.As(err, &rpcErr) {
			// The node answered; retrying another endpoint won't change it.
			return err
		}

		c.log.Warn().Err(err).Str("method", method).Int("attempt", attempt+1).Msg("ledger request failed")
		c.rotate()
	}

	return apperror.ErrNetworkUnavailable(fmt.Errorf("%s: %w", method, lastErr))
}

// rpcCallError is a definitive node-side rejection, not a transport failure.
type rpcCallError struct {
	code    int
	message string
}

func (e *rpcCallError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.code, e.message)
}

func (c *Client) doCall(ctx context.Context, endpoint, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("endpoint returned HTTP %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return &rpcCallError{code: rpcResp.Error.Code, message: rpcResp.Error.Message}
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
	}
	return nil
}

// GetBalance sums all coin objects of coinType owned by address, following
// pagination cursors.
func (c *Client) GetBalance(ctx context.Context, address domain.Address, coinType string) (*uint256.Int, error) {
	total := uint256.NewInt(0)
	var cursor *string

	for {
		var page coinPage
		params := []interface{}{address.String(), coinType, cursor, nil}
		if err := c.call(ctx, "suix_getCoins", params, &page); err != nil {
			return nil, err
		}
		for _, coin := range page.Data {
			v, err := uint256.FromDecimal(coin.Balance)
			if err != nil {
				return nil, fmt.Errorf("parse coin balance %q: %w", coin.Balance, err)
			}
			total.Add(total, v)
		}
		if !page.HasNextPage || page.NextCursor == nil {
			return total, nil
		}
		cursor = page.NextCursor
	}
}

// GetTransaction looks up a confirmed transaction by digest with effects and
// object changes. Returns nil, nil when the digest is not yet indexed.
func (c *Client) GetTransaction(ctx context.Context, digest string) (*domain.TransactionResult, error) {
	var resp txBlockResponse
	params := []interface{}{digest, txBlockOptions{
		ShowInput:         true,
		ShowEffects:       true,
		ShowEvents:        true,
		ShowObjectChanges: true,
	}}
	if err := c.call(ctx, "sui_getTransactionBlock", params, &resp); err != nil {
		var rpcErr *rpcCallError
		if errors.As(err, &rpcErr) && strings.Contains(rpcErr.message, "Could not find") {
			return nil, nil
		}
		return nil, err
	}
	return toResult(&resp), nil
}

// SubmitIntent serializes, signs and submits an intent, awaiting confirmation.
func (c *Client) SubmitIntent(ctx context.Context, intent *domain.Intent, signer domain.Signer) (*domain.TransactionResult, error) {
	txBytes, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("serialize intent: %w", err)
	}

	sig, err := signer.Sign(txBytes)
	if err != nil {
		return nil, fmt.Errorf("sign intent: %w", err)
	}

	// flag(ed25519=0x00) || signature || pubkey, base64 per the wire format
	serialized := append([]byte{0x00}, sig...)
	serialized = append(serialized, signer.PublicKey()...)

	var resp txBlockResponse
	params := []interface{}{
		base64.StdEncoding.EncodeToString(txBytes),
		[]string{base64.StdEncoding.EncodeToString(serialized)},
		txBlockOptions{ShowEffects: true, ShowObjectChanges: true},
		"WaitForLocalExecution",
	}
	if err := c.call(ctx, "sui_executeTransactionBlock", params, &resp); err != nil {
		return nil, err
	}

	result := toResult(&resp)
	if !result.Status.Success {
		return result, apperror.ErrLedgerRejected(result.Status.Error)
	}
	return result, nil
}

// QueryTransactions lists recent transactions sent from an address.
func (c *Client) QueryTransactions(ctx context.Context, from domain.Address, limit int) ([]domain.TransactionResult, error) {
	var page txQueryPage
	params := []interface{}{
		txQuery{
			Filter:  txQueryFilter{FromAddress: from.String()},
			Options: txBlockOptions{ShowInput: true, ShowEffects: true, ShowEvents: true},
		},
		nil,
		limit,
		true, // descending
	}
	if err := c.call(ctx, "suix_queryTransactionBlocks", params, &page); err != nil {
		return nil, err
	}

	out := make([]domain.TransactionResult, 0, len(page.Data))
	for i := range page.Data {
		out = append(out, *toResult(&page.Data[i]))
	}
	return out, nil
}

// VerifyPackage checks the configured contract package object exists on-chain.
func (c *Client) VerifyPackage(ctx context.Context) error {
	if c.packageID == "" {
		return fmt.Errorf("ledger package id not configured")
	}
	var read objectRead
	params := []interface{}{c.packageID, objectReadOptions{ShowContent: true}}
	if err := c.call(ctx, "sui_getObject", params, &read); err != nil {
		return err
	}
	if read.Data == nil {
		return fmt.Errorf("package object %s not found", c.packageID)
	}
	return nil
}

// Ping implements ports.HealthChecker.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "rpc.discover", nil, nil)
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "ledger" }

func toResult(resp *txBlockResponse) *domain.TransactionResult {
	result := &domain.TransactionResult{Digest: resp.Digest}

	if resp.Effects != nil {
		result.Status = domain.ExecutionStatus{
			Success: resp.Effects.Status.Status == "success",
			Error:   resp.Effects.Status.Error,
		}
		for _, obj := range resp.Effects.Created {
			result.Created = append(result.Created, domain.CreatedObject{
				ObjectID: obj.Reference.ObjectID,
				Owner:    toOwner(obj.Owner),
			})
		}
	}
	for _, ch := range resp.ObjectChanges {
		result.ObjectChanges = append(result.ObjectChanges, domain.ObjectChange{
			Type:     ch.Type,
			ObjectID: ch.ObjectID,
			Owner:    toOwner(ch.Owner),
		})
	}
	if resp.TimestampMs != "" {
		if ms, err := strconv.ParseInt(resp.TimestampMs, 10, 64); err == nil {
			result.TimestampMs = ms
		}
	}
	if resp.Transaction != nil {
		result.Sender = domain.Address(resp.Transaction.Data.Sender)
	}
	return result
}

func toOwner(o ownerWire) domain.Owner {
	return domain.Owner{
		AddressOwner: domain.Address(o.AddressOwner),
		Shared:       o.Shared,
	}
}
