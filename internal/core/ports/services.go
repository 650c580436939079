package ports

import (
	"context"
	"time"

	"ownly-protocol/internal/core/domain"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// LedgerClient issues read queries and submits signed intents to the external
// ledger, rotating across equivalent endpoints on transient failure.
type LedgerClient interface {
	// GetBalance sums all coin objects of coinType owned by address.
	GetBalance(ctx context.Context, address domain.Address, coinType string) (*uint256.Int, error)
	// GetTransaction looks up a confirmed transaction by digest with effect
	// and object-change detail. Returns nil, nil if not yet indexed.
	GetTransaction(ctx context.Context, digest string) (*domain.TransactionResult, error)
	// SubmitIntent signs, submits and awaits confirmation of an intent.
	SubmitIntent(ctx context.Context, intent *domain.Intent, signer domain.Signer) (*domain.TransactionResult, error)
	// QueryTransactions lists recent transactions sent from address.
	QueryTransactions(ctx context.Context, from domain.Address, limit int) ([]domain.TransactionResult, error)
	// VerifyPackage checks that the deployed contract package object exists.
	VerifyPackage(ctx context.Context) error
}

// IntentBuilder assembles unsigned ledger intents from domain parameters.
// Pure: no I/O, no clock.
type IntentBuilder interface {
	BuildLockIntent(sender, recipient domain.Address, token domain.TokenInfo, amount *uint256.Int) (*domain.Intent, error)
	BuildUnlockIntent(recipient domain.Address, lockObjectID string, token domain.TokenInfo) (*domain.Intent, error)
	BuildTransferIntent(sender, recipient domain.Address, amount *uint256.Int) (*domain.Intent, error)
}

// PayloadCipher encrypts/decrypts the JSON lock payload with a
// passphrase-derived key.
type PayloadCipher interface {
	Encrypt(passphrase string, payload *domain.LockPayload) (string, error)
	Decrypt(passphrase string, ciphertext string) (*domain.LockPayload, error)
}

// BalanceCache is the short-TTL per-(address, token) balance cache replacing
// the dashboard's periodic polling.
type BalanceCache interface {
	Get(ctx context.Context, address domain.Address, symbol string) (string, error) // "" = miss
	Set(ctx context.Context, address domain.Address, symbol string, baseUnits string, ttl time.Duration) error
}

// OpGuard serialises one lifecycle operation per record across sessions:
// Acquire returns false if another session already holds the guard.
type OpGuard interface {
	Acquire(ctx context.Context, op string, recordID uuid.UUID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, op string, recordID uuid.UUID) error
}

// SessionService issues and validates session tokens after a wallet connect.
type SessionService interface {
	Issue(address domain.Address) (string, time.Time, error)
	Validate(token string) (domain.Address, error)
}

// WalletService manages the internal mnemonic wallet.
type WalletService interface {
	GenerateMnemonic() (string, error)
	ValidateMnemonic(mnemonic string) bool
	// SignerFromMnemonic derives the ed25519 signer and ledger address.
	SignerFromMnemonic(mnemonic string) (domain.Signer, error)
}

// --- Lifecycle Coordinator ---

// LockRequest holds validated input for EncryptAndLock.
type LockRequest struct {
	AmountDecimal string
	TokenSymbol   string
	Owner         domain.Address
	Signer        domain.Signer
}

// SendRequest holds validated input for Send.
type SendRequest struct {
	RecordID  uuid.UUID
	Sender    domain.Address
	Recipient domain.Address
}

// UnlockRequest holds validated input for DecryptAndUnlock.
type UnlockRequest struct {
	RecordID uuid.UUID
	Caller   domain.Address
	Signer   domain.Signer
}

// TransferRequest holds validated input for a direct coin transfer, a value
// movement independent of any escrow position.
type TransferRequest struct {
	AmountDecimal string
	TokenSymbol   string
	Sender        domain.Address
	Recipient     domain.Address
	Signer        domain.Signer
}

// SendResult pairs the two records produced by a send.
type SendResult struct {
	Sent     *domain.TokenRecord
	Received *domain.TokenRecord
}

// HistoryEntry is one row of the merged status history.
type HistoryEntry struct {
	Record *domain.TokenRecord `json:"record"`
	Role   string              `json:"role"` // sender or recipient
}

// LifecycleService is the token lifecycle coordinator: it orchestrates the
// encrypt → lock → send → decrypt → unlock sequence across the ledger client,
// intent builders and record store.
type LifecycleService interface {
	EncryptAndLock(ctx context.Context, req LockRequest) (*domain.TokenRecord, error)
	Send(ctx context.Context, req SendRequest) (*SendResult, error)
	DecryptAndUnlock(ctx context.Context, req UnlockRequest) (*domain.TokenRecord, error)
	Transfer(ctx context.Context, req TransferRequest) (*domain.TransactionResult, error)
	History(ctx context.Context, address domain.Address) ([]HistoryEntry, error)
	// LedgerActivity lists recent raw ledger transactions sent from address,
	// complementing the record-store history with on-chain activity.
	LedgerActivity(ctx context.Context, address domain.Address) ([]domain.TransactionResult, error)
	// ReconcilePending resolves intents left in flight by a crash; run at startup.
	ReconcilePending(ctx context.Context) error
}

// BalanceService reads token balances through the cache.
type BalanceService interface {
	GetBalances(ctx context.Context, address domain.Address) (map[string]string, error)
}
