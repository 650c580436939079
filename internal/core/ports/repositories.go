package ports

import (
	"context"

	"ownly-protocol/internal/core/domain"

	"github.com/google/uuid"
)

// TokenRecordRepository defines persistence for the record store: append-only
// creates plus status-conditioned updates. Records are never deleted.
type TokenRecordRepository interface {
	Create(ctx context.Context, record *domain.TokenRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TokenRecord, error)
	// ListByStatus returns records in the given status owned by owner, where
	// the owning address field depends on the status (sender for locked/sent,
	// recipient for received/decrypted), ordered by timestamp descending.
	ListByStatus(ctx context.Context, status domain.TokenStatus, owner domain.Address, limit int) ([]domain.TokenRecord, error)
	// UpdateStatus transitions a record from expected to next, setting the
	// recipient when non-empty. The update is conditional on the current
	// status so racing sessions cannot double-transition a record.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.TokenStatus, recipient domain.Address) error
	// GetByTxDigest returns all records correlated to a ledger digest.
	GetByTxDigest(ctx context.Context, digest string) ([]domain.TokenRecord, error)
	// HandOff atomically transitions the sender's record from locked to sent
	// and inserts the recipient's received record in the same transaction.
	HandOff(ctx context.Context, id uuid.UUID, recipient domain.Address, received *domain.TokenRecord) error
}

// PendingIntentRepository persists two-phase completion records around ledger
// submissions.
type PendingIntentRepository interface {
	Create(ctx context.Context, intent *domain.PendingIntent) error
	MarkSubmitted(ctx context.Context, id uuid.UUID, txDigest string) error
	MarkResolved(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	// ListUnresolved returns intents left in pending or submitted state,
	// oldest first, the crash-recovery work list.
	ListUnresolved(ctx context.Context, limit int) ([]domain.PendingIntent, error)
}
