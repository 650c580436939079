package postgres

import (
	"context"
	"fmt"
	"time"

	"ownly-protocol/internal/core/domain"

	"github.com/google/uuid"
)

const intentColumns = `id, kind, state, address, token_symbol, amount_base_units,
	record_id, tx_digest, encrypted_payload, encryption_key, failure_reason, created_at, resolved_at`

// PendingIntentRepo implements ports.PendingIntentRepository.
type PendingIntentRepo struct {
	pool Pool
}

// NewPendingIntentRepo creates a new PendingIntentRepo.
func NewPendingIntentRepo(pool Pool) *PendingIntentRepo {
	return &PendingIntentRepo{pool: pool}
}

// Create persists a completion record before its ledger intent is submitted.
func (r *PendingIntentRepo) Create(ctx context.Context, pi *domain.PendingIntent) error {
	query := `INSERT INTO pending_intents (id, kind, state, address, token_symbol, amount_base_units,
		record_id, tx_digest, encrypted_payload, encryption_key, failure_reason, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		pi.ID, pi.Kind, pi.State, pi.Address, pi.TokenSymbol, pi.AmountBaseUnits,
		pi.RecordID, pi.TxDigest, pi.EncryptedPayload, pi.EncryptionKey, pi.FailureReason, pi.CreatedAt, pi.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending intent: %w", err)
	}
	return nil
}

// MarkSubmitted records the confirming digest after ledger submission.
func (r *PendingIntentRepo) MarkSubmitted(ctx context.Context, id uuid.UUID, txDigest string) error {
	return r.setState(ctx, id,
		`UPDATE pending_intents SET state = $1, tx_digest = $2 WHERE id = $3`,
		domain.PendingIntentStateSubmitted, txDigest, id)
}

// MarkResolved closes the intent once the record write completed.
func (r *PendingIntentRepo) MarkResolved(ctx context.Context, id uuid.UUID) error {
	return r.setState(ctx, id,
		`UPDATE pending_intents SET state = $1, resolved_at = $2 WHERE id = $3`,
		domain.PendingIntentStateResolved, time.Now().UTC(), id)
}

// MarkFailed records a submission failure; no ledger effect exists.
func (r *PendingIntentRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.setState(ctx, id,
		`UPDATE pending_intents SET state = $1, failure_reason = $2, resolved_at = $3 WHERE id = $4`,
		domain.PendingIntentStateFailed, reason, time.Now().UTC(), id)
}

func (r *PendingIntentRepo) setState(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pending intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending intent %s not found", id)
	}
	return nil
}

// ListUnresolved returns intents still pending or submitted, oldest first.
func (r *PendingIntentRepo) ListUnresolved(ctx context.Context, limit int) ([]domain.PendingIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM pending_intents
		WHERE state IN ($1, $2) ORDER BY created_at ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query,
		domain.PendingIntentStatePending, domain.PendingIntentStateSubmitted, limit)
	if err != nil {
		return nil, fmt.Errorf("list unresolved intents: %w", err)
	}
	defer rows.Close()

	var out []domain.PendingIntent
	for rows.Next() {
		pi := domain.PendingIntent{}
		err := rows.Scan(
			&pi.ID, &pi.Kind, &pi.State, &pi.Address, &pi.TokenSymbol, &pi.AmountBaseUnits,
			&pi.RecordID, &pi.TxDigest, &pi.EncryptedPayload, &pi.EncryptionKey, &pi.FailureReason, &pi.CreatedAt, &pi.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pending intent: %w", err)
		}
		out = append(out, pi)
	}
	return out, rows.Err()
}
