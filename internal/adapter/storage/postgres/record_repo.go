package postgres

import (
	"context"
	"errors"
	"fmt"

	"ownly-protocol/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const recordColumns = `id, tx_digest, lock_object_id, token_symbol, amount_base_units,
	status, sender, recipient, encrypted_payload, encryption_key, ts`

// TokenRecordRepo implements ports.TokenRecordRepository.
type TokenRecordRepo struct {
	pool Pool
}

// NewTokenRecordRepo creates a new TokenRecordRepo.
func NewTokenRecordRepo(pool Pool) *TokenRecordRepo {
	return &TokenRecordRepo{pool: pool}
}

// Create inserts a new token record. Records are append-only; no delete
// statement exists in this repository.
func (r *TokenRecordRepo) Create(ctx context.Context, rec *domain.TokenRecord) error {
	query := `INSERT INTO token_records (id, tx_digest, lock_object_id, token_symbol, amount_base_units,
		status, sender, recipient, encrypted_payload, encryption_key, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.TxDigest, rec.LockObjectID, rec.TokenSymbol, rec.AmountBaseUnits,
		rec.Status, rec.Sender, rec.Recipient, rec.EncryptedPayload, rec.EncryptionKey, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert token record: %w", err)
	}
	return nil
}

// GetByID fetches a record by its generated identifier.
func (r *TokenRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TokenRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM token_records WHERE id = $1`
	return r.scanRecord(r.pool.QueryRow(ctx, query, id))
}

// ListByStatus returns records in the given status owned by owner, ordered by
// timestamp descending. The owning address column depends on the status:
// sender for locked/sent, recipient for received/decrypted.
func (r *TokenRecordRepo) ListByStatus(ctx context.Context, status domain.TokenStatus, owner domain.Address, limit int) ([]domain.TokenRecord, error) {
	ownerCol := "sender"
	switch status {
	case domain.TokenStatusReceived, domain.TokenStatusDecrypted:
		ownerCol = "recipient"
	}

	query := `SELECT ` + recordColumns + ` FROM token_records
		WHERE status = $1 AND ` + ownerCol + ` = $2
		ORDER BY ts DESC`
	args := []any{status, owner}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list token records: %w", err)
	}
	defer rows.Close()

	var out []domain.TokenRecord
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// UpdateStatus transitions a record from expected to next, optionally setting
// the recipient. The WHERE clause conditions on the current status so two
// racing sessions cannot both succeed.
func (r *TokenRecordRepo) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next domain.TokenStatus, recipient domain.Address) error {
	if !expected.CanTransition(next) {
		return fmt.Errorf("illegal transition %s -> %s", expected, next)
	}

	query := `UPDATE token_records SET status = $1, recipient = COALESCE(NULLIF($2, ''), recipient)
		WHERE id = $3 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, next, string(recipient), id, expected)
	if err != nil {
		return fmt.Errorf("update record status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s no longer in status %s", id, expected)
	}
	return nil
}

// GetByTxDigest returns every record correlated to a ledger digest, newest
// first. Multiple records share a digest after a send (sender + recipient
// copies carry the same confirming transaction).
func (r *TokenRecordRepo) GetByTxDigest(ctx context.Context, digest string) ([]domain.TokenRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM token_records WHERE tx_digest = $1 ORDER BY ts DESC`

	rows, err := r.pool.Query(ctx, query, digest)
	if err != nil {
		return nil, fmt.Errorf("get records by digest: %w", err)
	}
	defer rows.Close()

	var out []domain.TokenRecord
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// HandOff moves a locked record to sent and inserts the recipient's received
// record in one transaction, so a crash mid-send cannot leave the position
// half-transferred. The status flip is conditional like UpdateStatus.
func (r *TokenRecordRepo) HandOff(ctx context.Context, id uuid.UUID, recipient domain.Address, received *domain.TokenRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin handoff: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := `UPDATE token_records SET status = $1, recipient = $2
		WHERE id = $3 AND status = $4`
	tag, err := tx.Exec(ctx, updateQuery, domain.TokenStatusSent, string(recipient), id, domain.TokenStatusLocked)
	if err != nil {
		return fmt.Errorf("handoff status update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s no longer in status %s", id, domain.TokenStatusLocked)
	}

	insertQuery := `INSERT INTO token_records (id, tx_digest, lock_object_id, token_symbol, amount_base_units,
		status, sender, recipient, encrypted_payload, encryption_key, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, insertQuery,
		received.ID, received.TxDigest, received.LockObjectID, received.TokenSymbol, received.AmountBaseUnits,
		received.Status, received.Sender, received.Recipient, received.EncryptedPayload, received.EncryptionKey, received.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("handoff insert received record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit handoff: %w", err)
	}
	return nil
}

func (r *TokenRecordRepo) scanRecord(row pgx.Row) (*domain.TokenRecord, error) {
	rec := &domain.TokenRecord{}
	err := row.Scan(
		&rec.ID, &rec.TxDigest, &rec.LockObjectID, &rec.TokenSymbol, &rec.AmountBaseUnits,
		&rec.Status, &rec.Sender, &rec.Recipient, &rec.EncryptedPayload, &rec.EncryptionKey, &rec.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan token record: %w", err)
	}
	return rec, nil
}

func scanRecordRow(rows pgx.Rows) (*domain.TokenRecord, error) {
	rec := &domain.TokenRecord{}
	err := rows.Scan(
		&rec.ID, &rec.TxDigest, &rec.LockObjectID, &rec.TokenSymbol, &rec.AmountBaseUnits,
		&rec.Status, &rec.Sender, &rec.Recipient, &rec.EncryptedPayload, &rec.EncryptionKey, &rec.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("scan token record: %w", err)
	}
	return rec, nil
}
