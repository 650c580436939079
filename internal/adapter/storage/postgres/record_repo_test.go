package postgres

import (
	"context"
	"strings"
	"testing"

	"ownly-protocol/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddr(c byte) domain.Address {
	return domain.Address("0x" + strings.Repeat(string(c), 64))
}

func newTestRecord() *domain.TokenRecord {
	return &domain.TokenRecord{
		ID:               uuid.New(),
		TxDigest:         "9mDigest",
		LockObjectID:     "0xlock1",
		TokenSymbol:      "SUI",
		AmountBaseUnits:  "1000000000",
		Status:           domain.TokenStatusLocked,
		Sender:           testAddr('a'),
		Recipient:        testAddr('a'),
		EncryptedPayload: "ciphertext",
		EncryptionKey:    "key",
		Timestamp:        1700000000000,
	}
}

func recordColumnNames() []string {
	return []string{"id", "tx_digest", "lock_object_id", "token_symbol", "amount_base_units",
		"status", "sender", "recipient", "encrypted_payload", "encryption_key", "ts"}
}

func recordRow(rec *domain.TokenRecord) *pgxmock.Rows {
	return pgxmock.NewRows(recordColumnNames()).AddRow(
		rec.ID, rec.TxDigest, rec.LockObjectID, rec.TokenSymbol, rec.AmountBaseUnits,
		rec.Status, rec.Sender, rec.Recipient, rec.EncryptedPayload, rec.EncryptionKey, rec.Timestamp,
	)
}

func TestTokenRecordRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	rec := newTestRecord()

	mock.ExpectExec("INSERT INTO token_records").
		WithArgs(rec.ID, rec.TxDigest, rec.LockObjectID, rec.TokenSymbol, rec.AmountBaseUnits,
			rec.Status, rec.Sender, rec.Recipient, rec.EncryptedPayload, rec.EncryptionKey, rec.Timestamp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	rec := newTestRecord()

	mock.ExpectQuery("SELECT .+ FROM token_records WHERE id").
		WithArgs(rec.ID).
		WillReturnRows(recordRow(rec))

	result, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, rec, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM token_records WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(recordColumnNames()))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_ListByStatus_SenderColumn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	rec := newTestRecord()

	mock.ExpectQuery(`SELECT .+ FROM token_records\s+WHERE status = \$1 AND sender = \$2`).
		WithArgs(domain.TokenStatusLocked, rec.Sender, 50).
		WillReturnRows(recordRow(rec))

	out, err := repo.ListByStatus(context.Background(), domain.TokenStatusLocked, rec.Sender, 50)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rec.ID, out[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_ListByStatus_RecipientColumn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	rec := newTestRecord()
	rec.Status = domain.TokenStatusReceived
	rec.Recipient = testAddr('b')

	mock.ExpectQuery(`SELECT .+ FROM token_records\s+WHERE status = \$1 AND recipient = \$2`).
		WithArgs(domain.TokenStatusReceived, rec.Recipient, 50).
		WillReturnRows(recordRow(rec))

	out, err := repo.ListByStatus(context.Background(), domain.TokenStatusReceived, rec.Recipient, 50)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	id := uuid.New()
	recipient := testAddr('b')

	mock.ExpectExec("UPDATE token_records SET status").
		WithArgs(domain.TokenStatusSent, string(recipient), id, domain.TokenStatusLocked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), id, domain.TokenStatusLocked, domain.TokenStatusSent, recipient)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_UpdateStatus_Raced(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	id := uuid.New()

	// Another session already moved the record; zero rows match.
	mock.ExpectExec("UPDATE token_records SET status").
		WithArgs(domain.TokenStatusSent, "", id, domain.TokenStatusLocked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), id, domain.TokenStatusLocked, domain.TokenStatusSent, "")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_UpdateStatus_IllegalTransition(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)

	// Rejected before any SQL is issued.
	err = repo.UpdateStatus(context.Background(), uuid.New(), domain.TokenStatusSent, domain.TokenStatusDecrypted, "")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_HandOff(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	sent := newTestRecord()
	recipient := testAddr('b')

	received := newTestRecord()
	received.ID = uuid.New()
	received.Status = domain.TokenStatusReceived
	received.Recipient = recipient

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE token_records SET status").
		WithArgs(domain.TokenStatusSent, string(recipient), sent.ID, domain.TokenStatusLocked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO token_records").
		WithArgs(received.ID, received.TxDigest, received.LockObjectID, received.TokenSymbol, received.AmountBaseUnits,
			received.Status, received.Sender, received.Recipient, received.EncryptedPayload, received.EncryptionKey, received.Timestamp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.HandOff(context.Background(), sent.ID, recipient, received))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_HandOff_Raced(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	sent := newTestRecord()
	recipient := testAddr('b')

	// Status flip matches no rows; the whole handoff rolls back.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE token_records SET status").
		WithArgs(domain.TokenStatusSent, string(recipient), sent.ID, domain.TokenStatusLocked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = repo.HandOff(context.Background(), sent.ID, recipient, newTestRecord())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRecordRepo_GetByTxDigest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRecordRepo(mock)
	rec := newTestRecord()

	mock.ExpectQuery("SELECT .+ FROM token_records WHERE tx_digest").
		WithArgs(rec.TxDigest).
		WillReturnRows(recordRow(rec))

	out, err := repo.GetByTxDigest(context.Background(), rec.TxDigest)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, *rec, out[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
