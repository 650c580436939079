package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ownly-protocol/internal/core/domain"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/internal/core/ports/mocks"
	"ownly-protocol/pkg/apperror"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lifecycleTestDeps struct {
	svc     *LifecycleServiceImpl
	records *mocks.MockTokenRecordRepository
	intents *mocks.MockPendingIntentRepository
	ledger  *mocks.MockLedgerClient
	builder *mocks.MockIntentBuilder
	cipher  *mocks.MockPayloadCipher
	guard   *mocks.MockOpGuard
	ctrl    *gomock.Controller
}

func setupLifecycleService(t *testing.T) *lifecycleTestDeps {
	ctrl := gomock.NewController(t)
	d := &lifecycleTestDeps{
		records: mocks.NewMockTokenRecordRepository(ctrl),
		intents: mocks.NewMockPendingIntentRepository(ctrl),
		ledger:  mocks.NewMockLedgerClient(ctrl),
		builder: mocks.NewMockIntentBuilder(ctrl),
		cipher:  mocks.NewMockPayloadCipher(ctrl),
		guard:   mocks.NewMockOpGuard(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewLifecycleService(
		d.records, d.intents, d.ledger, d.builder,
		d.cipher, d.guard, zerolog.Nop(),
	)
	return d
}

func testAddr(c byte) domain.Address {
	return domain.Address("0x" + strings.Repeat(string(c), 64))
}

// stubSigner satisfies domain.Signer without real key material.
type stubSigner struct{ addr domain.Address }

func (s *stubSigner) Sign(_ []byte) ([]byte, error) { return []byte("sig"), nil }
func (s *stubSigner) PublicKey() []byte             { return []byte("pub") }
func (s *stubSigner) Address() domain.Address       { return s.addr }

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func lockedResult(digest, objectID string) *domain.TransactionResult {
	return &domain.TransactionResult{
		Digest: digest,
		Status: domain.ExecutionStatus{Success: true},
		ObjectChanges: []domain.ObjectChange{
			{Type: "created", ObjectID: objectID, Owner: domain.Owner{Shared: true}},
		},
	}
}

// ==================== EncryptAndLock Tests ====================

func TestLifecycleService_EncryptAndLock_Success(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := testAddr('a')
	signer := &stubSigner{addr: owner}

	// 1 SUI = 1e9 base units, balance covers it
	d.ledger.EXPECT().GetBalance(ctx, owner, gomock.Any()).Return(uint256.NewInt(2_000_000_000), nil)
	d.cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, p *domain.LockPayload) (string, error) {
			assert.Equal(t, "1000000000", p.Amount)
			assert.Equal(t, "SUI", p.Token)
			assert.Equal(t, owner, p.Sender)
			return "ciphertext", nil
		})
	d.builder.EXPECT().BuildLockIntent(owner, owner, gomock.Any(), uint256.NewInt(1_000_000_000)).
		Return(&domain.Intent{Kind: domain.IntentKindLock}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pi *domain.PendingIntent) error {
			assert.Equal(t, domain.IntentKindLock, pi.Kind)
			assert.Equal(t, domain.PendingIntentStatePending, pi.State)
			assert.Equal(t, "ciphertext", pi.EncryptedPayload)
			assert.NotEmpty(t, pi.EncryptionKey)
			return nil
		})
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).
		Return(lockedResult("digest-1", "0xlock1"), nil)
	d.intents.EXPECT().MarkSubmitted(ctx, gomock.Any(), "digest-1").Return(nil)

	var created *domain.TokenRecord
	d.records.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.TokenRecord) error {
			created = rec
			return nil
		})
	d.intents.EXPECT().MarkResolved(ctx, gomock.Any()).Return(nil)

	record, err := d.svc.EncryptAndLock(ctx, ports.LockRequest{
		AmountDecimal: "1",
		TokenSymbol:   "SUI",
		Owner:         owner,
		Signer:        signer,
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Same(t, created, record)
	assert.Equal(t, domain.TokenStatusLocked, record.Status)
	assert.Equal(t, "1000000000", record.AmountBaseUnits)
	assert.Equal(t, "digest-1", record.TxDigest)
	assert.Equal(t, "0xlock1", record.LockObjectID)
	assert.Equal(t, owner, record.Sender)
	assert.Equal(t, owner, record.Recipient)
	assert.Equal(t, "ciphertext", record.EncryptedPayload)
	assert.NotEmpty(t, record.EncryptionKey)
}

func TestLifecycleService_EncryptAndLock_InsufficientBalance(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := testAddr('a')

	// Balance below the requested amount: nothing may be built or submitted.
	d.ledger.EXPECT().GetBalance(ctx, owner, gomock.Any()).Return(uint256.NewInt(100), nil)

	_, err := d.svc.EncryptAndLock(ctx, ports.LockRequest{
		AmountDecimal: "1",
		TokenSymbol:   "SUI",
		Owner:         owner,
		Signer:        &stubSigner{addr: owner},
	})
	assertCode(t, err, "PAY_001")
}

func TestLifecycleService_EncryptAndLock_UnknownToken(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.EncryptAndLock(context.Background(), ports.LockRequest{
		AmountDecimal: "1",
		TokenSymbol:   "DOGE",
		Owner:         testAddr('a'),
	})
	assertCode(t, err, "VAL_002")
}

func TestLifecycleService_EncryptAndLock_ZeroAmount(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.EncryptAndLock(context.Background(), ports.LockRequest{
		AmountDecimal: "0",
		TokenSymbol:   "SUI",
		Owner:         testAddr('a'),
	})
	assertCode(t, err, "VAL_001")
}

func TestLifecycleService_EncryptAndLock_SubmitFails(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := testAddr('a')
	signer := &stubSigner{addr: owner}

	d.ledger.EXPECT().GetBalance(ctx, owner, gomock.Any()).Return(uint256.NewInt(2_000_000_000), nil)
	d.cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ciphertext", nil)
	d.builder.EXPECT().BuildLockIntent(owner, owner, gomock.Any(), gomock.Any()).
		Return(&domain.Intent{Kind: domain.IntentKindLock}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).
		Return(nil, apperror.ErrNetworkUnavailable(errors.New("all endpoints down")))
	// The pending row is closed as failed; no record is created.
	d.intents.EXPECT().MarkFailed(ctx, gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.EncryptAndLock(ctx, ports.LockRequest{
		AmountDecimal: "1",
		TokenSymbol:   "SUI",
		Owner:         owner,
		Signer:        signer,
	})
	assertCode(t, err, "NET_001")
}

func TestLifecycleService_EncryptAndLock_NoSharedObject(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := testAddr('a')
	signer := &stubSigner{addr: owner}

	d.ledger.EXPECT().GetBalance(ctx, owner, gomock.Any()).Return(uint256.NewInt(2_000_000_000), nil)
	d.cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("ciphertext", nil)
	d.builder.EXPECT().BuildLockIntent(owner, owner, gomock.Any(), gomock.Any()).
		Return(&domain.Intent{Kind: domain.IntentKindLock}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).Return(&domain.TransactionResult{
		Digest: "digest-x",
		Status: domain.ExecutionStatus{Success: true},
	}, nil)
	d.intents.EXPECT().MarkSubmitted(ctx, gomock.Any(), "digest-x").Return(nil)

	_, err := d.svc.EncryptAndLock(ctx, ports.LockRequest{
		AmountDecimal: "1",
		TokenSymbol:   "SUI",
		Owner:         owner,
		Signer:        signer,
	})
	assertCode(t, err, "CHAIN_001")
}

// ==================== Send Tests ====================

func lockedRecord(sender domain.Address) *domain.TokenRecord {
	return &domain.TokenRecord{
		ID:               uuid.New(),
		TxDigest:         "digest-1",
		LockObjectID:     "0xlock1",
		TokenSymbol:      "SUI",
		AmountBaseUnits:  "1000000000",
		Status:           domain.TokenStatusLocked,
		Sender:           sender,
		Recipient:        sender,
		EncryptedPayload: "ciphertext",
		EncryptionKey:    "key",
		Timestamp:        domain.NowMillis(),
	}
}

func TestLifecycleService_Send_Success(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')
	recipient := testAddr('b')
	record := lockedRecord(sender)

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "send", record.ID, gomock.Any()).Return(true, nil)

	var received *domain.TokenRecord
	d.records.EXPECT().HandOff(ctx, record.ID, recipient, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ domain.Address, rec *domain.TokenRecord) error {
			received = rec
			return nil
		})
	d.guard.EXPECT().Release(gomock.Any(), "send", record.ID).Return(nil)

	result, err := d.svc.Send(ctx, ports.SendRequest{
		RecordID:  record.ID,
		Sender:    sender,
		Recipient: recipient,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, domain.TokenStatusSent, result.Sent.Status)
	assert.Equal(t, recipient, result.Sent.Recipient)

	require.Same(t, received, result.Received)
	assert.Equal(t, domain.TokenStatusReceived, received.Status)
	assert.NotEqual(t, record.ID, received.ID)
	assert.Equal(t, record.TxDigest, received.TxDigest)
	assert.Equal(t, record.LockObjectID, received.LockObjectID)
	assert.Equal(t, record.EncryptedPayload, received.EncryptedPayload)
	assert.Equal(t, record.EncryptionKey, received.EncryptionKey)
	assert.Equal(t, sender, received.Sender)
	assert.Equal(t, recipient, received.Recipient)
}

func TestLifecycleService_Send_AlreadySent(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')
	record := lockedRecord(sender)
	record.Status = domain.TokenStatusSent

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)

	_, err := d.svc.Send(ctx, ports.SendRequest{
		RecordID:  record.ID,
		Sender:    sender,
		Recipient: testAddr('b'),
	})
	assertCode(t, err, "PAY_002")
}

func TestLifecycleService_Send_SelfRecipient(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	sender := testAddr('a')
	_, err := d.svc.Send(context.Background(), ports.SendRequest{
		RecordID:  uuid.New(),
		Sender:    sender,
		Recipient: sender,
	})
	assertCode(t, err, "VAL_001")
}

func TestLifecycleService_Send_NotOwner(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	record := lockedRecord(testAddr('c'))

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)

	_, err := d.svc.Send(ctx, ports.SendRequest{
		RecordID:  record.ID,
		Sender:    testAddr('a'),
		Recipient: testAddr('b'),
	})
	assertCode(t, err, "PAY_003")
}

func TestLifecycleService_Send_OperationInProgress(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')
	record := lockedRecord(sender)

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "send", record.ID, gomock.Any()).Return(false, nil)

	_, err := d.svc.Send(ctx, ports.SendRequest{
		RecordID:  record.ID,
		Sender:    sender,
		Recipient: testAddr('b'),
	})
	assertCode(t, err, "PAY_004")
}

func TestLifecycleService_Send_RacedHandOff(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')
	record := lockedRecord(sender)

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "send", record.ID, gomock.Any()).Return(true, nil)
	// Another session claimed the record between the read and the handoff.
	d.records.EXPECT().HandOff(ctx, record.ID, testAddr('b'), gomock.Any()).
		Return(errors.New("record no longer in status locked"))
	d.guard.EXPECT().Release(gomock.Any(), "send", record.ID).Return(nil)

	_, err := d.svc.Send(ctx, ports.SendRequest{
		RecordID:  record.ID,
		Sender:    sender,
		Recipient: testAddr('b'),
	})
	assertCode(t, err, "PAY_002")
}

// ==================== DecryptAndUnlock Tests ====================

func TestLifecycleService_DecryptAndUnlock_Success(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := testAddr('b')
	signer := &stubSigner{addr: recipient}

	record := lockedRecord(testAddr('a'))
	record.Status = domain.TokenStatusReceived
	record.Recipient = recipient

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "unlock", record.ID, gomock.Any()).Return(true, nil)
	d.cipher.EXPECT().Decrypt("key", "ciphertext").Return(&domain.LockPayload{
		Amount: "1000000000",
		Token:  "SUI",
		Sender: record.Sender,
	}, nil)
	d.builder.EXPECT().BuildUnlockIntent(recipient, "0xlock1", gomock.Any()).
		Return(&domain.Intent{Kind: domain.IntentKindUnlock}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pi *domain.PendingIntent) error {
			assert.Equal(t, domain.IntentKindUnlock, pi.Kind)
			require.NotNil(t, pi.RecordID)
			assert.Equal(t, record.ID, *pi.RecordID)
			return nil
		})
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).
		Return(lockedResult("digest-2", ""), nil)
	d.intents.EXPECT().MarkSubmitted(ctx, gomock.Any(), "digest-2").Return(nil)
	d.records.EXPECT().UpdateStatus(ctx, record.ID, domain.TokenStatusReceived, domain.TokenStatusDecrypted, recipient).Return(nil)
	d.intents.EXPECT().MarkResolved(ctx, gomock.Any()).Return(nil)
	d.guard.EXPECT().Release(gomock.Any(), "unlock", record.ID).Return(nil)

	result, err := d.svc.DecryptAndUnlock(ctx, ports.UnlockRequest{
		RecordID: record.ID,
		Caller:   recipient,
		Signer:   signer,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TokenStatusDecrypted, result.Status)
}

func TestLifecycleService_DecryptAndUnlock_Terminal(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := testAddr('b')
	record := lockedRecord(testAddr('a'))
	record.Status = domain.TokenStatusDecrypted
	record.Recipient = recipient

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)

	_, err := d.svc.DecryptAndUnlock(ctx, ports.UnlockRequest{
		RecordID: record.ID,
		Caller:   recipient,
	})
	assertCode(t, err, "PAY_002")
}

func TestLifecycleService_DecryptAndUnlock_DecryptFails(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := testAddr('b')
	record := lockedRecord(testAddr('a'))
	record.Status = domain.TokenStatusReceived
	record.Recipient = recipient

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "unlock", record.ID, gomock.Any()).Return(true, nil)
	// Decryption fails: nothing may be submitted to the ledger.
	d.cipher.EXPECT().Decrypt("key", "ciphertext").
		Return(nil, apperror.ErrDecryptionFailed(errors.New("cipher: message authentication failed")))
	d.guard.EXPECT().Release(gomock.Any(), "unlock", record.ID).Return(nil)

	_, err := d.svc.DecryptAndUnlock(ctx, ports.UnlockRequest{
		RecordID: record.ID,
		Caller:   recipient,
	})
	assertCode(t, err, "CRYPTO_001")
}

func TestLifecycleService_DecryptAndUnlock_RediscoversLockObject(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := testAddr('b')
	signer := &stubSigner{addr: recipient}

	record := lockedRecord(testAddr('a'))
	record.Status = domain.TokenStatusReceived
	record.Recipient = recipient
	record.LockObjectID = ""

	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.guard.EXPECT().Acquire(ctx, "unlock", record.ID, gomock.Any()).Return(true, nil)
	d.ledger.EXPECT().GetTransaction(ctx, "digest-1").Return(lockedResult("digest-1", "0xlock1"), nil)
	d.cipher.EXPECT().Decrypt("key", "ciphertext").Return(&domain.LockPayload{}, nil)
	d.builder.EXPECT().BuildUnlockIntent(recipient, "0xlock1", gomock.Any()).
		Return(&domain.Intent{Kind: domain.IntentKindUnlock}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).Return(lockedResult("digest-2", ""), nil)
	d.intents.EXPECT().MarkSubmitted(ctx, gomock.Any(), "digest-2").Return(nil)
	d.records.EXPECT().UpdateStatus(ctx, record.ID, domain.TokenStatusReceived, domain.TokenStatusDecrypted, recipient).Return(nil)
	d.intents.EXPECT().MarkResolved(ctx, gomock.Any()).Return(nil)
	d.guard.EXPECT().Release(gomock.Any(), "unlock", record.ID).Return(nil)

	result, err := d.svc.DecryptAndUnlock(ctx, ports.UnlockRequest{
		RecordID: record.ID,
		Caller:   recipient,
		Signer:   signer,
	})
	require.NoError(t, err)
	assert.Equal(t, "0xlock1", result.LockObjectID)
}

// ==================== Transfer Tests ====================

func TestLifecycleService_Transfer_Success(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')
	recipient := testAddr('b')
	signer := &stubSigner{addr: sender}

	d.ledger.EXPECT().GetBalance(ctx, sender, gomock.Any()).Return(uint256.NewInt(5_000_000_000), nil)
	d.builder.EXPECT().BuildTransferIntent(sender, recipient, uint256.NewInt(2_500_000_000)).
		Return(&domain.Intent{Kind: domain.IntentKindTransfer}, nil)
	d.intents.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.ledger.EXPECT().SubmitIntent(ctx, gomock.Any(), signer).Return(&domain.TransactionResult{
		Digest: "digest-t",
		Status: domain.ExecutionStatus{Success: true},
	}, nil)
	d.intents.EXPECT().MarkSubmitted(ctx, gomock.Any(), "digest-t").Return(nil)
	d.intents.EXPECT().MarkResolved(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Transfer(ctx, ports.TransferRequest{
		AmountDecimal: "2.5",
		TokenSymbol:   "SUI",
		Sender:        sender,
		Recipient:     recipient,
		Signer:        signer,
	})
	require.NoError(t, err)
	assert.Equal(t, "digest-t", result.Digest)
}

func TestLifecycleService_Transfer_InsufficientBalance(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sender := testAddr('a')

	d.ledger.EXPECT().GetBalance(ctx, sender, gomock.Any()).Return(uint256.NewInt(1), nil)

	_, err := d.svc.Transfer(ctx, ports.TransferRequest{
		AmountDecimal: "2.5",
		TokenSymbol:   "SUI",
		Sender:        sender,
		Recipient:     testAddr('b'),
	})
	assertCode(t, err, "PAY_001")
}

// ==================== History Tests ====================

func TestLifecycleService_History_MergesBucketsNewestFirst(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	addr := testAddr('a')

	rec := func(status domain.TokenStatus, ts int64) domain.TokenRecord {
		return domain.TokenRecord{ID: uuid.New(), Status: status, Timestamp: ts}
	}

	d.records.EXPECT().ListByStatus(gomock.Any(), domain.TokenStatusLocked, addr, gomock.Any()).
		Return([]domain.TokenRecord{rec(domain.TokenStatusLocked, 300)}, nil)
	d.records.EXPECT().ListByStatus(gomock.Any(), domain.TokenStatusSent, addr, gomock.Any()).
		Return([]domain.TokenRecord{rec(domain.TokenStatusSent, 100)}, nil)
	d.records.EXPECT().ListByStatus(gomock.Any(), domain.TokenStatusReceived, addr, gomock.Any()).
		Return([]domain.TokenRecord{rec(domain.TokenStatusReceived, 400)}, nil)
	d.records.EXPECT().ListByStatus(gomock.Any(), domain.TokenStatusDecrypted, addr, gomock.Any()).
		Return([]domain.TokenRecord{rec(domain.TokenStatusDecrypted, 200)}, nil)

	entries, err := d.svc.History(ctx, addr)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, int64(400), entries[0].Record.Timestamp)
	assert.Equal(t, "recipient", entries[0].Role)
	assert.Equal(t, int64(300), entries[1].Record.Timestamp)
	assert.Equal(t, "sender", entries[1].Role)
	assert.Equal(t, int64(200), entries[2].Record.Timestamp)
	assert.Equal(t, int64(100), entries[3].Record.Timestamp)
}

// ==================== LedgerActivity Tests ====================

func TestLifecycleService_LedgerActivity(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	addr := testAddr('a')

	d.ledger.EXPECT().QueryTransactions(ctx, addr, historyLimit).Return([]domain.TransactionResult{
		{Digest: "digest-1", Status: domain.ExecutionStatus{Success: true}, TimestampMs: 200},
		{Digest: "digest-2", Status: domain.ExecutionStatus{Success: false, Error: "InsufficientGas"}, TimestampMs: 100},
	}, nil)

	out, err := d.svc.LedgerActivity(ctx, addr)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "digest-1", out[0].Digest)
	assert.False(t, out[1].Status.Success)
}

func TestLifecycleService_LedgerActivity_NetworkError(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	addr := testAddr('a')

	d.ledger.EXPECT().QueryTransactions(ctx, addr, historyLimit).
		Return(nil, apperror.ErrNetworkUnavailable(errors.New("all endpoints down")))

	_, err := d.svc.LedgerActivity(ctx, addr)
	assertCode(t, err, "NET_001")
}

// ==================== ReconcilePending Tests ====================

func TestLifecycleService_ReconcilePending_FailsUnsubmitted(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	pi := domain.PendingIntent{
		ID:    uuid.New(),
		Kind:  domain.IntentKindLock,
		State: domain.PendingIntentStatePending,
	}

	d.intents.EXPECT().ListUnresolved(ctx, gomock.Any()).Return([]domain.PendingIntent{pi}, nil)
	d.intents.EXPECT().MarkFailed(ctx, pi.ID, gomock.Any()).Return(nil)

	require.NoError(t, d.svc.ReconcilePending(ctx))
}

func TestLifecycleService_ReconcilePending_RecoversOrphanedLock(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	owner := testAddr('a')
	pi := domain.PendingIntent{
		ID:               uuid.New(),
		Kind:             domain.IntentKindLock,
		State:            domain.PendingIntentStateSubmitted,
		Address:          owner,
		TokenSymbol:      "SUI",
		AmountBaseUnits:  "1000000000",
		TxDigest:         "digest-1",
		EncryptedPayload: "ciphertext",
		EncryptionKey:    "key",
	}

	d.intents.EXPECT().ListUnresolved(ctx, gomock.Any()).Return([]domain.PendingIntent{pi}, nil)
	d.ledger.EXPECT().GetTransaction(ctx, "digest-1").Return(lockedResult("digest-1", "0xlock1"), nil)
	d.records.EXPECT().GetByTxDigest(ctx, "digest-1").Return(nil, nil)

	var recovered *domain.TokenRecord
	d.records.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.TokenRecord) error {
			recovered = rec
			return nil
		})
	d.intents.EXPECT().MarkResolved(ctx, pi.ID).Return(nil)

	require.NoError(t, d.svc.ReconcilePending(ctx))
	require.NotNil(t, recovered)
	assert.Equal(t, domain.TokenStatusLocked, recovered.Status)
	assert.Equal(t, "0xlock1", recovered.LockObjectID)
	assert.Equal(t, "ciphertext", recovered.EncryptedPayload)
	assert.Equal(t, "key", recovered.EncryptionKey)
	assert.Equal(t, owner, recovered.Sender)
}

func TestLifecycleService_ReconcilePending_SkipsRecordedLock(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	pi := domain.PendingIntent{
		ID:       uuid.New(),
		Kind:     domain.IntentKindLock,
		State:    domain.PendingIntentStateSubmitted,
		TxDigest: "digest-1",
	}

	d.intents.EXPECT().ListUnresolved(ctx, gomock.Any()).Return([]domain.PendingIntent{pi}, nil)
	d.ledger.EXPECT().GetTransaction(ctx, "digest-1").Return(lockedResult("digest-1", "0xlock1"), nil)
	d.records.EXPECT().GetByTxDigest(ctx, "digest-1").
		Return([]domain.TokenRecord{{ID: uuid.New(), Status: domain.TokenStatusLocked}}, nil)
	d.intents.EXPECT().MarkResolved(ctx, pi.ID).Return(nil)

	require.NoError(t, d.svc.ReconcilePending(ctx))
}

func TestLifecycleService_ReconcilePending_ReplaysUnlockStatus(t *testing.T) {
	d := setupLifecycleService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	recipient := testAddr('b')
	record := lockedRecord(testAddr('a'))
	record.Status = domain.TokenStatusReceived
	record.Recipient = recipient

	pi := domain.PendingIntent{
		ID:       uuid.New(),
		Kind:     domain.IntentKindUnlock,
		State:    domain.PendingIntentStateSubmitted,
		Address:  recipient,
		RecordID: &record.ID,
		TxDigest: "digest-2",
	}

	d.intents.EXPECT().ListUnresolved(ctx, gomock.Any()).Return([]domain.PendingIntent{pi}, nil)
	d.ledger.EXPECT().GetTransaction(ctx, "digest-2").Return(lockedResult("digest-2", ""), nil)
	d.records.EXPECT().GetByID(ctx, record.ID).Return(record, nil)
	d.records.EXPECT().UpdateStatus(ctx, record.ID, domain.TokenStatusReceived, domain.TokenStatusDecrypted, recipient).Return(nil)
	d.intents.EXPECT().MarkResolved(ctx, pi.ID).Return(nil)

	require.NoError(t, d.svc.ReconcilePending(ctx))
}
