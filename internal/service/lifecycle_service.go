package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"time"

	"ownly-protocol/internal/core/domain"
	"ownly-protocol/internal/core/ports"
	"ownly-protocol/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// Bounded retry for digest lookup, tolerating the ledger's indexing delay.
	lookupAttempts = 5
	lookupBaseWait = time.Second

	opGuardTTL     = 30 * time.Second
	historyLimit   = 50
	reconcileBatch = 100
)

// LifecycleServiceImpl implements ports.LifecycleService: the coordinator for
// the encrypt → lock → send → decrypt → unlock sequence across the ledger,
// the intent builder and the record store.
type LifecycleServiceImpl struct {
	records ports.TokenRecordRepository
	intents ports.PendingIntentRepository
	ledger  ports.LedgerClient
	builder ports.IntentBuilder
	cipher  ports.PayloadCipher
	guard   ports.OpGuard
	log     zerolog.Logger
}

// NewLifecycleService creates a new LifecycleServiceImpl.
func NewLifecycleService(
	records ports.TokenRecordRepository,
	intents ports.PendingIntentRepository,
	ledger ports.LedgerClient,
	builder ports.IntentBuilder,
	cipher ports.PayloadCipher,
	guard ports.OpGuard,
	log zerolog.Logger,
) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		records: records,
		intents: intents,
		ledger:  ledger,
		builder: builder,
		cipher:  cipher,
		guard:   guard,
		log:     log,
	}
}

// EncryptAndLock converts the amount to base units, verifies the balance,
// encrypts the transfer data under a single-use key, escrows the amount into
// a new shared lock object, and persists the resulting locked record. The
// pending-intent row goes down before submission so a crash mid-flight is
// reconcilable instead of silently orphaning the on-chain escrow.
func (s *LifecycleServiceImpl) EncryptAndLock(ctx context.Context, req ports.LockRequest) (*domain.TokenRecord, error) {
	token, err := domain.TokenBySymbol(req.TokenSymbol)
	if err != nil {
		return nil, apperror.ErrUnknownToken(req.TokenSymbol)
	}
	owner, err := domain.ParseAddress(string(req.Owner))
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	amount, err := domain.ToBaseUnits(req.AmountDecimal, token.Decimals)
	if err != nil {
		return nil, apperror.ErrInvalidInput(fmt.Sprintf("invalid amount: %v", err))
	}
	if amount.IsZero() {
		return nil, apperror.ErrInvalidInput("amount must be greater than 0")
	}

	// Balance check happens before any intent is built or submitted.
	balance, err := s.ledger.GetBalance(ctx, owner, token.CoinType)
	if err != nil {
		return nil, err
	}
	if amount.Cmp(balance) > 0 {
		return nil, apperror.ErrInsufficientBalance()
	}

	// Single-use key derived from the owner and the current instant.
	now := domain.NowMillis()
	key := deriveSingleUseKey(owner, now)

	payload := &domain.LockPayload{
		Amount:    amount.Dec(),
		Token:     token.Symbol,
		Timestamp: now,
		Sender:    owner,
		Key:       key,
	}
	ciphertext, err := s.cipher.Encrypt(key, payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypt payload: %w", err))
	}

	// Locking is self-escrow: the owner is both sender and initial recipient.
	intent, err := s.builder.BuildLockIntent(owner, owner, token, amount)
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	pending := &domain.PendingIntent{
		ID:               uuid.New(),
		Kind:             domain.IntentKindLock,
		State:            domain.PendingIntentStatePending,
		Address:          owner,
		TokenSymbol:      token.Symbol,
		AmountBaseUnits:  amount.Dec(),
		EncryptedPayload: ciphertext,
		EncryptionKey:    key,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.intents.Create(ctx, pending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist pending intent: %w", err))
	}

	result, err := s.ledger.SubmitIntent(ctx, intent, req.Signer)
	if err != nil {
		if ferr := s.intents.MarkFailed(ctx, pending.ID, err.Error()); ferr != nil {
			s.log.Error().Err(ferr).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent failed")
		}
		return nil, err
	}

	if err := s.intents.MarkSubmitted(ctx, pending.ID, result.Digest); err != nil {
		s.log.Error().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent submitted")
	}

	// The escrow object must exist or the eventual unlock cannot be built.
	lockObjectID := result.SharedCreatedObject()
	if lockObjectID == "" {
		return nil, apperror.ErrLockObjectNotFound(result.Digest)
	}

	record := &domain.TokenRecord{
		ID:               uuid.New(),
		TxDigest:         result.Digest,
		LockObjectID:     lockObjectID,
		TokenSymbol:      token.Symbol,
		AmountBaseUnits:  amount.Dec(),
		Status:           domain.TokenStatusLocked,
		Sender:           owner,
		Recipient:        owner,
		EncryptedPayload: ciphertext,
		EncryptionKey:    key,
		Timestamp:        now,
	}
	if err := s.records.Create(ctx, record); err != nil {
		// The escrow exists on-chain; the submitted pending row keeps it
		// discoverable for reconciliation.
		return nil, apperror.ErrStoreWriteFailed(err)
	}

	if err := s.intents.MarkResolved(ctx, pending.ID); err != nil {
		s.log.Warn().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to resolve pending intent")
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("tx_digest", result.Digest).
		Str("lock_object_id", lockObjectID).
		Str("token", token.Symbol).
		Str("amount", amount.Dec()).
		Msg("tokens locked")

	return record, nil
}

// Send hands the escrow position to a recipient: the sender's record becomes
// sent and a new received record carrying the same ciphertext, key, lock
// object and digest is created for the recipient. No ledger movement occurs;
// custody travels entirely through the record store.
func (s *LifecycleServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*ports.SendResult, error) {
	recipient, err := domain.ParseAddress(string(req.Recipient))
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}
	if recipient == req.Sender {
		return nil, apperror.ErrInvalidInput("recipient must differ from sender")
	}

	record, err := s.records.GetByID(ctx, req.RecordID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if record == nil {
		return nil, apperror.ErrRecordNotFound()
	}
	if record.Sender != req.Sender {
		return nil, apperror.ErrRecordNotFound()
	}
	if !record.Sendable() {
		if record.Status != domain.TokenStatusLocked {
			return nil, apperror.ErrInvalidStatus(fmt.Sprintf("record is %s, only locked records can be sent", record.Status))
		}
		return nil, apperror.ErrInvalidStatus("record has no lock object id")
	}

	ok, err := s.guard.Acquire(ctx, "send", record.ID, opGuardTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("op guard unavailable, proceeding on store conditional update")
	} else if !ok {
		return nil, apperror.ErrOperationInProgress()
	} else {
		defer func() {
			if rerr := s.guard.Release(context.WithoutCancel(ctx), "send", record.ID); rerr != nil {
				s.log.Warn().Err(rerr).Msg("op guard release failed")
			}
		}()
	}

	received := &domain.TokenRecord{
		ID:               uuid.New(),
		TxDigest:         record.TxDigest,
		LockObjectID:     record.LockObjectID,
		TokenSymbol:      record.TokenSymbol,
		AmountBaseUnits:  record.AmountBaseUnits,
		Status:           domain.TokenStatusReceived,
		Sender:           req.Sender,
		Recipient:        recipient,
		EncryptedPayload: record.EncryptedPayload,
		EncryptionKey:    record.EncryptionKey,
		Timestamp:        domain.NowMillis(),
	}

	// Status flip and received-record insert commit together; the conditional
	// update inside makes a racing second send fail instead of double-creating
	// receivables.
	if err := s.records.HandOff(ctx, record.ID, recipient, received); err != nil {
		return nil, apperror.ErrInvalidStatus(err.Error())
	}
	record.Status = domain.TokenStatusSent
	record.Recipient = recipient

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("received_id", received.ID.String()).
		Str("recipient", recipient.String()).
		Msg("token position sent")

	return &ports.SendResult{Sent: record, Received: received}, nil
}

// DecryptAndUnlock verifies the escrow position against the ledger, decrypts
// the payload, submits the unlock intent and marks the record decrypted. The
// status write is conditioned on confirmed submission.
func (s *LifecycleServiceImpl) DecryptAndUnlock(ctx context.Context, req ports.UnlockRequest) (*domain.TokenRecord, error) {
	record, err := s.records.GetByID(ctx, req.RecordID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if record == nil {
		return nil, apperror.ErrRecordNotFound()
	}
	if record.OwnerRole() != req.Caller {
		return nil, apperror.ErrRecordNotFound()
	}
	if !record.Unlockable() {
		return nil, apperror.ErrInvalidStatus(fmt.Sprintf("record is %s, only received or locked records can be unlocked", record.Status))
	}

	token, err := domain.TokenBySymbol(record.TokenSymbol)
	if err != nil {
		return nil, apperror.ErrUnknownToken(record.TokenSymbol)
	}

	ok, err := s.guard.Acquire(ctx, "unlock", record.ID, opGuardTTL)
	if err != nil {
		s.log.Warn().Err(err).Msg("op guard unavailable, proceeding on store conditional update")
	} else if !ok {
		return nil, apperror.ErrOperationInProgress()
	} else {
		defer func() {
			if rerr := s.guard.Release(context.WithoutCancel(ctx), "unlock", record.ID); rerr != nil {
				s.log.Warn().Err(rerr).Msg("op guard release failed")
			}
		}()
	}

	// Rediscover the lock object from the confirming transaction when the
	// record does not carry it, tolerating indexing delay.
	lockObjectID := record.LockObjectID
	if lockObjectID == "" {
		lockObjectID, err = s.findLockObject(ctx, record.TxDigest)
		if err != nil {
			return nil, err
		}
	}

	// Local decrypt, before any ledger mutation.
	if _, err := s.cipher.Decrypt(record.EncryptionKey, record.EncryptedPayload); err != nil {
		return nil, err
	}

	intent, err := s.builder.BuildUnlockIntent(req.Caller, lockObjectID, token)
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	pending := &domain.PendingIntent{
		ID:              uuid.New(),
		Kind:            domain.IntentKindUnlock,
		State:           domain.PendingIntentStatePending,
		Address:         req.Caller,
		TokenSymbol:     token.Symbol,
		AmountBaseUnits: record.AmountBaseUnits,
		RecordID:        &record.ID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.intents.Create(ctx, pending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist pending intent: %w", err))
	}

	result, err := s.ledger.SubmitIntent(ctx, intent, req.Signer)
	if err != nil {
		if ferr := s.intents.MarkFailed(ctx, pending.ID, err.Error()); ferr != nil {
			s.log.Error().Err(ferr).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent failed")
		}
		return nil, err
	}
	if err := s.intents.MarkSubmitted(ctx, pending.ID, result.Digest); err != nil {
		s.log.Error().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent submitted")
	}

	if err := s.records.UpdateStatus(ctx, record.ID, record.Status, domain.TokenStatusDecrypted, req.Caller); err != nil {
		// Coin already moved on-chain; the submitted pending row flags the
		// stale record for reconciliation.
		return nil, apperror.ErrStoreWriteFailed(err)
	}
	record.Status = domain.TokenStatusDecrypted
	record.LockObjectID = lockObjectID

	if err := s.intents.MarkResolved(ctx, pending.ID); err != nil {
		s.log.Warn().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to resolve pending intent")
	}

	s.log.Info().
		Str("record_id", record.ID.String()).
		Str("unlock_digest", result.Digest).
		Str("lock_object_id", lockObjectID).
		Msg("token unlocked")

	return record, nil
}

// Transfer submits a plain coin transfer, a value movement independent of any
// escrow position.
func (s *LifecycleServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.TransactionResult, error) {
	token, err := domain.TokenBySymbol(req.TokenSymbol)
	if err != nil {
		return nil, apperror.ErrUnknownToken(req.TokenSymbol)
	}
	recipient, err := domain.ParseAddress(string(req.Recipient))
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	amount, err := domain.ToBaseUnits(req.AmountDecimal, token.Decimals)
	if err != nil {
		return nil, apperror.ErrInvalidInput(fmt.Sprintf("invalid amount: %v", err))
	}
	if amount.IsZero() {
		return nil, apperror.ErrInvalidInput("amount must be greater than 0")
	}

	balance, err := s.ledger.GetBalance(ctx, req.Sender, token.CoinType)
	if err != nil {
		return nil, err
	}
	if amount.Cmp(balance) > 0 {
		return nil, apperror.ErrInsufficientBalance()
	}

	intent, err := s.builder.BuildTransferIntent(req.Sender, recipient, amount)
	if err != nil {
		return nil, apperror.ErrInvalidInput(err.Error())
	}

	pending := &domain.PendingIntent{
		ID:              uuid.New(),
		Kind:            domain.IntentKindTransfer,
		State:           domain.PendingIntentStatePending,
		Address:         req.Sender,
		TokenSymbol:     token.Symbol,
		AmountBaseUnits: amount.Dec(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.intents.Create(ctx, pending); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist pending intent: %w", err))
	}

	result, err := s.ledger.SubmitIntent(ctx, intent, req.Signer)
	if err != nil {
		if ferr := s.intents.MarkFailed(ctx, pending.ID, err.Error()); ferr != nil {
			s.log.Error().Err(ferr).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent failed")
		}
		return nil, err
	}
	if err := s.intents.MarkSubmitted(ctx, pending.ID, result.Digest); err != nil {
		s.log.Error().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to mark pending intent submitted")
	}
	if err := s.intents.MarkResolved(ctx, pending.ID); err != nil {
		s.log.Warn().Err(err).Str("intent_id", pending.ID.String()).Msg("failed to resolve pending intent")
	}

	s.log.Info().
		Str("tx_digest", result.Digest).
		Str("recipient", recipient.String()).
		Str("amount", amount.Dec()).
		Msg("direct transfer confirmed")

	return result, nil
}

// History returns the merged status buckets for an address, newest first.
// The four bucket reads are issued concurrently and awaited jointly.
func (s *LifecycleServiceImpl) History(ctx context.Context, address domain.Address) ([]ports.HistoryEntry, error) {
	buckets := []struct {
		status domain.TokenStatus
		role   string
	}{
		{domain.TokenStatusLocked, "sender"},
		{domain.TokenStatusSent, "sender"},
		{domain.TokenStatusReceived, "recipient"},
		{domain.TokenStatusDecrypted, "recipient"},
	}

	results := make([][]ports.HistoryEntry, len(buckets))
	g, gctx := errgroup.WithContext(ctx)

	for i, b := range buckets {
		g.Go(func() error {
			recs, err := s.records.ListByStatus(gctx, b.status, address, historyLimit)
			if err != nil {
				return err
			}
			entries := make([]ports.HistoryEntry, 0, len(recs))
			for j := range recs {
				entries = append(entries, ports.HistoryEntry{Record: &recs[j], Role: b.role})
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(err)
	}

	var merged []ports.HistoryEntry
	for _, entries := range results {
		merged = append(merged, entries...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Record.Timestamp > merged[j].Record.Timestamp
	})
	return merged, nil
}

// LedgerActivity lists recent ledger transactions sent from the address.
func (s *LifecycleServiceImpl) LedgerActivity(ctx context.Context, address domain.Address) ([]domain.TransactionResult, error) {
	results, err := s.ledger.QueryTransactions(ctx, address, historyLimit)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ReconcilePending resolves intents a crash left in flight. Pending rows
// never reached the ledger and are closed as failed; submitted rows are
// checked against the ledger and their record-store writes replayed.
func (s *LifecycleServiceImpl) ReconcilePending(ctx context.Context) error {
	unresolved, err := s.intents.ListUnresolved(ctx, reconcileBatch)
	if err != nil {
		return fmt.Errorf("list unresolved intents: %w", err)
	}

	for _, pi := range unresolved {
		if err := s.reconcileOne(ctx, &pi); err != nil {
			s.log.Error().Err(err).Str("intent_id", pi.ID.String()).Str("kind", string(pi.Kind)).Msg("reconciliation failed")
		}
	}
	return nil
}

func (s *LifecycleServiceImpl) reconcileOne(ctx context.Context, pi *domain.PendingIntent) error {
	if pi.State == domain.PendingIntentStatePending {
		// Never confirmed; whether bytes reached the ledger is unknowable
		// without a digest, so close the row and flag it for inspection.
		s.log.Warn().Str("intent_id", pi.ID.String()).Msg("intent crashed before confirmation, marking failed")
		return s.intents.MarkFailed(ctx, pi.ID, "crashed before confirmation")
	}

	result, err := s.ledger.GetTransaction(ctx, pi.TxDigest)
	if err != nil {
		return err
	}
	if result == nil || !result.Status.Success {
		return s.intents.MarkFailed(ctx, pi.ID, "submitted transaction not found or failed on ledger")
	}

	switch pi.Kind {
	case domain.IntentKindLock:
		existing, err := s.records.GetByTxDigest(ctx, pi.TxDigest)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			lockObjectID := result.SharedCreatedObject()
			if lockObjectID == "" {
				return s.intents.MarkFailed(ctx, pi.ID, "confirmed lock has no shared object")
			}
			record := &domain.TokenRecord{
				ID:               uuid.New(),
				TxDigest:         pi.TxDigest,
				LockObjectID:     lockObjectID,
				TokenSymbol:      pi.TokenSymbol,
				AmountBaseUnits:  pi.AmountBaseUnits,
				Status:           domain.TokenStatusLocked,
				Sender:           pi.Address,
				Recipient:        pi.Address,
				EncryptedPayload: pi.EncryptedPayload,
				EncryptionKey:    pi.EncryptionKey,
				Timestamp:        domain.NowMillis(),
			}
			if err := s.records.Create(ctx, record); err != nil {
				return err
			}
			s.log.Info().Str("record_id", record.ID.String()).Str("tx_digest", pi.TxDigest).Msg("recovered orphaned lock record")
		}

	case domain.IntentKindUnlock:
		if pi.RecordID != nil {
			record, err := s.records.GetByID(ctx, *pi.RecordID)
			if err != nil {
				return err
			}
			if record != nil && record.Unlockable() {
				if err := s.records.UpdateStatus(ctx, record.ID, record.Status, domain.TokenStatusDecrypted, pi.Address); err != nil {
					return err
				}
				s.log.Info().Str("record_id", record.ID.String()).Msg("recovered stale record after confirmed unlock")
			}
		}

	case domain.IntentKindTransfer:
		// Nothing to replay; the transfer carries no record.
	}

	return s.intents.MarkResolved(ctx, pi.ID)
}

// findLockObject fetches the locking transaction with bounded retry and
// scans it for the shared escrow object.
func (s *LifecycleServiceImpl) findLockObject(ctx context.Context, digest string) (string, error) {
	var result *domain.TransactionResult
	var err error

	for attempt := 0; attempt < lookupAttempts; attempt++ {
		if attempt > 0 {
			wait := lookupBaseWait * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		result, err = s.ledger.GetTransaction(ctx, digest)
		if err != nil {
			return "", err
		}
		if result != nil {
			break
		}
		s.log.Debug().Str("tx_digest", digest).Int("attempt", attempt+1).Msg("transaction not yet indexed")
	}
	if result == nil {
		return "", apperror.ErrLockObjectNotFound(digest)
	}

	lockObjectID := result.SharedCreatedObject()
	if lockObjectID == "" {
		return "", apperror.ErrLockObjectNotFound(digest)
	}
	return lockObjectID, nil
}

// deriveSingleUseKey builds the payload passphrase from the owner address and
// the current instant, hex-encoded.
func deriveSingleUseKey(owner domain.Address, nowMillis int64) string {
	sum := sha256.Sum256([]byte(owner.String() + strconv.FormatInt(nowMillis, 10)))
	return hex.EncodeToString(sum[:])
}
