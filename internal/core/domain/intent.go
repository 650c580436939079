package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// IntentKind identifies the shape of a ledger intent.
type IntentKind string

const (
	IntentKindLock     IntentKind = "lock"
	IntentKindUnlock   IntentKind = "unlock"
	IntentKindTransfer IntentKind = "transfer"
)

// CallArg is one argument of a contract call: either a pure (BCS-encodable)
// value or an object reference.
type CallArg struct {
	Pure   []byte `json:"pure,omitempty"`
	Object string `json:"object,omitempty"`
}

// MoveCall describes one contract entry-point invocation.
type MoveCall struct {
	Target   string    `json:"target"` // package::module::function
	Args     []CallArg `json:"args"`
	TypeArgs []string  `json:"type_args,omitempty"`
}

// Intent is an unsigned ledger transaction intent in the ledger's native
// shape: an optional gas split, a sequence of contract calls, and an optional
// trailing transfer of the produced object.
type Intent struct {
	Kind        IntentKind   `json:"kind"`
	Sender      Address      `json:"sender"`
	SplitAmount *uint256.Int `json:"split_amount,omitempty"` // carved off the gas coin
	Calls       []MoveCall   `json:"calls,omitempty"`
	TransferTo  Address      `json:"transfer_to,omitempty"` // recipient of the produced/split coin
	GasBudget   uint64       `json:"gas_budget"`
}

// PendingIntentState tracks the two-phase completion of a ledger action.
type PendingIntentState string

const (
	// PendingIntentStatePending: row persisted, intent not yet submitted.
	PendingIntentStatePending PendingIntentState = "pending"
	// PendingIntentStateSubmitted: ledger confirmed, record write outstanding.
	PendingIntentStateSubmitted PendingIntentState = "submitted"
	// PendingIntentStateResolved: record write completed.
	PendingIntentStateResolved PendingIntentState = "resolved"
	// PendingIntentStateFailed: submission failed before any ledger effect.
	PendingIntentStateFailed PendingIntentState = "failed"
)

// PendingIntent is the completion record persisted before every ledger
// submission, so a crash between submission and record persistence is
// detectable and reconcilable on next start instead of silently lost.
type PendingIntent struct {
	ID              uuid.UUID          `json:"id"`
	Kind            IntentKind         `json:"kind"`
	State           PendingIntentState `json:"state"`
	Address         Address            `json:"address"`
	TokenSymbol     string             `json:"token_symbol"`
	AmountBaseUnits string             `json:"amount_base_units"`
	RecordID        *uuid.UUID         `json:"record_id,omitempty"` // set for unlock intents
	TxDigest        string             `json:"tx_digest,omitempty"` // set once submitted
	// Ciphertext and key travel with lock intents so a crashed lock can be
	// replayed into a record during reconciliation.
	EncryptedPayload string `json:"-"`
	EncryptionKey    string `json:"-"`
	FailureReason    string `json:"failure_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	ResolvedAt      *time.Time         `json:"resolved_at,omitempty"`
}
