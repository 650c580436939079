package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenStatus represents the lifecycle state of a TokenRecord.
type TokenStatus string

const (
	TokenStatusLocked    TokenStatus = "locked"
	TokenStatusSent      TokenStatus = "sent"
	TokenStatusReceived  TokenStatus = "received"
	TokenStatusDecrypted TokenStatus = "decrypted"
)

// transitions is the lifecycle graph. A locked record may be handed off (sent)
// or self-unlocked (decrypted); a received record may only be decrypted.
// sent and decrypted are terminal.
var transitions = map[TokenStatus][]TokenStatus{
	TokenStatusLocked:   {TokenStatusSent, TokenStatusDecrypted},
	TokenStatusReceived: {TokenStatusDecrypted},
}

// Valid reports whether s is a known lifecycle status.
func (s TokenStatus) Valid() bool {
	switch s {
	case TokenStatusLocked, TokenStatusSent, TokenStatusReceived, TokenStatusDecrypted:
		return true
	}
	return false
}

// IsTerminal returns true if no transition leaves this status.
func (s TokenStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether s -> next is a legal lifecycle transition.
func (s TokenStatus) CanTransition(next TokenStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// TokenRecord is the unit of lifecycle tracking for an escrowed position.
// Records are append-only apart from status transitions; none are ever deleted.
type TokenRecord struct {
	ID               uuid.UUID   `json:"id"`
	TxDigest         string      `json:"tx_digest"`
	LockObjectID     string      `json:"lock_object_id,omitempty"` // escrow object; empty only while a recipient has not rediscovered it
	TokenSymbol      string      `json:"token_symbol"`
	AmountBaseUnits  string      `json:"amount_base_units"` // decimal string, avoids precision loss
	Status           TokenStatus `json:"status"`
	Sender           Address     `json:"sender"`
	Recipient        Address     `json:"recipient,omitempty"`
	EncryptedPayload string      `json:"-"`
	EncryptionKey    string      `json:"-"` // stored beside the ciphertext; the store is the trust boundary
	Timestamp        int64       `json:"timestamp"` // epoch milliseconds
}

// OwnerRole returns which address field owns a record in the given status:
// sender for locked/sent, recipient for received/decrypted.
func (r *TokenRecord) OwnerRole() Address {
	switch r.Status {
	case TokenStatusReceived, TokenStatusDecrypted:
		return r.Recipient
	default:
		return r.Sender
	}
}

// Sendable reports whether the record can enter the send flow.
func (r *TokenRecord) Sendable() bool {
	return r.Status == TokenStatusLocked && r.LockObjectID != ""
}

// Unlockable reports whether the record can enter the unlock flow.
// The locked case is the self-targeted unlock variant.
func (r *TokenRecord) Unlockable() bool {
	return r.Status == TokenStatusReceived || r.Status == TokenStatusLocked
}

// LockPayload is the structure encrypted into TokenRecord.EncryptedPayload.
type LockPayload struct {
	Amount    string  `json:"amount"` // base units
	Token     string  `json:"token"`  // catalog symbol
	Timestamp int64   `json:"timestamp"`
	Sender    Address `json:"sender"`
	Key       string  `json:"key"`
}

// Validate checks the decrypted payload for the expected structure. A payload
// that decrypts but fails these checks indicates a wrong key or corrupted
// ciphertext.
func (p *LockPayload) Validate() error {
	if _, err := ParseBaseUnits(p.Amount); err != nil {
		return err
	}
	if _, err := TokenBySymbol(p.Token); err != nil {
		return err
	}
	if _, err := ParseAddress(string(p.Sender)); err != nil {
		return err
	}
	return nil
}

// NowMillis returns the current instant as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
