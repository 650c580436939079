package ledger

import (
	"fmt"

	"ownly-protocol/internal/core/domain"

	"github.com/holiman/uint256"
)

// Builder assembles unsigned ledger intents from domain parameters. Pure:
// no I/O, no clock.
type Builder struct {
	packageID string
	gasBudget uint64
}

// NewBuilder creates an intent builder bound to the escrow contract package.
func NewBuilder(packageID string, gasBudget uint64) *Builder {
	return &Builder{packageID: packageID, gasBudget: gasBudget}
}

// BuildLockIntent escrows amount base units of token into a new shared lock
// object addressed to recipient: split the gas coin by amount, then invoke
// the lock entry point with the coin, the recipient, and the token symbol as
// raw bytes for contract consumption.
func (b *Builder) BuildLockIntent(sender, recipient domain.Address, token domain.TokenInfo, amount *uint256.Int) (*domain.Intent, error) {
	if err := b.check(sender, amount); err != nil {
		return nil, err
	}
	return &domain.Intent{
		Kind:        domain.IntentKindLock,
		Sender:      sender,
		SplitAmount: amount,
		Calls: []domain.MoveCall{{
			Target: b.packageID + "::token_locker::lock_token",
			Args: []domain.CallArg{
				{Pure: []byte(recipient)},
				{Pure: []byte(token.Symbol)},
			},
			TypeArgs: []string{token.CoinType},
		}},
		GasBudget: b.gasBudget,
	}, nil
}

// BuildUnlockIntent invokes the unlock entry point against the named shared
// lock object, typed by the token's native type, and transfers the produced
// coin to recipient. The token symbol is passed as raw bytes, which pins the
// unlock path to the value domain the contract knows.
func (b *Builder) BuildUnlockIntent(recipient domain.Address, lockObjectID string, token domain.TokenInfo) (*domain.Intent, error) {
	if lockObjectID == "" {
		return nil, fmt.Errorf("lock object id required")
	}
	if _, err := domain.ParseAddress(string(recipient)); err != nil {
		return nil, err
	}
	return &domain.Intent{
		Kind:   domain.IntentKindUnlock,
		Sender: recipient,
		Calls: []domain.MoveCall{{
			Target: b.packageID + "::token_locker::unlock_token",
			Args: []domain.CallArg{
				{Object: lockObjectID},
				{Pure: []byte(recipient)},
				{Pure: []byte(token.Symbol)},
			},
			TypeArgs: []string{token.CoinType},
		}},
		TransferTo: recipient,
		GasBudget:  b.gasBudget,
	}, nil
}

// BuildTransferIntent splits amount off the gas coin and transfers it
// directly to recipient. This is a plain coin movement, unrelated to any
// escrow position.
func (b *Builder) BuildTransferIntent(sender, recipient domain.Address, amount *uint256.Int) (*domain.Intent, error) {
	if err := b.check(sender, amount); err != nil {
		return nil, err
	}
	if _, err := domain.ParseAddress(string(recipient)); err != nil {
		return nil, err
	}
	return &domain.Intent{
		Kind:        domain.IntentKindTransfer,
		Sender:      sender,
		SplitAmount: amount,
		TransferTo:  recipient,
		GasBudget:   b.gasBudget,
	}, nil
}

func (b *Builder) check(sender domain.Address, amount *uint256.Int) error {
	if b.packageID == "" {
		return fmt.Errorf("contract package id not configured")
	}
	if _, err := domain.ParseAddress(string(sender)); err != nil {
		return err
	}
	if amount == nil || amount.IsZero() {
		return fmt.Errorf("amount must be a positive base-unit integer")
	}
	return nil
}
