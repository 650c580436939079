package service

import (
	"crypto/ed25519"
	"testing"

	"ownly-protocol/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BIP-39 test vector phrase (all-zero entropy).
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestWalletService_GenerateMnemonic(t *testing.T) {
	s := NewMnemonicWalletService()

	mnemonic, err := s.GenerateMnemonic()
	require.NoError(t, err)
	assert.True(t, s.ValidateMnemonic(mnemonic))

	// Two generations never collide.
	other, err := s.GenerateMnemonic()
	require.NoError(t, err)
	assert.NotEqual(t, mnemonic, other)
}

func TestWalletService_ValidateMnemonic(t *testing.T) {
	s := NewMnemonicWalletService()

	assert.True(t, s.ValidateMnemonic(testMnemonic))
	assert.False(t, s.ValidateMnemonic("not a valid phrase"))
	assert.False(t, s.ValidateMnemonic(""))
	// Valid words, broken checksum.
	assert.False(t, s.ValidateMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"))
}

func TestWalletService_SignerFromMnemonic_Deterministic(t *testing.T) {
	s := NewMnemonicWalletService()

	first, err := s.SignerFromMnemonic(testMnemonic)
	require.NoError(t, err)
	second, err := s.SignerFromMnemonic(testMnemonic)
	require.NoError(t, err)

	assert.Equal(t, first.Address(), second.Address())
	assert.Equal(t, first.PublicKey(), second.PublicKey())
	assert.True(t, domain.IsValidAddress(first.Address().String()))
}

func TestWalletService_SignerFromMnemonic_Invalid(t *testing.T) {
	s := NewMnemonicWalletService()

	_, err := s.SignerFromMnemonic("garbage phrase")
	assert.Error(t, err)
}

func TestWalletService_Signatures_Verify(t *testing.T) {
	s := NewMnemonicWalletService()

	signer, err := s.SignerFromMnemonic(testMnemonic)
	require.NoError(t, err)

	message := []byte("intent bytes")
	sig, err := signer.Sign(message)
	require.NoError(t, err)

	pub := ed25519.PublicKey(signer.PublicKey())
	assert.True(t, ed25519.Verify(pub, message, sig))
	assert.False(t, ed25519.Verify(pub, []byte("other bytes"), sig))
}

func TestWalletService_DifferentPhrases_DifferentAddresses(t *testing.T) {
	s := NewMnemonicWalletService()

	first, err := s.SignerFromMnemonic(testMnemonic)
	require.NoError(t, err)

	mnemonic, err := s.GenerateMnemonic()
	require.NoError(t, err)
	second, err := s.SignerFromMnemonic(mnemonic)
	require.NoError(t, err)

	assert.NotEqual(t, first.Address(), second.Address())
}
