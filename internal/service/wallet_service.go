package service

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"ownly-protocol/internal/core/domain"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
)

const mnemonicEntropyBits = 128 // 12 words

// ed25519SchemeFlag prefixes the public key when hashing into an address.
const ed25519SchemeFlag = 0x00

// MnemonicWalletService implements ports.WalletService: BIP-39 mnemonics,
// ed25519 keypairs, addresses derived as blake2b-256(flag || pubkey).
type MnemonicWalletService struct{}

// NewMnemonicWalletService creates a new wallet service.
func NewMnemonicWalletService() *MnemonicWalletService {
	return &MnemonicWalletService{}
}

// GenerateMnemonic creates a fresh 12-word BIP-39 mnemonic.
func (s *MnemonicWalletService) GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generating entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generating mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic reports whether the phrase is a well-formed BIP-39 mnemonic.
func (s *MnemonicWalletService) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SignerFromMnemonic derives the ed25519 signer for a mnemonic. The first 32
// seed bytes feed the key, matching the original wallet derivation.
func (s *MnemonicWalletService) SignerFromMnemonic(mnemonic string) (domain.Signer, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic phrase")
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("deriving seed: %w", err)
	}

	priv := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	pub := priv.Public().(ed25519.PublicKey)

	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("blake2b init: %w", err)
	}
	h.Write([]byte{ed25519SchemeFlag})
	h.Write(pub)
	address := domain.Address("0x" + hex.EncodeToString(h.Sum(nil)))

	return &ed25519Signer{priv: priv, pub: pub, address: address}, nil
}

type ed25519Signer struct {
	priv    ed25519.PrivateKey
	pub     ed25519.PublicKey
	address domain.Address
}

func (s *ed25519Signer) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, message), nil
}

func (s *ed25519Signer) PublicKey() []byte { return s.pub }

func (s *ed25519Signer) Address() domain.Address { return s.address }
