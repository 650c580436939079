package ledger

import (
	"strings"
	"testing"

	"ownly-protocol/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageID = "0xpkg"

func testAddr(c byte) domain.Address {
	return domain.Address("0x" + strings.Repeat(string(c), 64))
}

func suiToken(t *testing.T) domain.TokenInfo {
	t.Helper()
	token, err := domain.TokenBySymbol("SUI")
	require.NoError(t, err)
	return token
}

func TestBuilder_BuildLockIntent(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)
	sender, recipient := testAddr('a'), testAddr('b')

	intent, err := b.BuildLockIntent(sender, recipient, suiToken(t), uint256.NewInt(1_000_000_000))
	require.NoError(t, err)

	assert.Equal(t, domain.IntentKindLock, intent.Kind)
	assert.Equal(t, sender, intent.Sender)
	assert.Equal(t, uint256.NewInt(1_000_000_000), intent.SplitAmount)
	assert.Equal(t, uint64(50_000_000), intent.GasBudget)

	require.Len(t, intent.Calls, 1)
	call := intent.Calls[0]
	assert.Equal(t, testPackageID+"::token_locker::lock_token", call.Target)
	require.Len(t, call.Args, 2)
	assert.Equal(t, []byte(recipient), call.Args[0].Pure)
	assert.Equal(t, []byte("SUI"), call.Args[1].Pure)
	assert.Equal(t, []string{suiToken(t).CoinType}, call.TypeArgs)
}

func TestBuilder_BuildLockIntent_Invalid(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)
	sender := testAddr('a')
	token := suiToken(t)

	_, err := b.BuildLockIntent(sender, sender, token, nil)
	assert.Error(t, err)
	_, err = b.BuildLockIntent(sender, sender, token, uint256.NewInt(0))
	assert.Error(t, err)
	_, err = b.BuildLockIntent("0x123", sender, token, uint256.NewInt(1))
	assert.Error(t, err)

	unconfigured := NewBuilder("", 50_000_000)
	_, err = unconfigured.BuildLockIntent(sender, sender, token, uint256.NewInt(1))
	assert.Error(t, err)
}

func TestBuilder_BuildUnlockIntent(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)
	recipient := testAddr('b')

	intent, err := b.BuildUnlockIntent(recipient, "0xlock1", suiToken(t))
	require.NoError(t, err)

	assert.Equal(t, domain.IntentKindUnlock, intent.Kind)
	assert.Equal(t, recipient, intent.Sender)
	assert.Equal(t, recipient, intent.TransferTo)
	assert.Nil(t, intent.SplitAmount)

	require.Len(t, intent.Calls, 1)
	call := intent.Calls[0]
	assert.Equal(t, testPackageID+"::token_locker::unlock_token", call.Target)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "0xlock1", call.Args[0].Object)
	assert.Equal(t, []byte(recipient), call.Args[1].Pure)
	assert.Equal(t, []byte("SUI"), call.Args[2].Pure)
}

func TestBuilder_BuildUnlockIntent_NoLockObject(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)

	_, err := b.BuildUnlockIntent(testAddr('b'), "", suiToken(t))
	assert.Error(t, err)
}

func TestBuilder_BuildTransferIntent(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)
	sender, recipient := testAddr('a'), testAddr('b')

	intent, err := b.BuildTransferIntent(sender, recipient, uint256.NewInt(500))
	require.NoError(t, err)

	assert.Equal(t, domain.IntentKindTransfer, intent.Kind)
	assert.Equal(t, sender, intent.Sender)
	assert.Equal(t, recipient, intent.TransferTo)
	assert.Equal(t, uint256.NewInt(500), intent.SplitAmount)
	assert.Empty(t, intent.Calls)
}

func TestBuilder_BuildTransferIntent_BadRecipient(t *testing.T) {
	b := NewBuilder(testPackageID, 50_000_000)

	_, err := b.BuildTransferIntent(testAddr('a'), "not-an-address", uint256.NewInt(500))
	assert.Error(t, err)
}
