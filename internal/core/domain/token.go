package domain

import "fmt"

// TokenInfo describes one entry of the supported-token catalog.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	CoinType string `json:"coin_type"` // ledger-native type identifier
}

// SupportedTokens is the fixed token catalog of the testnet deployment.
// Adding a token is a configuration change, not a core-logic change.
var SupportedTokens = map[string]TokenInfo{
	"SUI": {
		Symbol:   "SUI",
		Name:     "Sui",
		Decimals: 9,
		CoinType: "0x2::sui::SUI",
	},
	"WAL": {
		Symbol:   "WAL",
		Name:     "Walrus",
		Decimals: 9,
		CoinType: "0x8190b041122eb492bf63cb464476bd68c6b7e570a4079645a8b28732b6197a82::wal::WAL",
	},
	"DEEP": {
		Symbol:   "DEEP",
		Name:     "DeepBook Protocol",
		Decimals: 9,
		CoinType: "0x36dbef866a1d62bf7328989a10fb2f07d769f4ee587c0de4a0a256e57e0a58a8::deep::DEEP",
	},
}

// TokenBySymbol resolves a catalog entry by symbol.
func TokenBySymbol(symbol string) (TokenInfo, error) {
	t, ok := SupportedTokens[symbol]
	if !ok {
		return TokenInfo{}, fmt.Errorf("unsupported token %q", symbol)
	}
	return t, nil
}
