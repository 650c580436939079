package dto

// CreateWalletResponse carries a freshly generated wallet.
type CreateWalletResponse struct {
	Mnemonic string `json:"mnemonic"`
	Address  string `json:"address"`
}

// ImportWalletRequest is the request body for importing a recovery phrase.
type ImportWalletRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// ImportWalletResponse returns the address derived from an imported phrase.
type ImportWalletResponse struct {
	Address string `json:"address"`
}

// ConnectRequest proves wallet control to open a session.
type ConnectRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// ConnectResponse is the issued session.
type ConnectResponse struct {
	Token   string `json:"token"`
	Expiry  int64  `json:"expiry"` // Unix timestamp
	Address string `json:"address"`
}

// LockRequest is the request body for encrypting and locking tokens.
type LockRequest struct {
	Amount   string `json:"amount" binding:"required,max=40"`
	Token    string `json:"token" binding:"required,max=10"`
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// SendRequest is the request body for handing a locked position to a recipient.
type SendRequest struct {
	Recipient string `json:"recipient" binding:"required,ledger_address"`
}

// UnlockRequest is the request body for decrypting and unlocking a position.
type UnlockRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// TransferRequest is the request body for a direct coin transfer.
type TransferRequest struct {
	Amount    string `json:"amount" binding:"required,max=40"`
	Token     string `json:"token" binding:"required,max=10"`
	Recipient string `json:"recipient" binding:"required,ledger_address"`
	Mnemonic  string `json:"mnemonic" binding:"required"`
}

// RecordResponse is the client view of a token record.
type RecordResponse struct {
	ID            string `json:"id"`
	TxDigest      string `json:"tx_digest"`
	LockObjectID  string `json:"lock_object_id,omitempty"`
	Token         string `json:"token"`
	Amount        string `json:"amount"` // base units
	AmountDisplay string `json:"amount_display"`
	Status        string `json:"status"`
	Sender        string `json:"sender"`
	Recipient     string `json:"recipient,omitempty"`
	Timestamp     int64  `json:"timestamp"` // epoch milliseconds
}

// SendResponse pairs the two records produced by a send.
type SendResponse struct {
	Sent     RecordResponse `json:"sent"`
	Received RecordResponse `json:"received"`
}

// TransferResponse is the confirmed outcome of a direct transfer.
type TransferResponse struct {
	TxDigest string `json:"tx_digest"`
}

// HistoryItem is one row of the merged status history.
type HistoryItem struct {
	RecordResponse
	Role string `json:"role"` // sender or recipient
}

// HistoryResponse wraps the merged history list.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ActivityItem is one raw ledger transaction sent from the wallet.
type ActivityItem struct {
	Digest    string `json:"digest"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// ActivityResponse wraps the on-chain activity list.
type ActivityResponse struct {
	Items []ActivityItem `json:"items"`
}

// BalanceEntry is one token's balance in both representations.
type BalanceEntry struct {
	BaseUnits string `json:"base_units"`
	Display   string `json:"display"`
}

// BalancesResponse maps token symbol to balance.
type BalancesResponse struct {
	Balances map[string]BalanceEntry `json:"balances"`
}
