package ledger

import "encoding/json"

// JSON-RPC 2.0 framing for the ledger's fullnode API.

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int64         `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// --- suix_getCoins ---

type coinPage struct {
	Data        []coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Balance      string `json:"balance"`
}

// --- sui_getTransactionBlock / sui_executeTransactionBlock ---

type txBlockOptions struct {
	ShowInput         bool `json:"showInput"`
	ShowEffects       bool `json:"showEffects"`
	ShowEvents        bool `json:"showEvents"`
	ShowObjectChanges bool `json:"showObjectChanges"`
}

type txBlockResponse struct {
	Digest        string         `json:"digest"`
	Effects       *txEffects     `json:"effects,omitempty"`
	ObjectChanges []objectChange `json:"objectChanges,omitempty"`
	TimestampMs   string         `json:"timestampMs,omitempty"`
	Transaction   *txEnvelope    `json:"transaction,omitempty"`
}

type txEnvelope struct {
	Data struct {
		Sender string `json:"sender"`
	} `json:"data"`
}

type txEffects struct {
	Status  executionStatus `json:"status"`
	Created []ownedObjectRef `json:"created,omitempty"`
}

type executionStatus struct {
	Status string `json:"status"` // "success" | "failure"
	Error  string `json:"error,omitempty"`
}

type ownedObjectRef struct {
	Owner     ownerWire `json:"owner"`
	Reference struct {
		ObjectID string `json:"objectId"`
	} `json:"reference"`
}

type objectChange struct {
	Type     string    `json:"type"`
	ObjectID string    `json:"objectId"`
	Owner    ownerWire `json:"owner"`
}

// ownerWire decodes the ledger's polymorphic owner field: either the string
// "Immutable", {"AddressOwner": "0x.."}, {"ObjectOwner": "0x.."} or
// {"Shared": {...}}.
type ownerWire struct {
	AddressOwner string
	Shared       bool
	Immutable    bool
}

func (o *ownerWire) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		o.Immutable = s == "Immutable"
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if raw, ok := m["AddressOwner"]; ok {
		return json.Unmarshal(raw, &o.AddressOwner)
	}
	if _, ok := m["Shared"]; ok {
		o.Shared = true
	}
	return nil
}

// --- suix_queryTransactionBlocks ---

type txQueryFilter struct {
	FromAddress string `json:"FromAddress"`
}

type txQuery struct {
	Filter  txQueryFilter  `json:"filter"`
	Options txBlockOptions `json:"options"`
}

type txQueryPage struct {
	Data        []txBlockResponse `json:"data"`
	NextCursor  *string           `json:"nextCursor"`
	HasNextPage bool              `json:"hasNextPage"`
}

// --- sui_getObject ---

type objectReadOptions struct {
	ShowContent bool `json:"showContent"`
}

type objectRead struct {
	Data *struct {
		ObjectID string `json:"objectId"`
	} `json:"data,omitempty"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error,omitempty"`
}
