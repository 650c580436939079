package domain

// Owner describes who controls a ledger object. Shared objects are owned by
// the consensus layer rather than an address.
type Owner struct {
	AddressOwner Address `json:"address_owner,omitempty"`
	Shared       bool    `json:"shared,omitempty"`
}

// ObjectChange is one entry of a confirmed transaction's object-change list.
type ObjectChange struct {
	Type     string `json:"type"` // created, mutated, deleted, transferred
	ObjectID string `json:"object_id"`
	Owner    Owner  `json:"owner"`
}

// CreatedObject is one entry of a confirmed transaction's effects.created list.
type CreatedObject struct {
	ObjectID string `json:"object_id"`
	Owner    Owner  `json:"owner"`
}

// ExecutionStatus is the ledger's verdict on a submitted intent.
type ExecutionStatus struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// TransactionResult is the confirmed outcome of a ledger transaction, as
// returned both from submission and from digest lookup.
type TransactionResult struct {
	Digest        string          `json:"digest"`
	Status        ExecutionStatus `json:"status"`
	Created       []CreatedObject `json:"created,omitempty"`
	ObjectChanges []ObjectChange  `json:"object_changes,omitempty"`
	TimestampMs   int64           `json:"timestamp_ms,omitempty"`
	Sender        Address         `json:"sender,omitempty"`
}

// SharedCreatedObject scans the result for a newly created shared-owned
// object and returns its id, checking object changes first and falling back
// to the effects.created list. Returns "" if none is found.
func (r *TransactionResult) SharedCreatedObject() string {
	for _, c := range r.ObjectChanges {
		if c.Type == "created" && c.Owner.Shared {
			return c.ObjectID
		}
	}
	for _, c := range r.Created {
		if c.Owner.Shared {
			return c.ObjectID
		}
	}
	return ""
}

// Signer produces ledger signatures over serialized intents.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() []byte
	Address() Address
}
