package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal line is a debit or a credit leg.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// IsValid reports whether the side is a known enum value.
func (s EntrySide) IsValid() bool {
	return s == Debit || s == Credit
}

// JournalEntry represents one atomic financial event. An entry exists if
// and only if its full set of lines was committed balanced, as one unit;
// entries are immutable once posted and corrected only by reversal.
type JournalEntry struct {
	EntryID     string     `json:"entryID"`
	Reference   *string    `json:"reference,omitempty"` // idempotency key from the originating business event
	Description string     `json:"description"`
	PostedAt    time.Time  `json:"postedAt"` // effective accounting timestamp, may be backdated
	AuditFields
}

// JournalLine represents a single leg of a journal entry, affecting one
// account. Amount is in ZAR minor units (cents), always strictly positive;
// the side carries the direction.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Side      EntrySide       `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
	Memo      string          `json:"memo"`
	PostedAt  time.Time       `json:"postedAt"` // denormalised from the owning entry for ordered scans
	CreatedAt time.Time       `json:"createdAt"`
}
