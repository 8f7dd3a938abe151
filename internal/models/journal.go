package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of one atomic financial event.
// Rows are append-only: no update path exists outside test rollback tooling.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	Reference   *string   `db:"reference"`
	Description string    `db:"description"`
	PostedAt    time.Time `db:"posted_at"`
	AuditFields
}

// JournalLine is the database representation of one leg of an entry.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Side      string          `db:"side"`
	Amount    decimal.Decimal `db:"amount"`
	Memo      string          `db:"memo"`
	CreatedAt time.Time       `db:"created_at"`
}
