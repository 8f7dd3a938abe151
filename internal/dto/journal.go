package dto

import (
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// PostLineRequest is one leg of a posting request. Amounts are ZAR minor
// units (cents); the side carries the direction.
type PostLineRequest struct {
	AccountCode      string           `json:"accountCode" binding:"required"`
	Side             domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	AmountMinorUnits int64            `json:"amountMinorUnits" binding:"required"`
	Memo             string           `json:"memo"`
}

// PostEntryRequest defines the data needed to post a balanced journal entry.
// Reference, when present, is the idempotency key for the originating
// business event: replaying it returns the original entry.
type PostEntryRequest struct {
	Reference   *string           `json:"reference"`
	Description string            `json:"description"`
	PostedAt    *time.Time        `json:"postedAt"`
	PostedBy    string            `json:"postedBy"`
	Lines       []PostLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID           string           `json:"lineID"`
	EntryID          string           `json:"entryID"`
	AccountID        string           `json:"accountID"`
	Side             domain.EntrySide `json:"side"`
	AmountMinorUnits int64            `json:"amountMinorUnits"`
	Memo             string           `json:"memo,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string    `json:"entryID"`
	Reference   *string   `json:"reference,omitempty"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"postedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	// Replayed is true when the reference matched an already committed entry
	// and that entry was returned instead of a new posting.
	Replayed bool `json:"replayed,omitempty"`
}

// GetEntryResponse combines an entry with its lines.
type GetEntryResponse struct {
	Entry EntryResponse  `json:"entry"`
	Lines []LineResponse `json:"lines"`
}

// ListLinesResponse is a keyset-paginated window of an account's lines.
type ListLinesResponse struct {
	Lines     []LineResponse `json:"lines"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse DTO.
func ToLineResponse(line *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:           line.LineID,
		EntryID:          line.EntryID,
		AccountID:        line.AccountID,
		Side:             line.Side,
		AmountMinorUnits: line.Amount.IntPart(),
		Memo:             line.Memo,
	}
}

// ToLineResponses converts a slice of domain.JournalLine to []LineResponse.
func ToLineResponses(lines []domain.JournalLine) []LineResponse {
	responses := make([]LineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLineResponse(&lines[i])
	}
	return responses
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(entry *domain.JournalEntry, replayed bool) EntryResponse {
	return EntryResponse{
		EntryID:     entry.EntryID,
		Reference:   entry.Reference,
		Description: entry.Description,
		PostedAt:    entry.PostedAt,
		CreatedAt:   entry.CreatedAt,
		CreatedBy:   entry.CreatedBy,
		Replayed:    replayed,
	}
}
