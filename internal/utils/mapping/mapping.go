package mapping

import (
	"github.com/fynbospay/ledger/internal/core/domain"
	"github.com/fynbospay/ledger/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:  d.AccountID,
		Code:       d.Code,
		Name:       d.Name,
		Type:       string(d.Type),
		NormalSide: string(d.NormalSide),
		IsActive:   d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainAccount converts a database account model to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:  m.AccountID,
		Code:       m.Code,
		Name:       m.Name,
		Type:       domain.AccountType(m.Type),
		NormalSide: domain.NormalSide(m.NormalSide),
		IsActive:   m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelEntry converts a domain.JournalEntry to its database model.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		Reference:   d.Reference,
		Description: d.Description,
		PostedAt:    d.PostedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainEntry converts a database entry model to a domain.JournalEntry.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		Reference:   m.Reference,
		Description: m.Description,
		PostedAt:    m.PostedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToModelLine converts a domain.JournalLine to its database model.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		Side:      string(d.Side),
		Amount:    d.Amount,
		Memo:      d.Memo,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLine converts a database line model to a domain.JournalLine.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Side:      domain.EntrySide(m.Side),
		Amount:    m.Amount,
		Memo:      m.Memo,
		CreatedAt: m.CreatedAt,
	}
}
