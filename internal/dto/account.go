package dto

import (
	"time"

	"github.com/fynbospay/ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to register a new account in
// the chart of accounts.
type CreateAccountRequest struct {
	Code string             `json:"code" binding:"required,accountcode"`
	Name string             `json:"name" binding:"required"`
	Type domain.AccountType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	// NormalSide is optional; when omitted the conventional side for the
	// account type is used. Unusual but well-formed combinations (e.g. a
	// debit-normal revenue contra account) are accepted.
	NormalSide domain.NormalSide `json:"normalSide" binding:"omitempty,oneof=DEBIT CREDIT"`
	CreatedBy  string            `json:"createdBy"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	Type          domain.AccountType `json:"type"`
	NormalSide    domain.NormalSide  `json:"normalSide"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		Type:          acc.Type,
		NormalSide:    acc.NormalSide,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
