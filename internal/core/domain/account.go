package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is a known enum value.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalSide is the side on which increases to an account are recorded.
// Asset/expense accounts conventionally increase on debit, the rest on
// credit, but the registry stores the side explicitly so contra accounts
// (e.g. a debit-normal revenue account) are representable.
type NormalSide string

const (
	NormalDebit  NormalSide = "DEBIT"
	NormalCredit NormalSide = "CREDIT"
)

// IsValid reports whether the normal side is a known enum value.
func (s NormalSide) IsValid() bool {
	return s == NormalDebit || s == NormalCredit
}

// DefaultNormalSide returns the conventional normal side for an account type.
func DefaultNormalSide(t AccountType) NormalSide {
	switch t {
	case Asset, Expense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// Account represents a node in the chart of accounts.
// Code is globally unique and never reused; accounts are deactivated,
// never deleted, so historical journal lines stay resolvable.
type Account struct {
	AccountID  string      `json:"accountID"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	Type       AccountType `json:"type"`
	NormalSide NormalSide  `json:"normalSide"`
	IsActive   bool        `json:"isActive"`
	AuditFields
}
