package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorageUnavailable indicates a storage-layer failure during an otherwise
// valid operation. It is the only class eligible for caller-driven retry, and
// only when the call carried an idempotency reference.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError wraps a lower-level failure with an HTTP-ish code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is lets 5xx AppErrors match ErrStorageUnavailable so callers can decide
// on retry eligibility without inspecting codes.
func (e *AppError) Is(target error) bool {
	return target == ErrStorageUnavailable && e.Code >= 500
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// DuplicateAccountCodeError is returned when creating an account whose code
// is already registered. Codes are never reused, even after deactivation.
type DuplicateAccountCodeError struct {
	Code string
}

func (e *DuplicateAccountCodeError) Error() string {
	return fmt.Sprintf("account code %q already exists", e.Code)
}

func (e *DuplicateAccountCodeError) Is(target error) bool { return target == ErrDuplicate }

// UnknownAccountError is returned when a posting references an account code
// that is not in the registry.
type UnknownAccountError struct {
	Code string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %q", e.Code)
}

func (e *UnknownAccountError) Is(target error) bool { return target == ErrValidation }

// InactiveAccountError is returned when a posting references a deactivated
// account. Inactive accounts remain queryable for history but reject new lines.
type InactiveAccountError struct {
	Code string
}

func (e *InactiveAccountError) Error() string {
	return fmt.Sprintf("account %q is inactive", e.Code)
}

func (e *InactiveAccountError) Is(target error) bool { return target == ErrValidation }

// NonPositiveAmountError is returned for zero or negative line amounts.
// Zero-amount lines are rejected, not silently dropped.
type NonPositiveAmountError struct {
	AccountCode string
	Amount      decimal.Decimal
}

func (e *NonPositiveAmountError) Error() string {
	return fmt.Sprintf("line amount must be positive for account %q, got %s", e.AccountCode, e.Amount)
}

func (e *NonPositiveAmountError) Is(target error) bool { return target == ErrValidation }

// UnbalancedEntryError is returned when an entry's debit and credit totals
// differ. It names both totals so reconciliation tooling can act without
// parsing free text. Never retried automatically: it is a caller-side bug.
type UnbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry does not balance: debit total %s, credit total %s, discrepancy %s",
		e.DebitTotal, e.CreditTotal, e.DebitTotal.Sub(e.CreditTotal))
}

func (e *UnbalancedEntryError) Is(target error) bool { return target == ErrValidation }

// TemplateArithmeticError is returned when a posting template's own fee-split
// arithmetic does not reconcile, before the posting engine is ever called.
// Leg names the inconsistent component.
type TemplateArithmeticError struct {
	Template string
	Leg      string
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *TemplateArithmeticError) Error() string {
	return fmt.Sprintf("%s template arithmetic error on %s: expected %s, got %s",
		e.Template, e.Leg, e.Expected, e.Actual)
}

func (e *TemplateArithmeticError) Is(target error) bool { return target == ErrValidation }

// ConsistencyError signals that the whole-ledger trial balance no longer
// conserves (grand debit total != grand credit total). This is a posting
// engine defect, not bad input, and must be treated as a fatal alarm.
type ConsistencyError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ledger consistency violated: trial balance debit total %s != credit total %s",
		e.DebitTotal, e.CreditTotal)
}
