package models

// Account is the database representation of a chart-of-accounts node.
type Account struct {
	AccountID  string `db:"account_id"`
	Code       string `db:"code"`
	Name       string `db:"name"`
	Type       string `db:"account_type"`
	NormalSide string `db:"normal_side"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
