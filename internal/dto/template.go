package dto

import "time"

// VasPurchaseRequest carries the amounts of a VAS purchase settlement event.
// The caller supplies the already-split amounts; the template only verifies
// that gross = cost + fee + VAT before composing the legs.
type VasPurchaseRequest struct {
	Reference          string     `json:"reference" binding:"required"`
	Description        string     `json:"description"`
	PostedAt           *time.Time `json:"postedAt"`
	PostedBy           string     `json:"postedBy"`
	GrossMinorUnits    int64      `json:"grossMinorUnits" binding:"required"`
	CostMinorUnits     int64      `json:"costMinorUnits" binding:"required"`
	FeeMinorUnits      int64      `json:"feeMinorUnits"`
	VatOnFeeMinorUnits int64      `json:"vatOnFeeMinorUnits"`
}

// PayShapRtpRequest carries the amounts of a PayShap request-to-pay "paid"
// callback: principal inflow into bank clearing, net credited to the client
// float, and the scheme fee charged by the banking partner.
type PayShapRtpRequest struct {
	Reference           string     `json:"reference" binding:"required"`
	Description         string     `json:"description"`
	PostedAt            *time.Time `json:"postedAt"`
	PostedBy            string     `json:"postedBy"`
	PrincipalMinorUnits int64      `json:"principalMinorUnits" binding:"required"`
	NetMinorUnits       int64      `json:"netMinorUnits" binding:"required"`
	SchemeFeeMinorUnits int64      `json:"schemeFeeMinorUnits"`
}
