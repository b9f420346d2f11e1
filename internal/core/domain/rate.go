package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the current market price per unit for an asset key. Only the
// latest value is kept (never historized); a user-scoped rate overrides
// the global default for the same key.
type Rate struct {
	RateID      string          `json:"rateID"` // Primary Key (UUID)
	OwnerUserID *string         `json:"ownerUserID"` // nil for a global default rate
	AssetKey    string          `json:"assetKey"`
	Value       decimal.Decimal `json:"value"` // Monetary units per unit quantity
	LastUpdated time.Time       `json:"lastUpdated"`
	AuditFields
}

// IsGlobal reports whether the rate is a global default rather than a user override.
func (r Rate) IsGlobal() bool {
	return r.OwnerUserID == nil
}
