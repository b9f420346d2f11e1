package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the database shape of a market rate row. A NULL owner_user_id
// marks a global default rate.
type Rate struct {
	RateID      string          `db:"rate_id"`
	OwnerUserID *string         `db:"owner_user_id"`
	AssetKey    string          `db:"asset_key"`
	Value       decimal.Decimal `db:"value"`
	LastUpdated time.Time       `db:"last_updated"`
	AuditFields
}
