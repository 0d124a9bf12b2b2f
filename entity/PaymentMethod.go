package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the stored record. Icon and color are not stored; the registry
// resolves them from its static table.
type PaymentMethod struct {
	ID          string            `gorm:"primaryKey;size:64" json:"id"`
	Name        string            `gorm:"size:100;not null" json:"name"`
	Category    string            `gorm:"size:32;not null" json:"category"`
	SubCategory string            `gorm:"size:32" json:"subCategory"`
	Enabled     bool              `json:"enabled"`
	IsDefault   bool              `json:"isDefault"`
	Fee         decimal.Decimal   `gorm:"type:numeric;not null;default:0" json:"fee"`
	FeeType     string            `gorm:"size:16;not null" json:"feeType"`
	Config      map[string]string `gorm:"serializer:json" json:"config,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
