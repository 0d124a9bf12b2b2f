package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is read-only for the terminal; the catalog replaces the whole list on reload.
type Product struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id"`
	Name      string          `gorm:"size:150;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Category  string          `gorm:"size:100;index" json:"category"` // Category.ID or Category.Name
	Available bool            `json:"available"`
	Image     *string         `json:"image,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
