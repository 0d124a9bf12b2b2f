package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const TransactionStatusCompleted = "completed"

type Transaction struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	Total           decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Fee             decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"fee"`
	Status          string          `gorm:"size:32;not null" json:"status"`
	PaymentMethodID string          `gorm:"size:64" json:"paymentMethodId,omitempty"`
	CustomerID      string          `gorm:"size:64" json:"customerId,omitempty"`

	Items []TransactionItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
}

type TransactionItem struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	TransactionID string          `gorm:"size:64;index" json:"-"`
	ProductID     string          `gorm:"size:64;not null" json:"productId"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
}
