package entity

import "github.com/shopspring/decimal"

// CartItem is a snapshot of a Product taken when it was first added, plus a quantity.
// It lives only in memory until checkout turns it into a TransactionItem.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (it CartItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
