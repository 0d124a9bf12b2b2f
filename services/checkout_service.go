package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
)

type CheckoutIn struct {
	PaymentMethodID string `json:"paymentMethodId"`
	CustomerID      string `json:"customerId"`
}

type CheckoutResult struct {
	TransactionID string          `json:"transactionId"`
	Total         decimal.Decimal `json:"total"`
	Fee           decimal.Decimal `json:"fee"`
	ItemCount     int             `json:"itemCount"`
}

// CheckoutService turns a cart into a backend transaction.
type CheckoutService struct {
	Transactions TransactionBackend
	Log          *logger.Logger
}

func NewCheckoutService(tx TransactionBackend, log *logger.Logger) *CheckoutService {
	return &CheckoutService{Transactions: tx, Log: log}
}

// BuildTransaction maps cart lines to the transaction payload without touching the cart.
func BuildTransaction(items []entity.CartItem) *entity.Transaction {
	trx := &entity.Transaction{
		Total:  totalOf(items),
		Fee:    decimal.Zero,
		Status: entity.TransactionStatusCompleted,
		Items:  make([]entity.TransactionItem, 0, len(items)),
	}
	for _, it := range items {
		trx.Items = append(trx.Items, entity.TransactionItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return trx
}

// Checkout sends the cart and removes the sent lines on success, which empties
// it unless another request added items meanwhile. If the backend refuses the
// transaction the cart is kept.
// methods may be nil when no payment method is given.
func (s *CheckoutService) Checkout(ctx context.Context, cart *Cart, methods *PaymentMethodRegistry, in CheckoutIn) (*CheckoutResult, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	trx := BuildTransaction(items)
	trx.CustomerID = in.CustomerID

	if in.PaymentMethodID != "" {
		if methods == nil {
			return nil, ErrMethodNotFound
		}
		m, ok := methods.Method(in.PaymentMethodID)
		if !ok {
			return nil, ErrMethodNotFound
		}
		if !m.Enabled {
			return nil, ErrMethodDisabled
		}
		trx.PaymentMethodID = m.ID
		trx.Fee = m.FeeFor(trx.Total)
	}

	id, err := s.Transactions.Create(ctx, trx)
	if err != nil {
		s.Log.Error("checkout_failed", "", "transaction was not created, cart kept", err)
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	cart.Deduct(items)

	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	s.Log.Info("checkout_completed", id, fmt.Sprintf("total %s, %d items", trx.Total, n))
	return &CheckoutResult{TransactionID: id, Total: trx.Total, Fee: trx.Fee, ItemCount: n}, nil
}
