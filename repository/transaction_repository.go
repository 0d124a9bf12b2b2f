package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
)

type TransactionRepository struct{ DB *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Create stores the header and its lines in one DB transaction.
func (r *TransactionRepository) Create(ctx context.Context, trx *entity.Transaction) (string, error) {
	if trx.ID == "" {
		trx.ID = uuid.NewString()
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(trx).Error
	})
	if err != nil {
		return "", err
	}
	return trx.ID, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var trx entity.Transaction
	err := r.DB.WithContext(ctx).Preload("Items").First(&trx, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trx, nil
}
