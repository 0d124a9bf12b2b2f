package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/services"
)

type PaymentMethodRepository struct{ DB *gorm.DB }

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{DB: db}
}

func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := r.DB.WithContext(ctx).
		Order("is_default DESC").
		Order("created_at").
		Find(&methods).Error
	return methods, err
}

// Update upserts a default method: the first save of a seeded method creates its row.
func (r *PaymentMethodRepository) Update(ctx context.Context, id string, in services.PaymentMethodUpdate) error {
	row := entity.PaymentMethod{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Enabled:   in.Enabled,
		IsDefault: true,
		Fee:       in.Fee,
		FeeType:   in.FeeType,
		Config:    in.Config,
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "fee", "fee_type", "config", "updated_at"}),
	}).Create(&row).Error
}

func (r *PaymentMethodRepository) CreateCustom(ctx context.Context, rec *entity.PaymentMethod) (string, error) {
	rec.ID = uuid.NewString()
	rec.IsDefault = false
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

// DeleteCustom never touches default methods.
func (r *PaymentMethodRepository) DeleteCustom(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND is_default = ?", id, false).
		Delete(&entity.PaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
