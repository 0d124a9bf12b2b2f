package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/services"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) GetAll(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.WithContext(ctx).Order("area").Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Create(ctx context.Context, t *entity.Table) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = entity.TableAvailable
	}
	if err := r.DB.WithContext(ctx).Create(t).Error; err != nil {
		return "", err
	}
	return t.ID, nil
}

func (r *TableRepository) Update(ctx context.Context, id string, f services.TableFields) error {
	return r.updates(ctx, id, map[string]any{
		"table_number": f.TableNumber,
		"capacity":     f.Capacity,
		"area":         f.Area,
	})
}

func (r *TableRepository) UpdateStatus(ctx context.Context, id string, status entity.TableStatus) error {
	return r.updates(ctx, id, map[string]any{"status": status})
}

func (r *TableRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&entity.Table{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TableRepository) updates(ctx context.Context, id string, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&entity.Table{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
