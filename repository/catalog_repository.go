package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).Order("name").Find(&products).Error
	return products, err
}

func (r *CatalogRepository) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepository) GetAllCustomers(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.WithContext(ctx).Order("name").Find(&customers).Error
	return customers, err
}
