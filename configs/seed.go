package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
)

// SeedDemo fills an empty database with a small catalogue and floor plan.
// Payment methods are not seeded here; the registry seeds its defaults on first load.
func SeedDemo(db *gorm.DB) error {
	categories := []entity.Category{
		{ID: "coffee", Name: "Coffee", Icon: "☕"},
		{ID: "drinks", Name: "Drinks", Icon: "🥤"},
		{ID: "food", Name: "Food", Icon: "🍛"},
		{ID: "snacks", Name: "Snacks", Icon: "🍟"},
	}
	products := []entity.Product{
		{ID: "espresso", Name: "Espresso", Price: decimal.NewFromInt(18000), Category: "coffee", Available: true},
		{ID: "latte", Name: "Cafe Latte", Price: decimal.NewFromInt(25000), Category: "coffee", Available: true},
		{ID: "iced-tea", Name: "Iced Tea", Price: decimal.NewFromInt(8000), Category: "Drinks", Available: true},
		{ID: "lemonade", Name: "Lemonade", Price: decimal.NewFromInt(15000), Category: "drinks", Available: true},
		{ID: "fried-rice", Name: "Fried Rice", Price: decimal.NewFromInt(28000), Category: "food", Available: true},
		{ID: "chicken-noodle", Name: "Chicken Noodle", Price: decimal.NewFromInt(26000), Category: "Food", Available: false},
		{ID: "fries", Name: "French Fries", Price: decimal.NewFromInt(15000), Category: "snacks", Available: true},
	}
	customers := []entity.Customer{
		{ID: "walk-in", Name: "Walk-in Customer"},
		{ID: "cus-001", Name: "Budi Santoso", Phone: "081234567890"},
	}
	tables := []entity.Table{
		{ID: "tbl-a1", TableNumber: "A1", Capacity: 2, Area: "Indoor", Status: entity.TableAvailable},
		{ID: "tbl-a2", TableNumber: "A2", Capacity: 4, Area: "Indoor", Status: entity.TableAvailable},
		{ID: "tbl-a3", TableNumber: "A3", Capacity: 4, Area: "Indoor", Status: entity.TableAvailable},
		{ID: "tbl-t1", TableNumber: "T1", Capacity: 6, Area: "Terrace", Status: entity.TableAvailable},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.FirstOrCreate(&categories[i], entity.Category{ID: categories[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range products {
			if err := tx.FirstOrCreate(&products[i], entity.Product{ID: products[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range customers {
			if err := tx.FirstOrCreate(&customers[i], entity.Customer{ID: customers[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range tables {
			if err := tx.FirstOrCreate(&tables[i], entity.Table{ID: tables[i].ID}).Error; err != nil {
				return err
			}
		}
		log.Println("✅ Demo catalogue and tables seeded")
		return nil
	})
}
