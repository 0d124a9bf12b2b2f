package entity

// AllCategoryID is synthesized by the catalog and never stored.
const AllCategoryID = "all"

type Category struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Icon string `gorm:"size:16" json:"icon"`

	// recomputed from the product list on every read
	Count int `gorm:"-" json:"count"`
}
