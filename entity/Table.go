package entity

import "time"

type Table struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	TableNumber string      `gorm:"size:32;not null" json:"tableNumber"`
	Capacity    int         `gorm:"not null" json:"capacity"`
	Area        string      `gorm:"size:64;index" json:"area"`
	Status      TableStatus `gorm:"size:16;not null;default:available" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
