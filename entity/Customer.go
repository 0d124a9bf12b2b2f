package entity

type Customer struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Name  string `gorm:"size:150;not null" json:"name"`
	Phone string `gorm:"size:32" json:"phone"`
	Email string `gorm:"size:150" json:"email"`
}
