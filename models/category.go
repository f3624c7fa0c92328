package models

import "time"

type Category struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_name" json:"name"`
	IsPublic  bool      `gorm:"column:is_public;not null" json:"is_public"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
