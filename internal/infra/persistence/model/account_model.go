package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Balance   float64 `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
