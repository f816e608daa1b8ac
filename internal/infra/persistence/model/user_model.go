package model

import "time"

// UserModel mirrors the 'users' table. The unique index on username is the
// real uniqueness guarantee; the service-level pre-check is only a fast path.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	AccountID    int64  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
