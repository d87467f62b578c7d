package model

import "time"

// UserModel mirrors the 'users' table. IDs are bigserial, generated by PostgreSQL.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Role      string `gorm:"type:varchar(20);not null;default:customer"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credential *CredentialModel `gorm:"foreignKey:UserID"`
	Orders     []OrderModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
