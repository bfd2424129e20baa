package models

import (
	"time"
)

// Account is the directory row behind comment author resolution and the
// admin-capability check. Credential handling lives outside this service;
// rows here are provisioned by the identity system.
type Account struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id"`
	DisplayName string    `gorm:"type:varchar(255);not null;column:display_name"`
	Email       string    `gorm:"type:varchar(255);column:email"`
	IsAdmin     bool      `gorm:"not null;default:false;column:is_admin"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "blog_accounts"
}
