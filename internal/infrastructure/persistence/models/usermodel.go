package models

import (
	"time"

	"certdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

// RequesterModel holds the requester profile attached to a user account.
type RequesterModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Region    int    `gorm:"not null;index"`
	Location  string `gorm:"not null;size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RequesterModel) TableName() string {
	return constants.TableRequesters
}

// CertifierModel holds the certifier profile attached to a user account.
type CertifierModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CertifierModel) TableName() string {
	return constants.TableCertifiers
}
