// Package models defines the domain models for the HealthPredict service.
// This file contains the User account model.
package models

import (
	"time"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// User represents a registered account. Identity is the email address,
// matched case-insensitively; the stored form is always lowercased and
// trimmed. Accounts are never deleted in the observed scope.
type User struct {
	// ID is the surrogate primary key.
	ID string `json:"id" gorm:"type:varchar(36);primaryKey"`

	// Email is the unique, lowercased account identity.
	Email string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`

	// PasswordHash is the bcrypt hash of the account password. Plaintext
	// passwords are never stored.
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"`

	// FullName is the display name shown on reports and the admin panel.
	FullName string `json:"fullname" gorm:"type:varchar(255)"`

	// IsAdmin grants access to the aggregate statistics endpoints.
	IsAdmin bool `json:"is_admin" gorm:"default:false"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for gorm.
func (User) TableName() string {
	return "users"
}

// Role maps the admin flag onto the authorization role used in JWT claims.
func (u *User) Role() constants.UserRole {
	if u.IsAdmin {
		return constants.RoleAdmin
	}
	return constants.RoleUser
}
