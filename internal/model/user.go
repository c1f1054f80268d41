package model

import "time"

// User represents a registered account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthUser is the identity projection handed out once credentials or a
// token have been verified. Never persisted.
type AuthUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// AuthUser returns the public projection of the user record.
func (u *User) AuthUser() *AuthUser {
	return &AuthUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
