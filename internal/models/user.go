package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of all other resources. Deleting a user cascades to
// everything the user owns, enforced by the foreign key constraints of the
// owned models.
type User struct {
	DefaultModel
	Username     string `json:"username" gorm:"uniqueIndex" example:"ada"`
	Email        string `json:"email" gorm:"uniqueIndex" example:"ada@example.com"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}
