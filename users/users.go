package users

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           string   `json:"id,omitempty"`       // Unique identifier for the user
	Username     string   `json:"username,omitempty"` // Unique username, case semantics owned by the identity store
	PasswordHash string   `json:"-"`                  // Hashed version of the user's password - never serialize
	Roles        []string `json:"roles,omitempty"`    // Granted role names, in identity-store order
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
