package models

import (
	"strings"
	"time"
)

// User matches the users table. Password always holds an argon2id hash once
// the record reaches a repository.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(120);not null;unique" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Username  string    `gorm:"type:varchar(80);not null;unique" json:"username"`
	FirstName string    `gorm:"type:varchar(80);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(80);not null" json:"last_name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

// NewUser returns an active user stamped with the current time.
func NewUser(email, username, passwordHash string) *User {
	u := &User{
		Email:    email,
		Username: username,
		Password: passwordHash,
		IsActive: true,
	}
	u.Prepare()
	return u
}

// Prepare trims and normalizes user input. It is idempotent, so it is safe to
// call on records loaded from the database.
func (u *User) Prepare() {
	u.Email = NormalizeEmail(u.Email)
	u.Username = strings.TrimSpace(u.Username)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
}

// NormalizeEmail is the stored form of an email address, used for lookups too.
// Applying it twice yields the same value.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type SerializedUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Serialize never exposes the password hash.
func (u *User) Serialize() SerializedUser {
	return SerializedUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: FormatTimestamp(u.CreatedAt),
	}
}

func SerializeUsers(users []User) []SerializedUser {
	out := make([]SerializedUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Serialize())
	}
	return out
}
