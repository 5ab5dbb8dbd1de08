package models

import "time"

type Account struct {
	BaseModel

	Name         string `json:"name" gorm:"uniqueIndex" validate:"required,alphanum"`
	Email        string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`

	Profile *RareUser `json:"profile,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// AuthTicket is a bearer credential issued by login. A ticket past its
// ExpiredAt no longer authenticates and will be swept by the cleanup task.
type AuthTicket struct {
	BaseModel

	Token     string    `json:"token" gorm:"uniqueIndex"`
	AccountID uint      `json:"account_id"`
	Account   Account   `json:"account"`
	ExpiredAt time.Time `json:"expired_at"`
}
