package models

import "gorm.io/datatypes"

// RareUser is the publishing profile wrapping an authentication account.
// One profile per account.
type RareUser struct {
	BaseModel

	AccountID       uint              `json:"account_id" gorm:"uniqueIndex"`
	Bio             string            `json:"bio" validate:"max=500"`
	Active          bool              `json:"active"`
	ProfileImageURL string            `json:"profile_image_url" validate:"omitempty,url"`
	Links           datatypes.JSONMap `json:"links,omitempty"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	// Filled per-request for the viewing user, never persisted.
	Subscribed       bool  `json:"subscribed" gorm:"-"`
	TotalSubscribers int64 `json:"total_subscribers" gorm:"-"`
	TotalSubscribing int64 `json:"total_subscribing" gorm:"-"`
}
