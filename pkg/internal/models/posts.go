package models

import "time"

type Post struct {
	BaseModel

	Title           string    `json:"title" validate:"required,max=100"`
	Content         string    `json:"content" validate:"required"`
	ImageURL        string    `json:"image_url" validate:"omitempty,url"`
	Language        string    `json:"language"`
	PublicationDate time.Time `json:"publication_date"`

	// False until an administrator approves the post.
	Approved bool `json:"approved"`

	Comments []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category"`

	AuthorID uint     `json:"author_id"`
	Author   RareUser `json:"author"`
}
