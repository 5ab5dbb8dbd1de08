package models

type Comment struct {
	BaseModel

	Content string `json:"content" validate:"required,max=250"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post"`

	AuthorID uint     `json:"author_id"`
	Author   RareUser `json:"author"`
}
