package models

type Category struct {
	BaseModel

	// The partial index keeps labels unique among live rows only, so a
	// deleted category does not reserve its label forever.
	Label string `json:"label" gorm:"uniqueIndex:idx_category_label,where:deleted_at IS NULL" validate:"required"`
	Posts []Post `json:"posts,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Tag struct {
	BaseModel

	Label string `json:"label" gorm:"uniqueIndex:idx_tag_label,where:deleted_at IS NULL" validate:"required"`
}
