package services

import (
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"gorm.io/gorm"
)

func FilterCommentWithPost(tx *gorm.DB, postID uint) *gorm.DB {
	return tx.Where("post_id = ?", postID)
}

func ListComment(tx *gorm.DB, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var comments []models.Comment
	if err := tx.
		Preload("Author").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func GetComment(id uint) (models.Comment, error) {
	var comment models.Comment
	if err := database.C.
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return comment, err
	}

	return comment, nil
}

func NewComment(author models.RareUser, post models.Post, content string) (models.Comment, error) {
	comment := models.Comment{
		Content:  content,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	err := database.C.Save(&comment).Error

	return comment, err
}

func EditComment(comment models.Comment, content string) (models.Comment, error) {
	comment.Content = content

	err := database.C.Save(&comment).Error

	return comment, err
}

func DeleteComment(comment models.Comment) error {
	return database.C.Delete(&comment).Error
}
