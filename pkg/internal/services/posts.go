package services

import (
	"strings"
	"time"

	"github.com/pemistahl/lingua-go"
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var languageDetector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Portuguese,
		lingua.Japanese,
		lingua.Chinese,
	).
	Build()

// DetectPostLanguage guesses the ISO 639-1 code of the post content.
func DetectPostLanguage(content string) string {
	if lang, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return "unknown"
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterPostUnapproved(tx *gorm.DB) *gorm.DB {
	return tx.Where("approved = ?", false)
}

func PreloadPostGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Category")
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadPostGeneral(tx).
		Limit(take).Offset(offset).
		Order("publication_date DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// NewPost persists a post for the given author. The category must be
// resolved by the caller beforehand so a missing category surfaces as a
// lookup failure, not a dangling foreign key.
func NewPost(author models.RareUser, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	if item.PublicationDate.IsZero() {
		item.PublicationDate = time.Now()
	}
	item.Language = DetectPostLanguage(item.Content)

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Uint("author", author.ID).Msg("New post has been created.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectPostLanguage(item.Content)

	err := database.C.Save(&item).Error

	return item, err
}

// DeletePost removes the post together with its comments. The FK cascade
// only fires on hard deletes, so dependents are swept explicitly.
func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// ApprovePost flips the moderation flag. Approving an already approved post
// is a no-op.
func ApprovePost(item models.Post) error {
	if item.Approved {
		return nil
	}

	return database.C.Model(&item).Update("approved", true).Error
}
