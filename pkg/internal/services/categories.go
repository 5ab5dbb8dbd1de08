package services

import (
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"gorm.io/gorm"
)

func ListCategory(take int, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where(models.Category{
		BaseModel: models.BaseModel{ID: id},
	}).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(label string) (models.Category, error) {
	category := models.Category{
		Label: label,
	}

	err := database.C.Save(&category).Error

	return category, err
}

func EditCategory(category models.Category, label string) (models.Category, error) {
	category.Label = label

	err := database.C.Save(&category).Error

	return category, err
}

// DeleteCategory removes the category with every post filed under it and
// their comments, matching the cascade the hard-delete FK would do.
func DeleteCategory(category models.Category) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", category.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&category).Error
	})
}

func ListTag(take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := database.C.Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}

func GetTagWithID(id uint) (models.Tag, error) {
	var tag models.Tag
	if err := database.C.Where(models.Tag{
		BaseModel: models.BaseModel{ID: id},
	}).First(&tag).Error; err != nil {
		return tag, err
	}
	return tag, nil
}

func NewTag(label string) (models.Tag, error) {
	tag := models.Tag{
		Label: label,
	}

	err := database.C.Save(&tag).Error

	return tag, err
}

func EditTag(tag models.Tag, label string) (models.Tag, error) {
	tag.Label = label

	err := database.C.Save(&tag).Error

	return tag, err
}

func DeleteTag(tag models.Tag) error {
	return database.C.Delete(&tag).Error
}
