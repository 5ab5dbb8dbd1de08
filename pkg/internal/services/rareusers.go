package services

import (
	"fmt"

	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
)

func ListRareUser(take int, offset int) ([]models.RareUser, error) {
	if take > 100 {
		take = 100
	}

	var users []models.RareUser
	err := database.C.Limit(take).Offset(offset).Find(&users).Error

	return users, err
}

func GetRareUser(id uint) (models.RareUser, error) {
	var user models.RareUser
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}

func GetRareUserWithAccount(accountID uint) (models.RareUser, error) {
	var user models.RareUser
	if err := database.C.Where("account_id = ?", accountID).First(&user).Error; err != nil {
		return user, fmt.Errorf("unable to get profile by account: %v", err)
	}
	return user, nil
}

func EditRareUser(user models.RareUser) (models.RareUser, error) {
	err := database.C.Save(&user).Error
	return user, err
}
