package services

import (
	"errors"
	"fmt"

	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"gorm.io/gorm"
)

func GetSubscriptionOnUser(subscriber models.RareUser, target models.RareUser) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := database.C.Where("subscriber_id = ? AND target_id = ?", subscriber.ID, target.ID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get subscription: %v", err)
	}
	return &subscription, nil
}

func IsSubscribed(subscriber models.RareUser, target models.RareUser) bool {
	subscription, err := GetSubscriptionOnUser(subscriber, target)
	return err == nil && subscription != nil
}

// SubscribeToUser adds the pair to the relation. Subscribing twice is a
// no-op that hands back the existing row.
func SubscribeToUser(subscriber models.RareUser, target models.RareUser) (models.Subscription, error) {
	if existing, err := GetSubscriptionOnUser(subscriber, target); err != nil {
		return models.Subscription{}, err
	} else if existing != nil {
		return *existing, nil
	}

	subscription := models.Subscription{
		SubscriberID: subscriber.ID,
		TargetID:     target.ID,
	}

	err := database.C.Create(&subscription).Error
	return subscription, err
}

// UnsubscribeFromUser removes the pair from the relation. Removing an
// absent pair is a no-op.
func UnsubscribeFromUser(subscriber models.RareUser, target models.RareUser) error {
	return database.C.
		Where("subscriber_id = ? AND target_id = ?", subscriber.ID, target.ID).
		Delete(&models.Subscription{}).Error
}

func CountSubscribers(target models.RareUser) int64 {
	var count int64
	if err := database.C.Model(&models.Subscription{}).
		Where("target_id = ?", target.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func CountSubscribing(subscriber models.RareUser) int64 {
	var count int64
	if err := database.C.Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriber.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
