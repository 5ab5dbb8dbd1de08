package database

import (
	"github.com/rarepublishers/rare/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.RareUser{},
	&models.Category{},
	&models.Tag{},
	&models.Post{},
	&models.Comment{},
	&models.Subscription{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.AuthTicket{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
