package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rarepublishers/rare/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func listRareUsers(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	users, err := services.ListRareUser(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if viewer, ok := c.Locals("profile").(models.RareUser); ok {
		users = lo.Map(users, func(item models.RareUser, index int) models.RareUser {
			item.Subscribed = services.IsSubscribed(viewer, item)
			return item
		})
	}

	return c.JSON(users)
}

func getRareUser(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("userId", 0)

	user, err := services.GetRareUser(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	user.TotalSubscribers = services.CountSubscribers(user)
	user.TotalSubscribing = services.CountSubscribing(user)
	if viewer, ok := c.Locals("profile").(models.RareUser); ok {
		user.Subscribed = services.IsSubscribed(viewer, user)
	}

	return c.JSON(user)
}

func getMyProfile(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	profile.TotalSubscribers = services.CountSubscribers(profile)
	profile.TotalSubscribing = services.CountSubscribing(profile)

	return c.JSON(fiber.Map{
		"rareuser": profile,
	})
}

func editMyProfile(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var data struct {
		Bio             string         `json:"bio" validate:"max=500"`
		ProfileImageURL string         `json:"profile_image_url" validate:"omitempty,url"`
		Links           map[string]any `json:"links"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	profile.Bio = data.Bio
	profile.ProfileImageURL = data.ProfileImageURL
	if data.Links != nil {
		profile.Links = datatypes.JSONMap(data.Links)
	}

	if _, err := services.EditRareUser(profile); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func subscribeToUser(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("userId", 0)
	target, err := services.GetRareUser(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	subscription, err := services.SubscribeToUser(profile, target)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(subscription)
}

func unsubscribeFromUser(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("userId", 0)
	target, err := services.GetRareUser(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnsubscribeFromUser(profile, target); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
