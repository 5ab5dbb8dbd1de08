package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rarepublishers/rare/pkg/internal/policy"
	"github.com/rarepublishers/rare/pkg/internal/services"
)

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	tags, err := services.ListTag(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(tags)
}

func getTag(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("tagId", 0)

	tag, err := services.GetTagWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(tag)
}

func createTag(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	var data struct {
		Label string `json:"label" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	tag, err := services.NewTag(data.Label)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

func editTag(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	id, _ := c.ParamsInt("tagId", 0)
	tag, err := services.GetTagWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Label string `json:"label" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditTag(tag, data.Label); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deleteTag(c *fiber.Ctx) error {
	if _, ok := c.Locals("profile").(models.RareUser); !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("tagId", 0)
	tag, err := services.GetTagWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteTag(tag); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
