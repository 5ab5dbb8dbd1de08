package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rarepublishers/rare/pkg/internal/policy"
	"github.com/rarepublishers/rare/pkg/internal/services"
)

func listCategories(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	categories, err := services.ListCategory(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(categories)
}

func getCategory(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("categoryId", 0)

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(category)
}

func createCategory(c *fiber.Ctx) error {
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

	category, err := services.NewCategory(data.Label)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func editCategory(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	id, _ := c.ParamsInt("categoryId", 0)
	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Label string `json:"label" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditCategory(category, data.Label); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deleteCategory(c *fiber.Ctx) error {
	if _, ok := c.Locals("profile").(models.RareUser); !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("categoryId", 0)
	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
