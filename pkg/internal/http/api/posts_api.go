package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rarepublishers/rare/pkg/internal/policy"
	"github.com/rarepublishers/rare/pkg/internal/services"
)

func listPosts(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := database.C
	if authorID := c.QueryInt("authorId", 0); authorID > 0 {
		tx = services.FilterPostWithAuthor(tx, uint(authorID))
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func listUnapprovedPosts(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanManagePostApproval(user); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	tx := services.FilterPostUnapproved(database.C)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	var data struct {
		Title           string     `json:"title" validate:"required,max=100"`
		Content         string     `json:"content" validate:"required"`
		ImageURL        string     `json:"image_url" validate:"omitempty,url"`
		CategoryID      uint       `json:"category_id" validate:"required"`
		PublicationDate *time.Time `json:"publication_date"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(data.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item := models.Post{
		Title:      data.Title,
		Content:    data.Content,
		ImageURL:   data.ImageURL,
		CategoryID: category.ID,
	}
	if data.PublicationDate != nil {
		item.PublicationDate = *data.PublicationDate
	}

	item, err = services.NewPost(profile, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Title           string     `json:"title" validate:"required,max=100"`
		Content         string     `json:"content" validate:"required"`
		ImageURL        string     `json:"image_url" validate:"omitempty,url"`
		CategoryID      uint       `json:"category_id" validate:"required"`
		PublicationDate *time.Time `json:"publication_date"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(data.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item.Title = data.Title
	item.Content = data.Content
	item.ImageURL = data.ImageURL
	item.CategoryID = category.ID
	item.Category = category
	if data.PublicationDate != nil {
		item.PublicationDate = *data.PublicationDate
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func approvePost(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanManagePostApproval(user); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.ApprovePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deletePost(c *fiber.Ctx) error {
	if _, ok := c.Locals("profile").(models.RareUser); !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
