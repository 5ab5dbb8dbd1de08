package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/database"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/models"
	"github.com/rarepublishers/rare/pkg/internal/policy"
	"github.com/rarepublishers/rare/pkg/internal/services"
)

func listComments(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	tx := database.C
	if postID := c.QueryInt("postId", 0); postID > 0 {
		tx = services.FilterCommentWithPost(tx, uint(postID))
	}

	comments, err := services.ListComment(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(comments)
}

func getComment(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(comment)
}

func createComment(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}
	if d := policy.CanCreate(profile); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	var data struct {
		Content string `json:"content" validate:"required,max=250"`
		PostID  uint   `json:"post_id" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, err := services.GetPost(database.C, data.PostID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comment, err := services.NewComment(profile, post, data.Content)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func editComment(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("commentId", 0)
	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if d := policy.CanEditComment(profile, comment); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	var data struct {
		Content string `json:"content" validate:"required,max=250"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditComment(comment, data.Content); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func deleteComment(c *fiber.Ctx) error {
	profile, ok := c.Locals("profile").(models.RareUser)
	if !ok {
		return fiber.ErrUnauthorized
	}

	id, _ := c.ParamsInt("commentId", 0)
	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if d := policy.CanDeleteComment(profile, comment); !d.Allowed {
		return fiber.NewError(fiber.StatusForbidden, d.Reason)
	}

	if err := services.DeleteComment(comment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
