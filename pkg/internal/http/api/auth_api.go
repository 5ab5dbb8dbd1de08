package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rarepublishers/rare/pkg/internal/http/exts"
	"github.com/rarepublishers/rare/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,alphanum,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.CreateAccount(data.Name, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	ticket, err := services.GrantTicket(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   ticket.Token,
		"account": account,
	})
}
