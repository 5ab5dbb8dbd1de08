package http

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/rarepublishers/rare/pkg/internal"
	"github.com/rarepublishers/rare/pkg/internal/http/api"
	"github.com/rarepublishers/rare/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "RarePublishers",
		AppName:               "Rare Publishers v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(authenticate)

	api.MapAPIs(app, "/api")

	return &App{app}
}

// authenticate resolves the bearer token into the account and its profile
// before any handler logic runs. Requests without a valid token simply pass
// through unauthenticated; the handlers decide what requires auth.
func authenticate(c *fiber.Ctx) error {
	token := c.Query("tk")
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if len(token) == 0 {
		return c.Next()
	}

	account, err := services.Authorize(token)
	if err != nil {
		return c.Next()
	}

	c.Locals("user", account)
	if profile, err := services.GetRareUserWithAccount(account.ID); err == nil {
		c.Locals("profile", profile)
	}

	return c.Next()
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}

// Test dispatches a request against the in-process router. Only used by
// tests.
func (v *App) Test(req *nethttp.Request, msTimeout ...int) (*nethttp.Response, error) {
	return v.app.Test(req, msTimeout...)
}
