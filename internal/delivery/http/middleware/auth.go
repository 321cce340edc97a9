package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
)

// Ключи контекста запроса для данных аутентифицированного оператора
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// Auth проверяет Bearer-токен и кладёт данные оператора в контекст запроса
func Auth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := authUC.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalUsername, claims.Username)

		return c.Next()
	}
}

// ActorFromCtx восстанавливает оператора из контекста запроса
func ActorFromCtx(c *fiber.Ctx) usecase.Actor {
	actor := usecase.Actor{}
	if v, ok := c.Locals(LocalUserID).(string); ok {
		actor.UserID = v
	}
	if v, ok := c.Locals(LocalUsername).(string); ok {
		actor.UserName = v
	}
	return actor
}
