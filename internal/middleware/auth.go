package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/security"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "currentUser"

// JWTProtected rejects requests without a valid bearer token and stores the
// resolved user for CurrentUser.
func JWTProtected(cfg *config.Config, auth *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		Claims:     &security.Claims{},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c)
			}
			user, err := auth.Identify(c.UserContext(), token.Raw)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					return unauthorized(c)
				}
				return err
			}
			c.Locals(currentUserKey, user)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

// CurrentUser returns the user resolved by JWTProtected.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	return user, ok && user != nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Kind:    dto.KindUnauthorized,
		Message: "Unauthorized: invalid or expired token",
	})
}
