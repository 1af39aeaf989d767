package middleware

import (
	"errors"
	"strings"
	"time"

	"repair_shop/config"
	"repair_shop/constants"
	"repair_shop/database"
	"repair_shop/helper"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// protected verifies the bearer token against the route's required role and
// stashes the subject id under localsKey. Missing or bad tokens are 401,
// a valid token with the wrong role is 403.
func protected(role string, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		subjectId, err := helper.VerifyToken(token, role)
		if err != nil {
			switch {
			case errors.Is(err, helper.ErrRoleMismatch):
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.WRONG_ROLE, err)
			case errors.Is(err, helper.ErrTokenExpired):
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.EXPIRED_TOKEN, err)
			default:
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
			}
		}

		c.Locals(localsKey, subjectId)
		return c.Next()
	}
}

func CustomerRequired() fiber.Handler {
	return protected(constants.ROLE_CUSTOMER, "customerId")
}

func MechanicRequired() fiber.Handler {
	return protected(constants.ROLE_MECHANIC, "mechanicId")
}

func sharedStorage() fiber.Storage {
	if s := database.NewRedisStorage(); s != nil {
		return s
	}
	return nil
}

// RateLimiter enforces the per-IP request quota. Limits come from config,
// default 100 requests per hour.
func RateLimiter() fiber.Handler {
	max := config.ConfigInt("RATE_LIMIT_MAX", 100)
	window := config.ConfigInt("RATE_LIMIT_WINDOW_SECONDS", 3600)

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Duration(window) * time.Second,
		Storage:    sharedStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.RATE_LIMIT_EXCEEDED, nil)
		},
	})
}

// CacheTTL caches GET responses for the configured staleness window.
// Entries are not invalidated on writes; readers may see data up to the
// TTL old after a mutation.
func CacheTTL() fiber.Handler {
	ttl := config.ConfigInt("CACHE_TTL_SECONDS", 60)

	return cache.New(cache.Config{
		Expiration: time.Duration(ttl) * time.Second,
		Storage:    sharedStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Path()
		},
	})
}
