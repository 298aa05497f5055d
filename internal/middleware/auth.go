package middleware

import (
	"strings"

	"mediamate-backend/internal/models"
	"mediamate-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys double as request-local keys.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalUserType = "user_type"
)

// LoadSession resolves the caller's session into request locals without
// enforcing authentication. Handlers serving both guests and members read
// the locals through OptionalUserID.
func LoadSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loadSessionLocals(c, store)
		return c.Next()
	}
}

// RequireAuth rejects requests without a valid session.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !loadSessionLocals(c, store) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin additionally requires the Admin user type.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !loadSessionLocals(c, store) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		userType, _ := c.Locals(LocalUserType).(string)
		if !strings.EqualFold(userType, models.UserTypeAdmin) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

func loadSessionLocals(c *fiber.Ctx, store *session.Store) bool {
	sess, err := store.Get(c)
	if err != nil {
		return false
	}

	userID, ok := sess.Get(LocalUserID).(uint)
	if !ok || userID == 0 {
		return false
	}

	c.Locals(LocalUserID, userID)
	if username, ok := sess.Get(LocalUsername).(string); ok {
		c.Locals(LocalUsername, username)
	}
	if userType, ok := sess.Get(LocalUserType).(string); ok {
		c.Locals(LocalUserType, userType)
	}
	return true
}

// CurrentUserID returns the authenticated caller's id, when present.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(LocalUserID).(uint)
	return userID, ok && userID != 0
}

// OptionalUserID adapts CurrentUserID for services that take a nilable id.
func OptionalUserID(c *fiber.Ctx) *uint {
	if userID, ok := CurrentUserID(c); ok {
		return &userID
	}
	return nil
}
