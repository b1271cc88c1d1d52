// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocCashierID = "cashier_id"
)

func GetUserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing or invalid user id in token")
	}
	return id, nil
}

func GetRoleFromContext(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// GetCashierIDFromContext returns nil for admins (no cashier profile).
func GetCashierIDFromContext(c *fiber.Ctx) *uuid.UUID {
	s, _ := c.Locals(LocCashierID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}
