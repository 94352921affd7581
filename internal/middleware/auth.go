package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"youthhub/internal/db"
	"youthhub/internal/models"
)

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	store *session.Store
	db    *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(store *session.Store, db *db.DB) *AuthMiddleware {
	return &AuthMiddleware{store: store, db: db}
}

// RequireAuth ensures the user is authenticated. API requests get a 401,
// browser requests are redirected to /login.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return m.deny(c)
	}

	userSub := sess.Get("user_sub")
	if userSub == nil {
		return m.deny(c)
	}

	user, err := m.db.GetUserBySub(c.Context(), userSub.(string))
	if err != nil {
		sess.Destroy()
		return m.deny(c)
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Next()
	}

	userSub := sess.Get("user_sub")
	if userSub == nil {
		return c.Next()
	}

	user, err := m.db.GetUserBySub(c.Context(), userSub.(string))
	if err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}

// RequireSupervisor ensures the authenticated user holds the supervisor or
// admin role. Must run after RequireAuth.
func (m *AuthMiddleware) RequireSupervisor(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return m.deny(c)
	}
	if !user.IsSupervisor() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Supervisor access required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures the authenticated user holds the admin role. Must run
// after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return m.deny(c)
	}
	if !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Admin access required",
		})
	}
	return c.Next()
}

func (m *AuthMiddleware) deny(c fiber.Ctx) error {
	if isAPIRequest(c.Path()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Authentication required",
		})
	}
	return c.Redirect().To("/login")
}

// isAPIRequest reports whether a path belongs to the JSON API.
func isAPIRequest(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
