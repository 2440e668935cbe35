package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	log_internal "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "super-secret-jwt-token"

func newApp(m *middleware.Middleware) *fiber.App {
	app := fiber.New()
	app.Use(m.Tracing)
	app.Get("/refunds", m.ValidateToken, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("email_user").(string))
	})
	app.Post("/refunds", m.ValidateToken, m.RequireRole(m.RefundRoles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/cron", m.ValidateCronToken, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, expires time.Time) string {
	t.Helper()
	return signRole(t, method, key, expires, "authenticated", "")
}

func signRole(t *testing.T, method jwt.SigningMethod, key interface{}, expires time.Time, role, appRole string) string {
	t.Helper()
	claims := middleware.Claims{
		Email:       "admin@example.com",
		Role:        role,
		AppMetadata: middleware.AppMetadata{Role: appRole},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	app := newApp(&middleware.Middleware{Log: log_internal.Setup(), JWTSecret: secret})

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), time.Now().Add(time.Hour)), fiber.StatusOK},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), time.Now().Add(-time.Hour)), fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour)), fiber.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), time.Now().Add(time.Hour)), fiber.StatusUnauthorized},
		{"missing", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/refunds", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestValidateCronToken(t *testing.T) {
	t.Run("configured secret", func(t *testing.T) {
		app := newApp(&middleware.Middleware{Log: log_internal.Setup(), CronSecret: "cron-secret"})

		for header, status := range map[string]int{
			"Bearer cron-secret": fiber.StatusOK,
			"Bearer cron":        fiber.StatusUnauthorized,
			"cron-secret":        fiber.StatusUnauthorized,
			"":                   fiber.StatusUnauthorized,
		} {
			req := httptest.NewRequest("GET", "/cron", nil)
			req.Header.Set("Authorization", header)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, status, resp.StatusCode, header)
		}
	})

	t.Run("empty secret rejects everything", func(t *testing.T) {
		app := newApp(&middleware.Middleware{Log: log_internal.Setup()})

		req := httptest.NewRequest("GET", "/cron", nil)
		req.Header.Set("Authorization", "Bearer ")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireRole(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	testCases := []struct {
		name    string
		roles   []string
		role    string
		appRole string
		status  int
	}{
		{"plain user", []string{"service_role", "admin"}, "authenticated", "", fiber.StatusForbidden},
		{"service role", []string{"service_role", "admin"}, "service_role", "", fiber.StatusOK},
		{"admin from app metadata", []string{"service_role", "admin"}, "authenticated", "admin", fiber.StatusOK},
		{"no roles configured", nil, "service_role", "", fiber.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp(&middleware.Middleware{Log: log_internal.Setup(), JWTSecret: secret, RefundRoles: tc.roles})

			req := httptest.NewRequest("POST", "/refunds", nil)
			req.Header.Set("Authorization", "Bearer "+signRole(t, jwt.SigningMethodHS256, []byte(secret), expires, tc.role, tc.appRole))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
