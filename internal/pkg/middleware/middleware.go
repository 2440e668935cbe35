package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type Middleware struct {
	Log         *otelzap.Logger
	JWTSecret   string
	CronSecret  string
	RefundRoles []string
}

// Claims are the fields read from a Supabase access token.
type Claims struct {
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	AppMetadata AppMetadata `json:"app_metadata"`
	jwt.RegisteredClaims
}

type AppMetadata struct {
	Role string `json:"role"`
}

// EffectiveRole prefers the application role an admin assigned over the
// Postgres role Supabase puts on every token.
func (c *Claims) EffectiveRole() string {
	if c.AppMetadata.Role != "" {
		return c.AppMetadata.Role
	}
	return c.Role
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token, ok := bearerToken(ctx.Get("Authorization"))
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", claims.Subject)
	ctx.Locals("email_user", claims.Email)
	ctx.Locals("role", claims.EffectiveRole())

	return ctx.Next()
}

// RequireRole must run after ValidateToken. With no roles configured every
// request is refused.
func (m *Middleware) RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role != "" && role == allowed {
				return ctx.Next()
			}
		}

		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("role %q not allowed on %s", role, ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.Forbidden("insufficient role"))
	}
}

// ValidateCronToken guards scheduler endpoints with the shared CRON_SECRET.
func (m *Middleware) ValidateCronToken(ctx *fiber.Ctx) error {
	token, ok := bearerToken(ctx.Get("Authorization"))
	if !ok || m.CronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.CronSecret)) != 1 {
		m.Log.Ctx(ctx.UserContext()).Warn("rejected cron request")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("unauthorized"))
	}

	return ctx.Next()
}

// Tracing starts an APM transaction per request and exposes it through the
// user context so usecases can open spans.
func (m *Middleware) Tracing(ctx *fiber.Ctx) error {
	tx := apm.DefaultTracer.StartTransaction(fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), "request")
	defer tx.End()

	ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

	err := ctx.Next()
	tx.Result = fmt.Sprintf("HTTP %dxx", ctx.Response().StatusCode()/100)

	return err
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
