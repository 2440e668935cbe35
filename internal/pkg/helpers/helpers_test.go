package helpers_test

import (
	"strings"
	"testing"

	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestGenerateTicketCode(t *testing.T) {
	t.Run("uses slug of event title", func(t *testing.T) {
		code := helpers.GenerateTicketCode("Summer Jam")
		assert.True(t, strings.HasPrefix(code, "SUMMER-JAM-"), code)
		assert.Len(t, strings.TrimPrefix(code, "SUMMER-JAM-"), 8)
	})

	t.Run("truncates long titles", func(t *testing.T) {
		code := helpers.GenerateTicketCode("The Very Long Annual Conference Of Things")
		prefix := code[:strings.LastIndex(code, "-")]
		assert.LessOrEqual(t, len(prefix), 12)
		assert.False(t, strings.HasSuffix(prefix, "-"))
	})

	t.Run("falls back when title is empty", func(t *testing.T) {
		code := helpers.GenerateTicketCode("")
		assert.True(t, strings.HasPrefix(code, "TICKET-"), code)
	})
}

func TestGenerateFreeReference(t *testing.T) {
	a := helpers.GenerateFreeReference()
	b := helpers.GenerateFreeReference()
	assert.True(t, strings.HasPrefix(a, "FREE-"))
	assert.NotEqual(t, a, b)
}

func TestRespError(t *testing.T) {
	app := fiber.New()
	logger := log_internal.Setup()

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   string
	}{
		{"validation", errors.ErrAlreadyRefunded, fiber.StatusBadRequest, string(errors.KindValidation)},
		{"not found", errors.ErrTicketNotFound, fiber.StatusNotFound, string(errors.KindNotFound)},
		{"provider", errors.ExternalProviderError("Transaction reference not found"), fiber.StatusInternalServerError, string(errors.KindExternalProvider)},
		{"unknown", assert.AnError, fiber.StatusInternalServerError, string(errors.KindInternal)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
			defer app.ReleaseCtx(ctx)

			require.NoError(t, helpers.RespError(ctx, logger, tc.err))
			assert.Equal(t, tc.expectedStatus, ctx.Response().StatusCode())

			var body helpers.Response
			require.NoError(t, json.Unmarshal(ctx.Response().Body(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.expectedKind, body.Error)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}
