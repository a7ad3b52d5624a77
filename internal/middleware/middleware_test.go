package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"go-order-tracker/internal/metrics"
	"go-order-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newAuthApp(signer *jwt.Signer) *fiber.App {
	app := fiber.New()
	app.Post("/orders", RequireAuth(signer), func(c *fiber.Ctx) error {
		return c.SendString(Actor(c))
	})
	return app
}

func body(t *testing.T, app *fiber.App, req string, header string) (int, string) {
	t.Helper()
	r := httptest.NewRequest("POST", req, nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	resp, err := app.Test(r)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestRequireAuth_Disabled(t *testing.T) {
	status, actor := body(t, newAuthApp(nil), "/orders", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "system", actor)
}

func TestRequireAuth(t *testing.T) {
	signer := jwt.NewSigner("secret", time.Hour)
	app := newAuthApp(signer)

	token, err := signer.GenerateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", 401},
		{"wrong scheme", "Basic abc", 401},
		{"garbage token", "Bearer not-a-jwt", 401},
		{"foreign secret", "Bearer " + mustToken(t, jwt.NewSigner("other", time.Hour)), 401},
		{"valid", "Bearer " + token, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, b := body(t, app, "/orders", tt.header)
			assert.Equal(t, tt.status, status)
			if tt.status == 200 {
				assert.Equal(t, "admin", b)
			}
		})
	}
}

func mustToken(t *testing.T, s *jwt.Signer) string {
	t.Helper()
	tok, err := s.GenerateToken("admin")
	require.NoError(t, err)
	return tok
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ping", func(c *fiber.Ctx) error {
		Logger(c).Info("inside handler")
		return c.SendString("pong")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	inside := logs.FilterMessage("inside handler").All()
	require.Len(t, inside, 1)
	assert.NotEmpty(t, inside[0].ContextMap()["request_id"])

	reqLines := logs.FilterMessage("request").All()
	require.Len(t, reqLines, 1)
	assert.Equal(t, int64(200), reqLines[0].ContextMap()["status"])

	_, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	warn := logs.FilterMessage("request").FilterField(zap.Int("status", 404)).All()
	require.Len(t, warn, 1)
	assert.Equal(t, zap.WarnLevel, warn[0].Level)
}

func TestRequestLogger_ReturnedError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	lines := logs.FilterMessage("request").All()
	require.Len(t, lines, 1)
	assert.Equal(t, zap.ErrorLevel, lines[0].Level)
	assert.Equal(t, int64(503), lines[0].ContextMap()["status"])
}

func TestLogger_OutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.NotNil(t, Logger(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}

func TestMetrics(t *testing.T) {
	metrics.Init("middleware_test")

	app := fiber.New()
	app.Use(Metrics())
	app.Get("/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(204) })

	for _, id := range []string{"a", "b"} {
		_, err := app.Test(httptest.NewRequest("GET", "/orders/"+id, nil))
		require.NoError(t, err)
	}

	got := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/orders/:id", "204"))
	assert.Equal(t, float64(2), got)
}
