package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpRouter "github.com/jhoicas/portal-rdp/internal/interfaces/http"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

func buildLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(logger.Wrap(zerolog.New(buf))))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestRequestLogger_RespetaRequestIDEntrante(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
	line := lastLine(t, &buf)
	assert.Equal(t, "abc-123", line["request_id"])
	assert.Equal(t, "/ping", line["path"])
	assert.EqualValues(t, 200, line["status"])
}

func TestRequestLogger_GeneraRequestIDSiFalta(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/no-existe", nil))
	require.NoError(t, err)

	id := resp.Header.Get(fiber.HeaderXRequestID)
	assert.Len(t, id, 36)
	line := lastLine(t, &buf)
	assert.Equal(t, id, line["request_id"])
	assert.EqualValues(t, 404, line["status"])
}
