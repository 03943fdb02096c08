package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCaller(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetCallerID(c)
	assert.False(t, ok)

	userID := uuid.New()
	SetCaller(c, userID, []string{"user", "admin"})

	got, ok := GetCallerID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	roles, ok := GetCallerRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"user", "admin"}, roles)
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "abc"))
	ctx := WithLogger(WithRequestID(context.Background(), "abc"), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
}
