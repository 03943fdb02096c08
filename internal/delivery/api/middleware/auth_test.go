package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").
					Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc})

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen uuid.UUID
			err := auth.Authenticate(func(c echo.Context) error {
				seen, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				assert.Equal(t, userID, seen)
				assert.False(t, IsAdmin(c))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockService.NewMockTokenService(t)})
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(roles []string, withCaller bool) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), rec)
		if withCaller {
			deliverycontext.SetCaller(c, uuid.New(), roles)
		}
		require.NoError(t, auth.RequireRole(entity.RoleAdmin)(ok)(c))

		return rec
	}

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, run([]string{"user", "admin"}, true).Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		rec := run([]string{"user"}, true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("no caller is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, run(nil, false).Code)
	})
}
