package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func signedToken(t *testing.T, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "6f1d2c3b-0000-0000-0000-000000000001",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	assert.NoError(t, err)
	return token
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid HMAC token passes",
			authHeader: "Bearer " + signedToken(t, jwt.SigningMethodHS256, []byte("middleware-test-secret")),
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "missing header rejected",
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong secret rejected",
			authHeader: "Bearer " + signedToken(t, jwt.SigningMethodHS256, []byte("some-other-secret")),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "unsigned token rejected regardless of claims",
			authHeader: "Bearer " + signedToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType),
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	app := newProtectedApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
