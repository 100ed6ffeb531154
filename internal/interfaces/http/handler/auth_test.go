package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
)

func setupAuthTest() *gin.Engine {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-handler-tests",
		AccessTokenExpiration: 3600,
		Issuer:                "storefront-test",
	})
	service := identityapp.NewAuthService(config.AdminConfig{
		Username: "admin",
		Password: "letmein",
	}, jwtService, zap.NewNop())
	h := NewAuthHandler(service)

	router := gin.New()
	router.POST("/api/auth/login", h.Login)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a token for valid credentials", func(t *testing.T) {
		router := setupAuthTest()

		w := postJSON(router, "/api/auth/login", gin.H{
			"username": "admin",
			"password": "letmein",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Role  string `json:"role"`
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "admin", response.Data.Role)
		assert.NotEmpty(t, response.Data.Token)
	})

	t.Run("returns 401 for a wrong password", func(t *testing.T) {
		router := setupAuthTest()

		w := postJSON(router, "/api/auth/login", gin.H{
			"username": "admin",
			"password": "guess",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
		assert.NotContains(t, w.Body.String(), "token")
	})

	t.Run("returns 401 for an unknown username", func(t *testing.T) {
		router := setupAuthTest()

		w := postJSON(router, "/api/auth/login", gin.H{
			"username": "root",
			"password": "letmein",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 400 when fields are missing", func(t *testing.T) {
		router := setupAuthTest()

		w := postJSON(router, "/api/auth/login", gin.H{"username": "admin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
