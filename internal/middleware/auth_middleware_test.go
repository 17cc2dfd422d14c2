package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carpool/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func newAuthTestRouter(secret string, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthRequired(secret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID.(primitive.ObjectID).Hex()})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	router := newAuthTestRouter(testSecret)

	userID := primitive.NewObjectID()
	pair, err := utils.GenerateTokenPair(userID, "driver", "d@example.com", testSecret)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(router, "Bearer "+pair.AccessToken)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		if w := doRequest(router, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		if w := doRequest(router, "Token abc"); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other, _ := utils.GenerateTokenPair(userID, "driver", "d@example.com", "other-secret")
		if w := doRequest(router, "Bearer "+other.AccessToken); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRoleRequired(t *testing.T) {
	router := newAuthTestRouter(testSecret, DriverRequired())

	driverPair, _ := utils.GenerateTokenPair(primitive.NewObjectID(), "driver", "d@example.com", testSecret)
	passengerPair, _ := utils.GenerateTokenPair(primitive.NewObjectID(), "passenger", "p@example.com", testSecret)
	adminPair, _ := utils.GenerateTokenPair(primitive.NewObjectID(), "admin", "a@example.com", testSecret)

	if w := doRequest(router, "Bearer "+driverPair.AccessToken); w.Code != http.StatusOK {
		t.Errorf("driver status = %d, want 200", w.Code)
	}
	if w := doRequest(router, "Bearer "+passengerPair.AccessToken); w.Code != http.StatusForbidden {
		t.Errorf("passenger status = %d, want 403", w.Code)
	}
	if w := doRequest(router, "Bearer "+adminPair.AccessToken); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200 (admin passes every gate)", w.Code)
	}
}
