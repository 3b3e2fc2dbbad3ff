package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/evote-api/internal/pkg/jwthelper"
)

const testKey = "test-signing-key"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", NewAuthenticator(testKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"id": UserID(ctx)})
	})

	return r
}

func TestVerifyJWT(t *testing.T) {
	valid, err := jwthelper.GenerateToken([]byte(testKey), time.Hour, 7, "ada@example.com", "Ada")
	require.NoError(t, err)
	foreign, err := jwthelper.GenerateToken([]byte("other-key"), time.Hour, 7, "ada@example.com", "Ada")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "missing", header: "", code: http.StatusUnauthorized, body: msgNoToken},
		{name: "not bearer", header: "Basic abc", code: http.StatusUnauthorized, body: msgNoToken},
		{name: "foreign key", header: "Bearer " + foreign, code: http.StatusUnauthorized, body: msgInvalidToken},
		{name: "garbage", header: "Bearer abc.def.ghi", code: http.StatusUnauthorized, body: msgInvalidToken},
		{name: "valid", header: "Bearer " + valid, code: http.StatusOK, body: `{"id":7}`},
		{name: "lowercase scheme", header: "bearer " + valid, code: http.StatusOK, body: `{"id":7}`},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
