package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/pkg/jwthelper"
)

const (
	ContextKeyClaims = "claims"
	ContextKeyUserID = "userID"
)

const (
	msgNoToken      = "No token provided."
	msgInvalidToken = "Failed to authenticate token."
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{key: []byte(key)}
}

// VerifyJWT rejects requests without a valid bearer token and stores the acting user's id.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx.GetHeader("Authorization"))
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthenticated(msgNoToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.key, tokenString)
		if err != nil || claims.ID == 0 {
			response.RenderErr(ctx, response.ErrUnauthenticated(msgInvalidToken))
			return
		}

		ctx.Set(ContextKeyClaims, claims)
		ctx.Set(ContextKeyUserID, claims.ID)
		ctx.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

// UserID returns the id VerifyJWT stored, or 0 on unauthenticated routes.
func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(ContextKeyUserID)
}
