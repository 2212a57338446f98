package middleware

import (
	"net/http"
	"strings"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const UserKey = "current_user"

// JWTAuth validates the Bearer token and reloads the user from the database on
// every request. A token for a deleted account is rejected, and role changes
// take effect immediately instead of at token expiry.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("autenticação necessária"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token inválido ou expirado"))
			return
		}

		rawID, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token inválido ou expirado"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("usuário não encontrado"))
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated user holds none of the
// allowed roles.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user, ok := c.MustGet(UserKey).(*model.User)
		if !ok || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("permissão insuficiente"))
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user set by JWTAuth.
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(UserKey).(*model.User)
	return user
}
