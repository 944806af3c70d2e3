package utils

import (
	"github.com/MDAMANAHMAD/Roam-Heaven/models"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// GetClaims returns the verified token claims, or nil when the verifier did
// not run or rejected the token.
func GetClaims(ctx iris.Context) *AccessToken {
	tok := jwt.Get(ctx)
	if tok == nil {
		return nil
	}
	claims, ok := tok.(*AccessToken)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromTokenMiddleware extracts the user ID from the verified token and
// stores it in the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := GetClaims(ctx)
	if claims == nil || !models.IsValidRole(claims.Role) {
		CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// AdminOnlyMiddleware ensures the requester carries the admin role. A valid
// token with any other role is a 403, not a 401.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := GetClaims(ctx)
	if claims == nil || !models.IsValidRole(claims.Role) {
		CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
		return
	}
	if claims.Role != models.RoleAdmin {
		CreateError(iris.StatusForbidden, "Only admins can perform this action", ctx)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}
