package utils

import (
	"time"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken is the claims payload embedded in every issued token.
// Tokens are stateless: there is no server-side session table and no
// revocation. Logout is a client-side token discard.
type AccessToken struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const accessTokenLifetime = 7 * 24 * time.Hour

// CreateToken signs a 7-day access token for the given user.
func CreateToken(user *models.User) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, []byte(config.C.AccessTokenSecret), accessTokenLifetime)

	claims := AccessToken{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}

	return string(token), nil
}
