package routes

import (
	"errors"
	"strings"

	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userPayload is the public identity shape returned with every token.
type userPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func Signup(ctx iris.Context) {
	var input SignupInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	email := strings.ToLower(input.Email)

	var existing models.User
	err := storage.DB.Where("email = ? OR username = ?", email, input.Username).First(&existing).Error
	if err == nil {
		utils.CreateError(iris.StatusBadRequest, "A user with that username or email already exists", ctx)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateInternalServerError(ctx)
		return
	}

	hashedPassword, hashErr := utils.HashAndSaltPassword(input.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username: input.Username,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}
	if err := storage.DB.Create(&newUser).Error; err != nil {
		// Unique index race: two signups with the same identity.
		utils.CreateError(iris.StatusBadRequest, "A user with that username or email already exists", ctx)
		return
	}

	respondWithToken(ctx, &newUser, iris.StatusCreated)
}

func Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	err := storage.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateError(iris.StatusBadRequest, "User not found with this email", ctx)
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !utils.PasswordsMatch(user.Password, input.Password) {
		utils.CreateError(iris.StatusBadRequest, "Invalid password", ctx)
		return
	}

	respondWithToken(ctx, &user, iris.StatusOK)
}

func respondWithToken(ctx iris.Context, user *models.User, status int) {
	token, err := utils.CreateToken(user)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(status)
	ctx.JSON(iris.Map{
		"token": token,
		"user": userPayload{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}
