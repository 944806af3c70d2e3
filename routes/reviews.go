package routes

import (
	"errors"

	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// The client posts reviews nested under a "reviews" key; keep that shape.
type CreateReviewInput struct {
	Reviews ReviewBody `json:"reviews" validate:"required"`
}

type ReviewBody struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// CreateReview appends a review to a listing. Any authenticated user may
// review; there is no edit or delete.
func CreateReview(ctx iris.Context) {
	id := ctx.Params().Get("id")

	claims := utils.GetClaims(ctx)
	if claims == nil {
		utils.CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
		return
	}

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var listing models.Listing
	err := storage.DB.First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateNotFound(ctx, "Listing")
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	review := models.Review{
		ListingID: listing.ID,
		UserID:    claims.ID,
		Author:    claims.Username,
		Rating:    input.Reviews.Rating,
		Comment:   input.Reviews.Comment,
	}
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}
