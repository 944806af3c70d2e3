package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

var bgContext = context.Background()

const (
	listingsCacheKey = "listings:all"
	listingsCacheTTL = 60 * time.Second
)

type ListingInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	URL         string  `json:"url"`
	Image       string  `json:"image"`
	Price       float32 `json:"price" validate:"required,gt=0"`
	Location    string  `json:"location"`
	Country     string  `json:"country"`
}

// imageURL resolves the listing image: a data-URI is pushed to Cloudinary,
// anything else is taken as an already-hosted URL.
func (in *ListingInput) imageURL() string {
	src := in.URL
	if src == "" {
		src = in.Image
	}
	if strings.HasPrefix(src, "data:") {
		publicID := fmt.Sprintf("listing-%d", time.Now().UnixNano())
		if hosted := storage.UploadBase64Image(src, publicID); hosted != "" {
			return hosted
		}
		return ""
	}
	return src
}

func GetListings(ctx iris.Context) {
	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(bgContext, listingsCacheKey).Result(); err == nil && cached != "" {
			ctx.ContentType("application/json")
			ctx.WriteString(cached)
			return
		}
	}

	var listings []models.Listing
	if err := storage.DB.Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if storage.Redis != nil {
		if payload, err := json.Marshal(listings); err == nil {
			storage.Redis.Set(bgContext, listingsCacheKey, payload, listingsCacheTTL)
		}
	}

	ctx.JSON(listings)
}

func GetListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var listing models.Listing
	err := storage.DB.Preload("Reviews").First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateNotFound(ctx, "Listing")
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listing)
}

func CreateListing(ctx iris.Context) {
	var input ListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	listing := models.Listing{
		Title:       input.Title,
		Description: input.Description,
		Image:       models.ListingImage{URL: input.imageURL()},
		Price:       input.Price,
		Location:    input.Location,
		Country:     input.Country,
	}
	if err := storage.DB.Create(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	invalidateListingsCache()
	utils.Audit(ctx, "create", "listing", listing.ID, nil, listing)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(listing)
}

func UpdateListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input ListingInput
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

	before := listing

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Image = models.ListingImage{URL: input.imageURL()}
	listing.Price = input.Price
	listing.Location = input.Location
	listing.Country = input.Country

	if err := storage.DB.Save(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	invalidateListingsCache()
	utils.Audit(ctx, "update", "listing", listing.ID, before, listing)

	ctx.JSON(listing)
}

// DeleteListing removes a listing together with its reviews and bookings, so
// no booking referencing a deleted listing remains resolvable.
func DeleteListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

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

	txErr := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
	if txErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	invalidateListingsCache()
	utils.Audit(ctx, "delete", "listing", listing.ID, listing, nil)

	ctx.JSON(iris.Map{"message": "Listing deleted successfully"})
}

func invalidateListingsCache() {
	if storage.Redis != nil {
		storage.Redis.Del(bgContext, listingsCacheKey)
	}
}
