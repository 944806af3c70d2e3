package routes

import (
	"errors"
	"time"

	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/services"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	ListingID uint   `json:"listingId" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
	Guests    int    `json:"guests" validate:"required,gte=1"`
	// TotalPrice is what the client previewed. It is accepted for wire
	// compatibility and ignored; the server recomputes the total.
	TotalPrice float32 `json:"totalPrice"`
}

// parseBookingDate accepts the web client's YYYY-MM-DD date inputs as well as
// full RFC3339 timestamps.
func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func CreateBooking(ctx iris.Context) {
	claims := utils.GetClaims(ctx)
	if claims == nil {
		utils.CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
		return
	}

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, inErr := parseBookingDate(input.CheckIn)
	checkOut, outErr := parseBookingDate(input.CheckOut)
	if inErr != nil || outErr != nil {
		utils.CreateError(iris.StatusBadRequest, "checkIn and checkOut must be YYYY-MM-DD dates", ctx)
		return
	}

	var listing models.Listing
	err := storage.DB.First(&listing, input.ListingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.CreateNotFound(ctx, "Listing")
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Referential check: the token may outlive the account.
	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		utils.CreateNotFound(ctx, "User")
		return
	}

	totalPrice, priceErr := utils.ComputeTotalPrice(listing.Price, checkIn, checkOut, input.Guests)
	if priceErr != nil {
		utils.CreateError(iris.StatusBadRequest, priceErr.Error(), ctx)
		return
	}

	// No availability check: overlapping bookings on the same listing and
	// date range are allowed, matching the existing contract.
	booking := models.Booking{
		ListingID:  listing.ID,
		UserID:     user.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     input.Guests,
		TotalPrice: totalPrice,
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	booking.Listing = &listing

	// Fire-and-forget: the response never waits on delivery, and delivery
	// failure never fails the booking.
	services.DispatchBookingConfirmation(user.Email, &booking)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"message": "Booking successful!", "booking": booking})
}

func GetMyBookings(ctx iris.Context) {
	claims := utils.GetClaims(ctx)
	if claims == nil {
		utils.CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
		return
	}

	var bookings []models.Booking
	err := storage.DB.
		Preload("Listing").
		Where("user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// GetAllBookings returns every booking with the booking user resolved for
// display. Admin only; the role gate runs before this handler.
func GetAllBookings(ctx iris.Context) {
	var bookings []models.Booking
	err := storage.DB.
		Preload("Listing").
		Preload("User").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}
