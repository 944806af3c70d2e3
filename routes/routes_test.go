package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"
	"github.com/MDAMANAHMAD/Roam-Heaven/services"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest points storage at an in-memory sqlite database and silences the
// email transport.
func setupTest(t *testing.T) {
	t.Helper()

	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	config.Load()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	storage.PerformMigrations(db)
	storage.DB = db
	storage.Redis = nil

	services.Active = services.LogNotifier{}
	t.Cleanup(func() { services.Active = nil })
}

// buildTestApp assembles the API surface the same way main does, minus CORS
// and compression.
func buildTestApp(t *testing.T) *iris.Application {
	t.Helper()

	app := iris.New()
	app.Validator = validator.New()

	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"error": "API endpoint not found"})
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(config.C.AccessTokenSecret))
	accessTokenVerifier.ErrorHandler = func(ctx iris.Context, err error) {
		utils.CreateError(iris.StatusUnauthorized, "Access denied. Login required.", ctx)
	}
	verifyToken := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	api := app.Party("/api")
	{
		auth := api.Party("/auth")
		auth.Post("/signup", Signup)
		auth.Post("/login", Login)

		listings := api.Party("/listings")
		listings.Get("/", GetListings)
		listings.Get("/{id:uint}", GetListing)
		listings.Post("/", verifyToken, utils.AdminOnlyMiddleware, CreateListing)
		listings.Put("/{id:uint}", verifyToken, utils.AdminOnlyMiddleware, UpdateListing)
		listings.Delete("/{id:uint}", verifyToken, utils.AdminOnlyMiddleware, DeleteListing)
		listings.Post("/{id:uint}/reviews", verifyToken, utils.UserIDFromTokenMiddleware, CreateReview)

		api.Post("/bookings", verifyToken, utils.UserIDFromTokenMiddleware, CreateBooking)
		api.Get("/my-bookings", verifyToken, utils.UserIDFromTokenMiddleware, GetMyBookings)

		admin := api.Party("/admin", verifyToken, utils.AdminOnlyMiddleware)
		admin.Get("/bookings", GetAllBookings)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}
	return app
}

func createTestUser(t *testing.T, username, email, role string) *models.User {
	t.Helper()

	hash, err := utils.HashAndSaltPassword("secret123")
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}
	user := models.User{Username: username, Email: email, Password: hash, Role: role}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return &user
}

func createTestListing(t *testing.T, title string, price float32) *models.Listing {
	t.Helper()

	listing := models.Listing{
		Title:       title,
		Description: "test listing",
		Image:       models.ListingImage{URL: "https://example.com/img.jpg"},
		Price:       price,
		Location:    "Jaipur",
		Country:     "India",
	}
	if err := storage.DB.Create(&listing).Error; err != nil {
		t.Fatalf("creating test listing: %v", err)
	}
	return &listing
}

func signTestToken(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := utils.CreateToken(user)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *iris.Application, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
