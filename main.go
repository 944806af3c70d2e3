package main

import (
	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/routes"
	"github.com/MDAMANAHMAD/Roam-Heaven/storage"
	"github.com/MDAMANAHMAD/Roam-Heaven/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	config.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	// Idempotent bootstrap, outside the request path.
	storage.SeedAdminUser()
	storage.SeedDemoListings()

	app := newApp()
	app.Listen(":" + config.C.Port)
}

func newApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	// CORS for the web client
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", config.C.ClientOrigin)
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"error": "API endpoint not found"})
	})
	app.OnErrorCode(iris.StatusInternalServerError, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"error": "Something went wrong"})
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
		auth.Post("/signup", routes.Signup)
		auth.Post("/login", routes.Login)

		listings := api.Party("/listings")
		listings.Get("/", routes.GetListings)
		listings.Get("/{id:uint}", routes.GetListing)
		listings.Post("/", verifyToken, utils.AdminOnlyMiddleware, routes.CreateListing)
		listings.Put("/{id:uint}", verifyToken, utils.AdminOnlyMiddleware, routes.UpdateListing)
		listings.Delete("/{id:uint}", verifyToken, utils.AdminOnlyMiddleware, routes.DeleteListing)
		listings.Post("/{id:uint}/reviews", verifyToken, utils.UserIDFromTokenMiddleware, routes.CreateReview)

		api.Post("/bookings", verifyToken, utils.UserIDFromTokenMiddleware, routes.CreateBooking)
		api.Get("/my-bookings", verifyToken, utils.UserIDFromTokenMiddleware, routes.GetMyBookings)

		admin := api.Party("/admin", verifyToken, utils.AdminOnlyMiddleware)
		admin.Get("/bookings", routes.GetAllBookings)
	}

	return app
}
