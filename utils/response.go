package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// CreateError stops the request with the API's error wire contract:
// a status code and an {"error": message} body.
func CreateError(statusCode int, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": message})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Something went wrong", ctx)
}

func CreateNotFound(ctx iris.Context, what string) {
	CreateError(iris.StatusNotFound, what+" not found", ctx)
}

// HandleValidationErrors maps body-decoding and validator failures to a 400
// with a readable field list.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field())
		}
		CreateError(iris.StatusBadRequest, "Invalid value for: "+strings.Join(fields, ", "), ctx)
		return
	}

	CreateError(iris.StatusBadRequest, "Invalid request body", ctx)
}
