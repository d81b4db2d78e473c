package utils

import (
	"github.com/kataras/iris/v12"
)

// Envelope is the uniform response wrapper. Every route answers with transport
// status 200 and signals the outcome through Status/StatusCode instead;
// existing clients branch on the envelope, not the HTTP code.
type Envelope struct {
	Status     string      `json:"status"`
	StatusCode string      `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

const internalServerErrorMsg = "Internal Server Error"

func Success(ctx iris.Context, message string, data interface{}) {
	ctx.JSON(Envelope{
		Status:     "success",
		StatusCode: "200",
		Message:    message,
		Data:       data,
	})
}

func Error(ctx iris.Context, message string) {
	ctx.JSON(Envelope{
		Status:     "error",
		StatusCode: "500",
		Message:    message,
		Data:       nil,
	})
}

func InternalServerError(ctx iris.Context) {
	Error(ctx, internalServerErrorMsg)
}
