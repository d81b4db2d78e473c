package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/config"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/storage"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Uploader storage.ImageUploader
}

// NewApp builds the iris application with every route mounted under /api/v1
// behind the app-id gate.
func NewApp(deps Deps) *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	// CORS for the single-page frontend; the token travels in a response
	// header, so everything must be exposed.
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, app-id, x-access-token, Authorization")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		ctx.Header("Access-Control-Expose-Headers", "*")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	dev := deps.Config.Development()
	app.Use(utils.Recover(dev))

	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.StatusCode(iris.StatusOK)
		utils.Error(ctx, "Route Not Found")
	})

	tokens := utils.NewTokenService(deps.Config.JWTSecret)
	security := utils.NewSecurity(deps.Config.AppID, tokens)

	authHandler := &AuthHandler{DB: deps.DB, Tokens: tokens, Dev: dev}
	propertyHandler := &PropertyHandler{DB: deps.DB, Dev: dev}
	uploadHandler := &UploadHandler{Uploader: deps.Uploader, Dev: dev}

	api := app.Party("/api/v1", security.CheckAppID)

	auth := api.Party("/auth")
	{
		auth.Post("/owner/signup", authHandler.OwnerSignup)
		auth.Post("/owner/login", authHandler.OwnerLogin)
		auth.Post("/customer/signup", authHandler.CustomerSignup)
		auth.Post("/customer/login", authHandler.CustomerLogin)
	}

	properties := api.Party("/properties")
	{
		properties.Get("/", propertyHandler.List)
		properties.Get("/static-data", propertyHandler.StaticData)
		properties.Get("/details/{id:uint}", security.CheckToken, propertyHandler.Details)
		properties.Get("/list-by-owner", security.CheckTokenWithRoles(models.RoleOwner), propertyHandler.ListByOwner)
		properties.Post("/", security.CheckTokenWithRoles(models.RoleOwner), propertyHandler.Create)
		properties.Put("/{id:uint}", security.CheckTokenWithRoles(models.RoleOwner), propertyHandler.Update)
		properties.Patch("/{id:uint}/status/{status}", security.CheckTokenWithRoles(models.RoleOwner), propertyHandler.StatusUpdate)
	}

	upload := api.Party("/upload")
	{
		upload.Post("/image", iris.LimitRequestBodySize(maxSingleUploadSize+512*1024), uploadHandler.Image)
		upload.Post("/bulk-image", iris.LimitRequestBodySize(maxBulkUploadSize+512*1024), uploadHandler.BulkImage)
	}

	return app
}

func devLog(v ...interface{}) {
	log.Println(v...)
}
