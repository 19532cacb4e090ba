package v1

import (
	"physiowell-web/config"
	"physiowell-web/internal/delivery/http/middleware"
	"physiowell-web/internal/delivery/http/view"
	"physiowell-web/internal/domain"
	"physiowell-web/internal/usecase"
	"physiowell-web/pkg/apperror"
	"physiowell-web/pkg/flash"
	"physiowell-web/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	ConversionUC domain.ConversionUsecase
	HealthUC     usecase.HealthUsecase
	Flashes      *flash.Store
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	renderer := view.NewRenderer(deps.Flashes, deps.Config.SiteName)

	// Global Middlewares
	r.Use(middleware.Recovery(renderer))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler(renderer))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Page not found"))
	})

	// Health Check
	NewHealthHandler(&r.RouterGroup, deps.HealthUC)

	NewPageHandler(&r.RouterGroup, renderer)
	NewContactHandler(&r.RouterGroup, deps.SubmissionUC, deps.Flashes, renderer)

	api := r.Group("/api")
	NewConversionHandler(api, deps.ConversionUC)

	// Swagger
	if !deps.Config.IsProduction() {
		api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
