package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wsikandar/portfolio-cms/internal/config"
	"github.com/wsikandar/portfolio-cms/pkg/auth"
)

type Handlers struct {
	Portfolio *PortfolioHandler
	Actions   *ActionHandler
	Media     *MediaHandler
}

func NewRouter(cfg config.Config, jwtSvc *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(RequestIDMiddleware())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.Origins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		portfolio := api.Group("/portfolio")
		{
			portfolio.GET("", h.Portfolio.GetPortfolio)
			portfolio.POST("/actions", IdentityMiddleware(jwtSvc), h.Actions.HandleAction)
		}

		admin := api.Group("/admin")
		admin.Use(AuthMiddleware(jwtSvc))
		{
			admin.POST("/media", h.Media.UploadMedia)
		}
	}

	return router
}
