package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// RouterDeps carries everything the router mounts. Upload may be nil when
// media storage is not configured; the route then answers with a failure.
type RouterDeps struct {
	Log            logger.Logger
	JWT            *auth.JWTService
	AuthEnabled    bool
	DetailedStatus bool
	RequestTimeout time.Duration
	Metrics        *Metrics

	Health         *HealthHandler
	Auth           *AuthHandler
	Awards         *AwardHandler
	Certifications *CertificationHandler
	Education      *EducationHandler
	Experiences    *ExperienceHandler
	Skills         *SkillHandler
	SocialLinks    *SocialLinkHandler
	Settings       *SettingsHandler
	Upload         *UploadHandler
}

type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CorrelationIDMiddleware(), RequestLoggerMiddleware(d.Log))
	if d.Metrics != nil {
		router.Use(d.Metrics.GinMiddleware())
		router.GET("/metrics", d.Metrics.Handler())
	}
	router.Use(TracePropagationMiddleware(), ErrorMiddleware(d.Log, d.DetailedStatus), TimeoutMiddleware(d.RequestTimeout))

	api := router.Group("/api")
	if d.Health != nil {
		api.GET("/health", d.Health.Health)
	}
	if d.Auth != nil {
		api.POST("/admin/auth/login", d.Auth.Login)
	}

	var guard []gin.HandlerFunc
	if d.AuthEnabled {
		guard = append(guard, AuthMiddleware(d.JWT, d.Log))
	}
	write := api.Group("/", guard...)

	mount := func(path string, h crud) {
		api.GET(path, h.List)
		api.GET(path+"/:id", h.Get)
		write.POST(path, h.Create)
		write.PUT(path+"/:id", h.Update)
		write.DELETE(path+"/:id", h.Delete)
	}
	mount("/awards", d.Awards)
	mount("/certifications", d.Certifications)
	mount("/education", d.Education)
	mount("/experiences", d.Experiences)
	mount("/skills", d.Skills)
	mount("/social-links", d.SocialLinks)

	api.GET("/experiences/:id/positions", d.Experiences.ListPositions)
	write.POST("/experiences/:id/positions", d.Experiences.CreatePosition)
	write.PUT("/experiences/:id/positions/:positionId", d.Experiences.UpdatePosition)
	write.DELETE("/experiences/:id/positions/:positionId", d.Experiences.DeletePosition)

	api.GET("/settings", d.Settings.Get)
	write.POST("/settings", d.Settings.Replace)

	if d.Upload != nil {
		write.POST("/uploads", d.Upload.Upload)
		write.DELETE("/uploads/:publicId", d.Upload.Delete)
	}
	return router
}
