package transport

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handlers struct {
	Links    *LinkHandler
	Reports  *ReportHandler
	Accounts *AccountHandler
	Auth     Authenticator
}

func InitRoutes(h Handlers, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger(), Timeout(requestTimeout), CORS())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	requireAuth := Authenticate(h.Auth, true)
	optionalAuth := Authenticate(h.Auth, false)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "urlpro"})
	})

	router.GET("/", h.Reports.Index)
	router.POST("/shorten", h.Links.Shorten)
	router.POST("/advanced_shorten", optionalAuth, h.Links.AdvancedShorten)
	router.GET("/qr/:slug", h.Links.QRCode)
	router.GET("/stats/:slug", optionalAuth, h.Reports.Stats)
	router.GET("/url_analytics/:slug", requireAuth, h.Reports.URLAnalytics)
	router.GET("/dashboard", requireAuth, h.Reports.Dashboard)
	router.GET("/export/csv", requireAuth, h.Reports.ExportCSV)
	router.GET("/export/pdf", requireAuth, h.Reports.ExportPDF)

	api := router.Group("/api")
	api.POST("/shorten", optionalAuth, h.Links.APIShorten)
	api.POST("/users", h.Accounts.Register)
	api.POST("/login", h.Accounts.Login)
	api.GET("/categories", h.Accounts.Categories)

	private := api.Group("", requireAuth)
	private.GET("/profile", h.Accounts.Profile)
	private.PATCH("/profile", h.Accounts.UpdatePreferences)
	private.POST("/profile/api-key", h.Accounts.RotateAPIKey)
	private.GET("/notifications", h.Accounts.Notifications)
	private.POST("/notifications/:id/read", h.Accounts.MarkNotificationRead)
	private.POST("/categories", h.Accounts.CreateCategory)
	private.GET("/domains", h.Accounts.Domains)
	private.POST("/domains", h.Accounts.CreateDomain)

	router.GET("/:slug", h.Links.Redirect)
	router.POST("/:slug", h.Links.Redirect)

	return router
}
