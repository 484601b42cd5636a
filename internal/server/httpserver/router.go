package httpserver

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

func (s *HTTPServer) newRouter() (*gin.Engine, error) {
	r := gin.New()

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(s.recovery(), s.requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", s.health)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	pages := r.Group("/", s.sessionMiddleware())
	{
		pages.GET("/", s.home)

		pages.GET("/register", s.registerForm)
		pages.POST("/register", s.register)
		pages.GET("/login", s.loginForm)
		pages.POST("/login", s.login)
		pages.POST("/logout", s.logout)

		pages.GET("/log", s.logForm)
		pages.POST("/log", s.logVitals)

		pages.GET("/dashboard", s.dashboard)
		pages.GET("/dashboard/chart", s.dashboardChart)
		pages.GET("/dashboard/export.csv", s.exportMine)

		pages.GET("/admin", s.admin)
		pages.GET("/admin/export.csv", s.exportAll)
		pages.POST("/admin/export/archive", s.archiveAll)

		pages.GET("/thresholds", s.thresholdsForm)
		pages.POST("/thresholds", s.setThresholds)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r, nil
}
