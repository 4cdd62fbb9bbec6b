package api

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/in-nis/studytrack/docs"
	"github.com/in-nis/studytrack/internal/auth"
	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/db"
	"github.com/in-nis/studytrack/internal/flash"
	"github.com/in-nis/studytrack/internal/metrics"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(dateLayout)
	},
	"datetime": func(t time.Time) string {
		return t.UTC().Format(dateTimeLayout)
	},
	"datetimePtr": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.UTC().Format(dateTimeLayout)
	},
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// @title           Study Tracker
// @version         1.0
// @description     Server-rendered study tracker: subjects, syllabus topics, study sessions and reminders.
// @host            localhost:8000
// @BasePath        /
func SetupRouter(cfg *config.Config, store *db.Store, svc *auth.Service, log logr.Logger) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery(), flash.Middleware(cfg.CookieSecure), auth.Identity(svc, cfg.CookieSecure, log))
	r.SetHTMLTemplate(loadTemplates())

	h := NewHandler(cfg, store, svc, log)

	r.GET("/health", func(c *gin.Context) {
		if err := store.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.GET("/", h.Home)
	r.GET("/register", h.Register)
	r.POST("/register", h.Register)
	r.GET("/login", h.Login)
	r.POST("/login", h.Login)

	if cfg.GoogleEnabled() {
		g := auth.NewGoogle(cfg, svc, log)
		r.GET("/auth/google/login", g.LoginHandler())
		r.GET("/auth/google/callback", g.CallbackHandler())
	}

	// Protected
	authGroup := r.Group("/")
	authGroup.Use(auth.RequireLogin())
	{
		authGroup.GET("/logout", h.Logout)
		authGroup.GET("/dashboard", h.Dashboard)
		authGroup.GET("/add_subject", h.AddSubject)
		authGroup.POST("/add_subject", h.AddSubject)
		authGroup.GET("/subject/:id", h.ViewSubject)
		authGroup.GET("/subject/:id/add_topic", h.AddTopic)
		authGroup.POST("/subject/:id/add_topic", h.AddTopic)
		authGroup.POST("/subject/:id/topic/:topic_id/complete", h.CompleteTopic)
		authGroup.GET("/log_study", h.LogStudy)
		authGroup.POST("/log_study", h.LogStudy)
		authGroup.GET("/study_log", h.StudyLog)
		authGroup.GET("/study_log/export", h.ExportStudyLog)
		authGroup.GET("/set_reminder/:id", h.SetReminder)
		authGroup.POST("/set_reminder/:id", h.SetReminder)
		authGroup.GET("/reminders", h.Reminders)
		authGroup.POST("/reminders", h.Reminders)
	}

	r.NoRoute(h.notFound)

	return r
}

func requestLogger(log logr.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, elapsed.Seconds())
		log.V(1).Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed.String(),
		)
	}
}
