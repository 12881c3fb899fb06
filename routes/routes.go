package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homestay-backend/controllers"
	"homestay-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the middleware chain, the wizard pages and the API.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HomestayController,
	sessionSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Wizard pages
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/landing", func(c *gin.Context) {
		c.HTML(http.StatusOK, "landing.html", nil)
	})
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", nil)
	})
	r.GET("/preview", func(c *gin.Context) {
		c.HTML(http.StatusOK, "preview.html", nil)
	})

	api := r.Group("/api")
	{
		// Login flow is the only unauthenticated surface.
		api.GET("/login", ac.Login)
		api.GET("/callback", ac.Callback)
		api.GET("/logout", ac.Logout)

		protected := api.Group("", middleware.RequireAuth(sessionSecret))
		{
			protected.GET("/auth/user", ac.GetCurrentUser)
			protected.POST("/homestays", hc.CreateHomestay)
			protected.GET("/homestays", hc.ListHomestays)
		}
	}

	return r
}
