package api

import (
	"github.com/daryan97/bobatea/internal/middleware"
	"github.com/daryan97/bobatea/internal/session"
	"github.com/daryan97/bobatea/internal/store"
	"github.com/daryan97/bobatea/internal/summary"

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter builds the gin engine with all routes wired. templateGlob
// points at the HTML templates (configurable so tests can run from their
// package directory).
func NewRouter(users *store.Store, sessions *session.Manager, summaries summary.Store, templateGlob string) *gin.Engine {
	r := gin.Default() // Gin router instance
	r.LoadHTMLGlob(templateGlob)
	r.Static("/static", "./web/static") // Menu images

	// Open routes
	r.GET("/", LandingHandler(sessions))
	r.GET("/register", RegisterPageHandler(sessions))
	r.POST("/register", RegisterHandler(users, sessions))
	r.GET("/login", LoginPageHandler(sessions))
	r.POST("/login", LoginHandler(users, sessions))
	r.GET("/logout", LogoutHandler(sessions))
	r.GET("/order", OrderRedirectHandler()) // Nothing to compute without a form body

	// Gated routes (active session required)
	authed := r.Group("/")
	authed.Use(middleware.RequireUser(sessions))
	authed.GET("/menu", MenuHandler(sessions))
	authed.GET("/about", AboutHandler(sessions))
	authed.GET("/contact", ContactHandler(sessions))
	authed.GET("/cart", CartHandler(sessions))
	authed.GET("/order_summary", OrderSummaryHandler(sessions, summaries))
	authed.POST("/order", OrderHandler(sessions, summaries))

	return r
}
