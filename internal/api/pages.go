package api

import (
	"net/http"

	"github.com/daryan97/bobatea/internal/catalog"
	"github.com/daryan97/bobatea/internal/session"
	"github.com/daryan97/bobatea/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LandingHandler renders the public landing page
func LandingHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "landing.html", gin.H{})
	}
}

// MenuHandler renders the fixed menu with all flavors and sizes
func MenuHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "menu.html", gin.H{
			"Items": viewItems(catalog.Items()),
			"Sizes": catalog.Sizes(),
		})
	}
}

// AboutHandler renders the static about page
func AboutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "about.html", gin.H{})
	}
}

// ContactHandler renders the static contact page
func ContactHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "contact.html", gin.H{})
	}
}

// CartHandler renders the order form with the menu data and accepted
// payment methods
func CartHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, sessions, "cart.html", gin.H{
			"Items":          viewItems(catalog.Items()),
			"Sizes":          catalog.Sizes(),
			"PaymentMethods": catalog.PaymentMethods(),
		})
	}
}

// OrderSummaryHandler re-renders the user's most recent order. Without a
// prior order it sends the client back to the cart.
func OrderSummaryHandler(sessions *session.Manager, summaries summary.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		last, ok, err := summaries.Load(c.Request.Context(), username)
		if err != nil {
			logrus.Errorf("load summary for %q: %v", username, err)
			serverError(c)
			return
		}
		if !ok {
			sessions.Flash(c, "You have not placed an order yet.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		render(c, sessions, "order_summary.html", gin.H{"Order": viewOrder(last)})
	}
}
