package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/daryan97/bobatea/internal/domain"
	"github.com/daryan97/bobatea/internal/order"
	"github.com/daryan97/bobatea/internal/session"
	"github.com/daryan97/bobatea/internal/summary"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Request struct for order submission
type orderForm struct {
	Flavor        string `form:"flavor" binding:"required"`   // Flavor must be provided
	Size          string `form:"size" binding:"required"`     // Size must be provided
	Quantity      string `form:"quantity" binding:"required"` // Parsed and validated by the calculator
	PaymentMethod string `form:"payment_method"`              // Optional
}

// OrderHandler computes a submitted order, saves it as the user's last
// summary and renders the confirmation page. Every malformed input becomes
// a flash plus redirect, never a raw fault.
func OrderHandler(sessions *session.Manager, summaries summary.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form orderForm
		if err := c.ShouldBind(&form); err != nil {
			sessions.Flash(c, "Please pick a flavor, size and quantity.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		computed, err := order.Compute(order.Input{
			Flavor:        form.Flavor,
			Size:          form.Size,
			Quantity:      form.Quantity,
			PaymentMethod: form.PaymentMethod,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidQuantity):
				sessions.Flash(c, "Quantity must be a positive whole number.")
				c.Redirect(http.StatusFound, "/cart")
			case errors.Is(err, domain.ErrUnknownItem), errors.Is(err, domain.ErrInvalidSize):
				sessions.Flash(c, "That drink is not on the menu.")
				c.Redirect(http.StatusFound, "/menu")
			default:
				logrus.Errorf("compute order: %v", err)
				serverError(c)
			}
			return
		}
		username := c.GetString("username")
		if err := summaries.Save(c.Request.Context(), username, computed); err != nil {
			// The order is still good; losing the replay copy only affects
			// a later /order_summary visit.
			logrus.Warnf("save summary for %q: %v", username, err)
		}
		render(c, sessions, "order_summary.html", gin.H{"Order": viewOrder(computed)})
	}
}

// OrderRedirectHandler handles GET /order: there is no form body to
// compute, so the client goes to the cart instead.
func OrderRedirectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/cart")
	}
}
