package api

import (
	"net/http"

	"github.com/daryan97/bobatea/internal/domain"
	"github.com/daryan97/bobatea/internal/session"

	"github.com/gin-gonic/gin"
)

// menuItem is a catalog item prepared for the templates: prices are
// formatted to 2 fractional digits here, at render time, and nowhere else.
type menuItem struct {
	ID     string
	Flavor string
	Price  string
	Image  string
}

// orderView is a computed order prepared for the summary template
type orderView struct {
	Flavor        string
	Size          string
	Quantity      int
	PaymentMethod string
	UnitPrice     string
	TotalPrice    string
}

func viewItems(items []domain.CatalogItem) []menuItem {
	out := make([]menuItem, 0, len(items))
	for _, item := range items {
		out = append(out, menuItem{
			ID:     item.ID,
			Flavor: item.Flavor,
			Price:  item.Price.StringFixed(2),
			Image:  item.Image,
		})
	}
	return out
}

func viewOrder(o domain.Order) orderView {
	return orderView{
		Flavor:        o.Flavor,
		Size:          o.Size,
		Quantity:      o.Quantity,
		PaymentMethod: o.PaymentMethod,
		UnitPrice:     o.UnitPrice.StringFixed(2),
		TotalPrice:    o.TotalPrice.StringFixed(2),
	}
}

// render draws a template with the common page data (current username and
// any pending flash message) merged into data.
func render(c *gin.Context, sessions *session.Manager, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Username"]; !ok {
		username, _ := sessions.CurrentUser(c)
		data["Username"] = username
	}
	if _, ok := data["Flash"]; !ok {
		if flash, ok := sessions.TakeFlash(c); ok {
			data["Flash"] = flash
		}
	}
	c.HTML(http.StatusOK, tmpl, data)
}

// serverError renders the generic failure page for unexpected faults
func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}
