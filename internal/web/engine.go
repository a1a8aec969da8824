package web

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewEngine builds the HTML template engine from the embedded views with a
// few formatting helpers used by the storefront pages.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	engine.AddFunc("currency", func(amount float64) string {
		return fmt.Sprintf("$%.2f", amount)
	})
	engine.AddFunc("stars", func(rating float64) string {
		filled := int(rating + 0.5)
		if filled > 5 {
			filled = 5
		}
		out := ""
		for i := 0; i < 5; i++ {
			if i < filled {
				out += "★"
			} else {
				out += "☆"
			}
		}
		return out
	})
	return engine
}
