package views

import (
	"embed"
	"foodloop/domain"
	"github.com/gofiber/template/html/v2"
	"net/http"
)

//go:embed *.html layouts/*.html
var FS embed.FS

// NewEngine returns the html engine over the embedded templates.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("statusClass", statusClass)
	return engine
}

func statusClass(status domain.Status) string {
	switch status {
	case domain.StatusExpiringSoon:
		return "danger"
	case domain.StatusUseSoon:
		return "warning"
	default:
		return "success"
	}
}
