// Package views holds the HTML templates, embedded into the binary.
package views

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// Layout wraps every page rendered through the engine.
const Layout = "layouts/main"

// ingredientRows is how many blank ingredient rows the recipe form offers.
const ingredientRows = 6

func NewEngine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	})
	engine.AddFunc("rows", func() []int {
		return make([]int, ingredientRows)
	})
	engine.AddFunc("dict", func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, errors.New("dict expects key/value pairs")
		}
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, errors.New("dict keys must be strings")
			}
			m[key] = pairs[i+1]
		}
		return m, nil
	})
	return engine
}
