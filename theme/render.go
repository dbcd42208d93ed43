package theme

import (
	"fmt"

	"github.com/flosch/pongo2"
)

// Render executes the pongo2 template at tplPath with the theme's keys as
// variables, e.g. {{ color0 }} or {{ background }}.
func Render(tplPath string, t Theme) (string, error) {
	tpl, e := pongo2.FromFile(tplPath)
	if e != nil {
		return "", fmt.Errorf("load template %s: %w", tplPath, e)
	}
	return tpl.Execute(pongo2.Context(t))
}
