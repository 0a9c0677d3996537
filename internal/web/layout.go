package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const stylesheet = `body{font-family:sans-serif;margin:2rem}` +
	`ul{list-style:none;padding:0}` +
	`li{display:flex;gap:1rem;align-items:center;margin-bottom:1rem}` +
	`img{width:64px;height:64px;border-radius:50%}` +
	`.error{color:#b00020}`

// layout wraps body in the HTML document shared by both pages
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<style>` + stylesheet + `</style></head><body><main>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
