package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/images"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// loadTemplates parses every page and partial into one set
func (h *Handler) loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(h.funcMap()).ParseFS(templateFS, "templates/*.tmpl"))
}

func (h *Handler) funcMap() template.FuncMap {
	return template.FuncMap{
		"t": func(lang i18n.Lang, key string) string {
			return i18n.T(lang, key)
		},
		"target": notification.Target,
		"icon": func(t models.NotificationType) string {
			return notification.Present(t).Icon
		},
		"badge": func(t models.NotificationType) string {
			return notification.Present(t).Badge
		},
		"richText": func(s string) template.HTML {
			return template.HTML(h.sanitizer.Sanitize(s))
		},
		"primaryURL": images.PrimaryURL,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006")
		},
		"bookingLabel": func(s models.BookingStatus) string {
			return "booking." + string(s)
		},
		"canTransition": func(from models.BookingStatus, to string) bool {
			return from.CanTransition(models.BookingStatus(to))
		},
		"price": func(v float64) string {
			return fmt.Sprintf("%.0f", v)
		},
		"add": func(a, b int) int {
			return a + b
		},
		"last": func(i int, n int) bool {
			return i == n-1
		},
		"val": func(values map[string]any, key string) string {
			v, ok := values[key]
			if !ok || v == nil {
				return ""
			}
			return fmt.Sprint(v)
		},
		"langURL": langURL,
	}
}

// langURL returns path with its lang query parameter set to lang
func langURL(path string, lang i18n.Lang) string {
	u, err := url.Parse(path)
	if err != nil {
		return "/?lang=" + string(lang)
	}
	q := u.Query()
	q.Set("lang", string(lang))
	u.RawQuery = q.Encode()
	return u.RequestURI()
}
