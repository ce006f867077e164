package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/errs"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"rupees": func(amount int64) string { return fmt.Sprintf("₹%d", amount) },
	"hours": func(n int) string {
		if n == 1 {
			return "1 hr"
		}
		return fmt.Sprintf("%d hrs", n)
	},
	"longDate": func(date string) string {
		t, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return date
		}
		return t.Format("Monday, 2 January 2006")
	},
	"lineTotal": func(l notification.CafeLine) int64 { return l.Price * int64(l.Quantity) },
	"paymentLabel": func(method string) string {
		if method == "cash" {
			return "Pay at Gaming Zone"
		}
		return "Paid Online"
	},
}

// Renderer turns a message into an HTML body. Each kind has its own body
// template inside a shared layout.
type Renderer struct {
	brand       string
	cutoffHours int
	byKind      map[notification.Kind]*template.Template
}

func NewRenderer(brand string, cutoff time.Duration) (*Renderer, error) {
	r := &Renderer{
		brand:       brand,
		cutoffHours: int(cutoff.Hours()),
		byKind:      make(map[notification.Kind]*template.Template),
	}
	for _, kind := range []notification.Kind{
		notification.KindConfirmation,
		notification.KindCancellation,
		notification.KindReminder,
	} {
		t, err := template.New(string(kind)).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+string(kind)+".html",
		)
		if err != nil {
			return nil, errs.Wrapf(err, "parse %s template", kind)
		}
		r.byKind[kind] = t
	}
	return r, nil
}

type view struct {
	Brand       string
	CutoffHours int
	Data        notification.Data
}

func (r *Renderer) Render(msg notification.Message) (string, error) {
	t, ok := r.byKind[msg.Kind]
	if !ok {
		return "", notification.ErrUnknownKind
	}
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", view{
		Brand:       r.brand,
		CutoffHours: r.cutoffHours,
		Data:        msg.Data,
	})
	if err != nil {
		return "", errs.Wrapf(err, "render %s", msg.Kind)
	}
	return buf.String(), nil
}
