// Package letter renders offer letter content from an offer payload.
package letter

import (
	"bytes"
	"fmt"
	"math"
	"text/template"
	"time"

	"github.com/yigit/placement/internal/app/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTemplate is used when no template is configured
const DefaultTemplate = `Date: {{date .OfferDate}}

Dear {{.StudentName}} ({{.StudentRollNo}}),

We are pleased to offer you the position of {{.Role}} at {{.CompanyName}}{{if .Location}}, {{.Location}}{{end}}.

Annual compensation (CTC): {{money .FinalCTC}}
Date of joining: {{date .JoiningDate}}

Please confirm your acceptance with the placement cell.

Regards,
{{.CompanyName}}
`

const dateLayout = "02 January 2006"

// Config controls how letters are rendered
type Config struct {
	Locale         string
	CurrencySymbol string
	Template       string
}

// Renderer formats offer letters with a text template
type Renderer struct {
	tmpl    *template.Template
	printer *message.Printer
	symbol  string
}

// NewRenderer parses the configured template. Empty fields fall back to
// en-IN, the rupee sign and DefaultTemplate.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Locale == "" {
		cfg.Locale = "en-IN"
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "₹"
	}
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
	}

	r := &Renderer{printer: message.NewPrinter(tag), symbol: cfg.CurrencySymbol}
	r.tmpl, err = template.New("offer").Funcs(template.FuncMap{
		"money": r.Money,
		"date":  func(t time.Time) string { return t.Format(dateLayout) },
	}).Parse(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("parse offer template: %w", err)
	}
	return r, nil
}

// Money formats an amount in whole currency units with locale grouping
func (r *Renderer) Money(amount float64) string {
	return r.printer.Sprintf("%s%d", r.symbol, int64(math.Round(amount)))
}

// Render implements placement.LetterRenderer
func (r *Renderer) Render(payload models.OfferPayload) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, payload); err != nil {
		return "", fmt.Errorf("execute offer template: %w", err)
	}
	return buf.String(), nil
}
