package term

import (
	"context"
	"strings"

	"github.com/nelsonberm/go-srtm/pkg/render"
)

// Renderer writes views as styled terminal text.
type Renderer struct {
	styles Styles
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a terminal renderer with the default styles.
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// NewWithStyles builds a terminal renderer with a custom style set.
func NewWithStyles(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

func (r *Renderer) Name() string { return "term" }

func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render lays out the view top to bottom: badge line, message,
// validation errors, payload, guidance, then the debug panel on
// failures.
func (r *Renderer) Render(ctx context.Context, view render.View, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.styles

	var sb strings.Builder

	badge := s.SuccessBadge
	if view.Failed {
		badge = s.ErrorBadge
	}
	sb.WriteString(badge.Render(view.Badge))
	sb.WriteString(" ")
	sb.WriteString(s.Muted.Render("HTTP " + view.Status))
	if view.Code != "" {
		sb.WriteString(" ")
		sb.WriteString(s.Muted.Render("[" + view.Code + "]"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(s.Body.Render(view.Message))
	sb.WriteString("\n")

	if view.Note != "" {
		sb.WriteString(s.Muted.Render(view.Note))
		sb.WriteString("\n")
	}
	if view.Timestamp != "" {
		sb.WriteString(s.Muted.Render("Fecha de transacción: " + view.Timestamp))
		sb.WriteString("\n")
	}

	if len(view.ValidationErrors) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.Warning.Render("Errores de validación:"))
		sb.WriteString("\n")
		for _, msg := range view.ValidationErrors {
			sb.WriteString("  • " + msg + "\n")
		}
	}

	if view.Payload != nil {
		sb.WriteString("\n")
		r.writePayload(&sb, view.Payload)
	}

	if len(view.AdditionalInfo) > 0 {
		sb.WriteString("\n")
		for _, row := range view.AdditionalInfo {
			sb.WriteString(s.Label.Render(row.Label+":") + " " + row.Value + "\n")
		}
	}

	if view.Guidance != nil {
		sb.WriteString("\n")
		sb.WriteString(s.Info.Render(view.Guidance.Title))
		sb.WriteString("\n")
		for _, item := range view.Guidance.Items {
			sb.WriteString("  • " + item + "\n")
		}
	}

	if view.Debug != nil && (view.Failed || options.Verbose) {
		sb.WriteString("\n")
		var panel strings.Builder
		panel.WriteString(s.Label.Render(view.Debug.Title) + "\n")
		for _, row := range view.Debug.Rows {
			panel.WriteString(s.Muted.Render(row.Label+": ") + row.Value + "\n")
		}
		sb.WriteString(s.Panel.Render(strings.TrimRight(panel.String(), "\n")))
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

func (r *Renderer) writePayload(sb *strings.Builder, p *render.PayloadView) {
	s := r.styles
	switch {
	case p.Notice != "":
		sb.WriteString(s.Muted.Render(p.Notice) + "\n")
	case p.Table != nil:
		t := table{headers: p.Table.Columns, rows: p.Table.Rows}
		sb.WriteString(t.render(s))
	case len(p.Items) > 0:
		for _, item := range p.Items {
			sb.WriteString("  • " + item + "\n")
		}
	case p.Scalar != "":
		sb.WriteString(s.Body.Render(p.Scalar) + "\n")
	}
}
