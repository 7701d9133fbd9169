package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

// Variant selects one of the template rendering strategies. The set is
// closed; a new template is a new arm behind the same contract.
type Variant string

const (
	Modern  Variant = "modern"
	Classic Variant = "classic"
	Minimal Variant = "minimal"
)

// Variants lists the selectable templates in display order.
func Variants() []Variant {
	return []Variant{Modern, Classic, Minimal}
}

// ParseVariant maps a user-supplied template name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(s)) {
	case Modern:
		return Modern, nil
	case Classic:
		return Classic, nil
	case Minimal:
		return Minimal, nil
	}
	return "", fmt.Errorf("unknown template %q", s)
}

// Mode distinguishes the on-screen preview wrapper from the off-screen
// print wrapper used for PDF capture.
type Mode int

const (
	ModeScreen Mode = iota
	ModePrint
)

// Render produces the visual tree for one document under one variant. It is
// a pure function: same input, same tree, no mutation of doc. An
// unrecognized variant renders as Modern, matching the dispatcher's default.
func Render(doc model.Document, v Variant) *Node {
	switch v {
	case Classic:
		return classic(doc)
	case Minimal:
		return minimal(doc)
	default:
		return modern(doc)
	}
}

// Compose wraps the rendered tree for its destination. Both modes embed the
// identical Render output; the screen wrapper adds the scroll container and
// toolbar, the print wrapper adds neither. The exported PDF therefore shows
// exactly the sections, order and text of the preview.
func Compose(doc model.Document, v Variant, mode Mode) *Node {
	tree := Render(doc, v)
	if mode == ModePrint {
		return el("div", "page print", tree)
	}
	return el("div", "page preview",
		el("div", "preview-toolbar"),
		el("div", "preview-scroll", tree),
	)
}

// FormatDate renders an ISO calendar date as "Jan 2006". Empty and
// unparseable inputs format to the empty string, never an error.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// dateRange joins formatted start and end dates. A current position shows
// the literal "Present" regardless of any stored end date.
func dateRange(start, end string, current bool) string {
	e := FormatDate(end)
	if current {
		e = "Present"
	}
	s := FormatDate(start)
	if s == "" && e == "" {
		return ""
	}
	return s + " - " + e
}

// linkLabel derives a tidy text label for an external link, preferring the
// eTLD+1 of its host. Unparseable input falls back to the given default.
func linkLabel(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return fallback
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// displayName falls back to a placeholder so the header never renders blank.
func displayName(p model.PersonalInfo) string {
	if p.Name == "" {
		return "Your Name"
	}
	return p.Name
}

// degreeLine joins degree and field of study the way all variants show them.
func degreeLine(e model.EducationEntry) string {
	if e.FieldOfStudy == "" {
		return e.Degree
	}
	if e.Degree == "" {
		return e.FieldOfStudy
	}
	return e.Degree + ", " + e.FieldOfStudy
}
