package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renderer turns a full HTML page into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportsRepo records completed exports. Saving is best-effort.
type ExportsRepo interface {
	Save(ctx context.Context, rec *domain.ExportRecord) error
}

// Exporter composes the print-mode render of a document and hands it to the
// capture renderer. Each Export call is independent; two invocations share
// no state beyond the immutable inputs.
type Exporter struct {
	renderer Renderer
	repo     ExportsRepo
	tplDir   string
}

func NewExporter(r Renderer, repo ExportsRepo, tplDir string) *Exporter {
	return &Exporter{renderer: r, repo: repo, tplDir: tplDir}
}

// Filename derives the download name from the resume's own name, falling
// back to a fixed default when it is empty.
func Filename(doc model.Document) string {
	name := strings.TrimSpace(doc.PersonalInfo.Name)
	if name == "" {
		name = "resume"
	}
	// keep the name filesystem-safe without mangling ordinary input
	name = strings.NewReplacer("/", "-", "\\", "-").Replace(name)
	return name + ".pdf"
}

// ComposeHTML builds the complete page for one document, variant and mode:
// the visual tree serialized into the page shell with the stylesheet
// inlined, so the artifact carries its styling wherever it is loaded.
func (e *Exporter) ComposeHTML(doc model.Document, variant render.Variant, mode render.Mode) (string, error) {
	tree := render.Compose(doc, variant, mode)

	tplPath := filepath.Join(e.tplDir, "page.html")
	tpl, err := template.ParseFiles(tplPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := map[string]interface{}{
		"Title": strings.TrimSuffix(Filename(doc), ".pdf"),
		"CSS":   template.CSS(e.stylesheet()),
		"Body":  template.HTML(tree.HTML()),
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// stylesheet loads style.css from the usual candidate locations.
func (e *Exporter) stylesheet() string {
	candidates := []string{
		filepath.Join(e.tplDir, "style.css"),
		filepath.Join(".", e.tplDir, "style.css"),
		"/app/templates/style.css",
		"./style.css",
		"style.css",
	}
	for _, c := range candidates {
		if b, err := os.ReadFile(c); err == nil {
			return string(b)
		}
	}
	fmt.Printf("exporter: no stylesheet found under %s\n", e.tplDir)
	return ""
}

// Export renders the print-mode page to PDF with retry and signature
// validation, then records the export best-effort. It returns the PDF bytes
// and the derived filename.
func (e *Exporter) Export(ctx context.Context, sessionID uuid.UUID, doc model.Document, variant render.Variant) ([]byte, string, error) {
	html, err := e.ComposeHTML(doc, variant, render.ModePrint)
	if err != nil {
		return nil, "", err
	}

	var pdfBytes []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, renderErr = e.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		fmt.Printf("exporter: render attempt %d failed: %v\n", i+1, renderErr)
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, "", ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, "", fmt.Errorf("rendering failed after %d attempts: %w", attempts, renderErr)
	}

	filename := Filename(doc)
	if e.repo != nil {
		rec := &domain.ExportRecord{
			ID:        uuid.New(),
			SessionID: sessionID,
			Template:  string(variant),
			Filename:  filename,
			FileSize:  len(pdfBytes),
			CreatedAt: time.Now(),
		}
		if err := e.repo.Save(ctx, rec); err != nil {
			fmt.Printf("exporter: failed to save export record (non-fatal): %v\n", err)
		}
	}

	return pdfBytes, filename, nil
}
