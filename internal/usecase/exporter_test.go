package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

type fakeRenderer struct {
	calls    int
	failures int
	lastHTML string
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.calls++
	f.lastHTML = html
	if f.calls <= f.failures {
		return []byte("not a pdf"), nil
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeExportsRepo struct {
	saved []*domain.ExportRecord
	err   error
}

func (f *fakeExportsRepo) Save(_ context.Context, rec *domain.ExportRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rec)
	return nil
}

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	page := `<!DOCTYPE html><html><head><title>{{.Title}}</title><style>{{.CSS}}</style></head><body>{{.Body}}</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte(".page{margin:0}"), 0o644))
	return dir
}

func exportDoc() model.Document {
	d := model.New()
	d.PersonalInfo.Name = "Jane Doe"
	d = model.AddExperience(d)
	d = model.UpdateExperience(d, d.Experience[0].ID, "position", "Engineer")
	return d
}

func TestFilename(t *testing.T) {
	d := model.New()
	assert.Equal(t, "resume.pdf", Filename(d))

	d.PersonalInfo.Name = "  Jane Doe  "
	assert.Equal(t, "Jane Doe.pdf", Filename(d))

	d.PersonalInfo.Name = `a/b\c`
	assert.Equal(t, "a-b-c.pdf", Filename(d))
}

func TestComposeHTMLModes(t *testing.T) {
	e := NewExporter(&fakeRenderer{}, nil, writeTemplates(t))
	doc := exportDoc()

	screen, err := e.ComposeHTML(doc, render.Modern, render.ModeScreen)
	require.NoError(t, err)
	assert.Contains(t, screen, "preview-scroll")
	assert.Contains(t, screen, "Engineer")
	assert.Contains(t, screen, ".page{margin:0}")

	print, err := e.ComposeHTML(doc, render.Modern, render.ModePrint)
	require.NoError(t, err)
	assert.NotContains(t, print, "preview-scroll")
	assert.Contains(t, print, `class="page print"`)
	assert.Contains(t, print, "Engineer")
	assert.Contains(t, print, "<title>Jane Doe</title>")
}

func TestExportProducesPDF(t *testing.T) {
	r := &fakeRenderer{}
	repo := &fakeExportsRepo{}
	e := NewExporter(r, repo, writeTemplates(t))
	sid := uuid.New()

	pdf, filename, err := e.Export(context.Background(), sid, exportDoc(), render.Classic)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe.pdf", filename)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	// print-mode page hit the renderer, not the preview wrapper
	assert.Contains(t, r.lastHTML, `class="page print"`)
	assert.NotContains(t, r.lastHTML, "preview-toolbar")

	require.Len(t, repo.saved, 1)
	rec := repo.saved[0]
	assert.Equal(t, sid, rec.SessionID)
	assert.Equal(t, "classic", rec.Template)
	assert.Equal(t, "Jane Doe.pdf", rec.Filename)
	assert.Equal(t, len(pdf), rec.FileSize)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestExportRetriesOnInvalidOutput(t *testing.T) {
	r := &fakeRenderer{failures: 1}
	e := NewExporter(r, nil, writeTemplates(t))

	pdf, _, err := e.Export(context.Background(), uuid.New(), exportDoc(), render.Modern)
	require.NoError(t, err)
	assert.Equal(t, 2, r.calls)
	assert.True(t, string(pdf[:4]) == "%PDF")
}

func TestExportFailsAfterExhaustedRetries(t *testing.T) {
	r := &fakeRenderer{failures: 10}
	e := NewExporter(r, nil, writeTemplates(t))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// let the first attempt fail, then cut the backoff short
		cancel()
	}()
	_, _, err := e.Export(ctx, uuid.New(), exportDoc(), render.Modern)
	assert.Error(t, err)
}

func TestExportSurvivesRepoFailure(t *testing.T) {
	e := NewExporter(&fakeRenderer{}, &fakeExportsRepo{err: errors.New("db gone")}, writeTemplates(t))

	pdf, filename, err := e.Export(context.Background(), uuid.New(), exportDoc(), render.Minimal)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe.pdf", filename)
	assert.NotEmpty(t, pdf)
}

func TestExportIsRepeatable(t *testing.T) {
	repo := &fakeExportsRepo{}
	e := NewExporter(&fakeRenderer{}, repo, writeTemplates(t))
	doc := exportDoc()
	sid := uuid.New()

	a, nameA, err := e.Export(context.Background(), sid, doc, render.Modern)
	require.NoError(t, err)
	b, nameB, err := e.Export(context.Background(), sid, doc, render.Modern)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, nameA, nameB)
	// each run records its own export
	assert.Len(t, repo.saved, 2)
}
