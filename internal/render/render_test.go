package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func sampleDocument() model.Document {
	d := model.New()
	d.PersonalInfo = model.PersonalInfo{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Lisbon, Portugal",
		Website:  "https://janedoe.dev",
		Summary:  "Backend engineer with a rendering habit.",
	}
	d.Education = append(d.Education, model.EducationEntry{
		ID: "edu-1", Institution: "State University", Degree: "BSc",
		FieldOfStudy: "Computer Science", StartDate: "2015-09-01", EndDate: "2019-06-30",
	})
	d.Experience = append(d.Experience, model.ExperienceEntry{
		ID: "exp-1", Company: "Acme", Position: "Software Engineer",
		StartDate: "2019-08-01", Current: true,
		Description: "Core platform work.",
		Bullets:     []string{"Shipped the billing rewrite", "Cut p99 latency by 40%"},
	})
	d.Skills = append(d.Skills,
		model.SkillEntry{ID: "sk-1", Name: "Go", Level: model.LevelExpert},
		model.SkillEntry{ID: "sk-2", Name: "PostgreSQL", Level: model.LevelAdvanced},
	)
	d.Projects = append(d.Projects, model.ProjectEntry{
		ID: "pr-1", Name: "traceview", Description: "Trace visualizer.",
		Technologies: "Go, SQLite", Link: "https://www.github.com/janedoe/traceview",
	})
	return d
}

// hasClass walks the tree looking for a node carrying the class token.
func hasClass(n *Node, token string) bool {
	if n == nil {
		return false
	}
	for _, c := range strings.Fields(n.Class) {
		if c == token {
			return true
		}
	}
	for _, kid := range n.Kids {
		if hasClass(kid, token) {
			return true
		}
	}
	return false
}

// collectText gathers the Text of every node with the given class token, in
// document order.
func collectText(n *Node, token string) []string {
	var out []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		for _, c := range strings.Fields(n.Class) {
			if c == token {
				out = append(out, n.Text)
				break
			}
		}
		for _, kid := range n.Kids {
			walk(kid)
		}
	}
	walk(n)
	return out
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"2023-03-15": "Mar 2023",
		"2020-01-02": "Jan 2020",
		"2021-12-31": "Dec 2021",
		"not-a-date": "",
		"2023-13-40": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), "input %q", in)
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Aug 2019 - Present", dateRange("2019-08-01", "", true))
	// a stale stored end date loses to the current flag
	assert.Equal(t, "Aug 2019 - Present", dateRange("2019-08-01", "2023-01-01", true))
	assert.Equal(t, "Aug 2019 - Jan 2023", dateRange("2019-08-01", "2023-01-01", false))
	assert.Equal(t, " - Jan 2023", dateRange("", "2023-01-01", false))
	assert.Equal(t, "", dateRange("", "", false))
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := ParseVariant("CLASSIC")
	require.NoError(t, err)
	assert.Equal(t, Classic, got)

	_, err = ParseVariant("brutalist")
	assert.Error(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := sampleDocument()
	for _, v := range Variants() {
		a := Render(doc, v)
		b := Render(doc, v)
		assert.True(t, a.Equal(b), "variant %s trees differ", v)
		assert.Equal(t, a.HTML(), b.HTML(), "variant %s markup differs", v)
	}
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	doc := sampleDocument()
	before := doc.Clone()
	for _, v := range Variants() {
		Render(doc, v)
	}
	assert.Equal(t, before, doc)
}

func TestUnknownVariantRendersModern(t *testing.T) {
	doc := sampleDocument()
	assert.True(t, Render(doc, Variant("bogus")).Equal(Render(doc, Modern)))
}

func TestSectionPresentIffBackingDataNonEmpty(t *testing.T) {
	full := sampleDocument()
	empty := model.New()
	sections := []string{"summary", "experience", "education", "skills", "projects"}

	for _, v := range Variants() {
		withData := Render(full, v)
		without := Render(empty, v)
		for _, sec := range sections {
			assert.True(t, hasClass(withData, sec), "variant %s missing %s", v, sec)
			assert.False(t, hasClass(without, sec), "variant %s renders empty %s", v, sec)
		}
	}
}

func TestEmptySectionOmittedIndependently(t *testing.T) {
	doc := sampleDocument()
	doc.Skills = nil
	for _, v := range Variants() {
		tree := Render(doc, v)
		assert.False(t, hasClass(tree, "skills"), "variant %s", v)
		assert.True(t, hasClass(tree, "experience"), "variant %s", v)
		assert.True(t, hasClass(tree, "projects"), "variant %s", v)
	}
}

func TestEmptyDocumentRendersHeaderOnly(t *testing.T) {
	for _, v := range Variants() {
		tree := Render(model.New(), v)
		require.NotNil(t, tree)
		names := collectText(tree, "name")
		require.Len(t, names, 1, "variant %s", v)
		assert.Equal(t, "Your Name", names[0])
		assert.False(t, hasClass(tree, "contact-item"), "variant %s", v)
	}
}

func TestEmptyOptionalFieldSuppressedNotPlaceholder(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.Phone = ""
	for _, v := range Variants() {
		tree := Render(doc, v)
		html := tree.HTML()
		assert.NotContains(t, html, "+1 555 0100", "variant %s", v)
		assert.Contains(t, html, "jane@example.com", "variant %s", v)
	}
}

func TestPresentShownForCurrentPosition(t *testing.T) {
	doc := sampleDocument()
	for _, v := range Variants() {
		dates := collectText(Render(doc, v), "dates")
		require.NotEmpty(t, dates, "variant %s", v)
		assert.Contains(t, dates[0], "Present", "variant %s", v)
	}
}

func TestEntryOrderFollowsCollectionOrder(t *testing.T) {
	doc := model.New()
	for _, name := range []string{"Go", "Rust", "SQL"} {
		doc.Skills = append(doc.Skills, model.SkillEntry{
			ID: model.NewEntryID(), Name: name, Level: model.LevelIntermediate,
		})
	}
	assert.Equal(t, []string{"Go", "Rust", "SQL"}, collectText(Render(doc, Minimal), "pill"))
	assert.Equal(t, []string{"Go", "Rust", "SQL"}, collectText(Render(doc, Modern), "skill-name"))
}

func TestMinimalOmitsDescriptionsAndLevels(t *testing.T) {
	doc := sampleDocument()
	tree := Render(doc, Minimal)
	html := tree.HTML()
	assert.NotContains(t, html, "Core platform work.")
	assert.NotContains(t, html, string(model.LevelExpert))
	// projects keep their descriptions in every variant
	assert.Contains(t, html, "Trace visualizer.")
}

func TestPrintTreeMatchesScreenTree(t *testing.T) {
	doc := sampleDocument()
	for _, v := range Variants() {
		screen := Compose(doc, v, ModeScreen)
		print := Compose(doc, v, ModePrint)

		require.True(t, hasClass(screen, "preview-scroll"), "variant %s", v)
		assert.False(t, hasClass(print, "preview-scroll"), "variant %s", v)
		assert.False(t, hasClass(print, "preview-toolbar"), "variant %s", v)

		// same inner tree behind both wrappers
		require.Len(t, print.Kids, 1)
		inner := screen.Kids[1].Kids[0]
		assert.True(t, print.Kids[0].Equal(inner), "variant %s", v)
		assert.True(t, print.Kids[0].Equal(Render(doc, v)), "variant %s", v)
	}
}

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "github.com", linkLabel("https://www.github.com/janedoe/traceview", "Link"))
	assert.Equal(t, "example.co.uk", linkLabel("www.example.co.uk/x", "Link"))
	assert.Equal(t, "janedoe.dev", linkLabel("https://janedoe.dev", "Link"))
	assert.Equal(t, "Link", linkLabel("", "Link"))
}

func TestHTMLEscapesContent(t *testing.T) {
	doc := model.New()
	doc.PersonalInfo.Name = `<script>alert("x")</script>`
	html := Render(doc, Classic).HTML()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHTMLAttrsSorted(t *testing.T) {
	n := text("a", "project-link", "View Project").
		WithAttr("title", "github.com").
		WithAttr("href", "https://github.com/x")
	assert.Equal(t, `<a class="project-link" href="https://github.com/x" title="github.com">View Project</a>`, n.HTML())
}
