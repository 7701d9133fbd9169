package http

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

// Handler exposes the editing session over HTTP. It only translates JSON
// payloads into the model's mutation contract; all invariants live below.
type Handler struct {
	store     *Store
	exporter  *usecase.Exporter
	suggester *usecase.Suggester
}

func NewHandler(store *Store, exporter *usecase.Exporter, suggester *usecase.Suggester) *Handler {
	return &Handler{store: store, exporter: exporter, suggester: suggester}
}

// Register mounts all routes. Fixed segments are registered before the
// parameterized collection routes so they win the match.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/sessions", h.CreateSession)
	app.Get("/sessions/:id", h.GetSession)
	app.Put("/sessions/:id/document", h.ReplaceDocument)
	app.Patch("/sessions/:id/personal-info", h.UpdatePersonalInfo)
	app.Patch("/sessions/:id/template", h.SetTemplate)
	app.Get("/sessions/:id/preview", h.Preview)
	app.Post("/sessions/:id/export", h.Export)
	app.Post("/sessions/:id/suggest-skills", h.SuggestSkills)

	app.Post("/sessions/:id/experience/:entryId/bullets", h.AddBullet)
	app.Patch("/sessions/:id/experience/:entryId/bullets/:index", h.UpdateBullet)
	app.Delete("/sessions/:id/experience/:entryId/bullets/:index", h.RemoveBullet)
	app.Post("/sessions/:id/experience/:entryId/suggest-bullets", h.SuggestBullets)

	app.Post("/sessions/:id/:collection", h.AddEntry)
	app.Patch("/sessions/:id/:collection/:entryId", h.UpdateEntry)
	app.Delete("/sessions/:id/:collection/:entryId", h.RemoveEntry)
}

func (h *Handler) sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess := h.store.Create()
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	sess, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

// ReplaceDocument swaps in a whole client-supplied document after validating
// it against the resume schema.
func (h *Handler) ReplaceDocument(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateDocumentMap(raw); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var doc model.Document
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	sess, ok := h.store.Update(id, func(model.Document) model.Document { return doc })
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

type fieldUpdate struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	var req fieldUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	value, _ := req.Value.(string)
	sess, ok := h.store.Update(id, func(d model.Document) model.Document {
		return model.UpdatePersonalInfo(d, req.Field, value)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	var req struct {
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	v, err := render.ParseVariant(req.Template)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !h.store.SetTemplate(id, string(v)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(fiber.Map{"template": string(v)})
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	var fn func(model.Document) model.Document
	switch c.Params("collection") {
	case "education":
		fn = model.AddEducation
	case "experience":
		fn = model.AddExperience
	case "skills":
		fn = model.AddSkill
	case "projects":
		fn = model.AddProject
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown collection"})
	}
	sess, ok := h.store.Update(id, fn)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")
	var req fieldUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	var fn func(model.Document) model.Document
	switch c.Params("collection") {
	case "education":
		value, _ := req.Value.(string)
		fn = func(d model.Document) model.Document { return model.UpdateEducation(d, entryID, req.Field, value) }
	case "experience":
		fn = func(d model.Document) model.Document { return model.UpdateExperience(d, entryID, req.Field, req.Value) }
	case "skills":
		value, _ := req.Value.(string)
		fn = func(d model.Document) model.Document { return model.UpdateSkill(d, entryID, req.Field, value) }
	case "projects":
		value, _ := req.Value.(string)
		fn = func(d model.Document) model.Document { return model.UpdateProject(d, entryID, req.Field, value) }
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown collection"})
	}
	sess, ok := h.store.Update(id, fn)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")
	var fn func(model.Document) model.Document
	switch c.Params("collection") {
	case "education":
		fn = func(d model.Document) model.Document { return model.RemoveEducation(d, entryID) }
	case "experience":
		fn = func(d model.Document) model.Document { return model.RemoveExperience(d, entryID) }
	case "skills":
		fn = func(d model.Document) model.Document { return model.RemoveSkill(d, entryID) }
	case "projects":
		fn = func(d model.Document) model.Document { return model.RemoveProject(d, entryID) }
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown collection"})
	}
	sess, ok := h.store.Update(id, fn)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

func (h *Handler) AddBullet(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")
	sess, ok := h.store.Update(id, func(d model.Document) model.Document {
		return model.AddBullet(d, entryID)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handler) UpdateBullet(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bullet index"})
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sess, ok := h.store.Update(id, func(d model.Document) model.Document {
		return model.UpdateBulletAt(d, entryID, index, req.Text)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

func (h *Handler) RemoveBullet(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid bullet index"})
	}
	sess, ok := h.store.Update(id, func(d model.Document) model.Document {
		return model.RemoveBulletAt(d, entryID, index)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

// SuggestBullets regenerates the target experience entry's bullets from the
// suggestion source. The busy flag rejects a second request while one is in
// flight; the merge tolerates the entry disappearing in the meantime.
func (h *Handler) SuggestBullets(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	entryID := c.Params("entryId")

	sess, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	var position, description string
	found := false
	for _, e := range sess.Document.Experience {
		if e.ID == entryID {
			position, description = e.Position, e.Description
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience entry not found"})
	}
	if position == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "position and description are required to generate bullets"})
	}

	if !h.store.BeginGenerate(id) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "a suggestion request is already in flight"})
	}
	defer h.store.EndGenerate(id)

	bullets := h.suggester.RequestBullets(c.Context(), position, description)
	sess, ok = h.store.Update(id, func(d model.Document) model.Document {
		return usecase.ApplyBullets(d, entryID, bullets)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(fiber.Map{"bullets": bullets, "session": sess})
}

// SuggestSkills suggests skills from the most recent experience entry's
// position and merges them without duplicating existing skill names.
func (h *Handler) SuggestSkills(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	sess, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	position := usecase.LatestPosition(sess.Document)
	if position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "an experience entry with a position is required"})
	}

	if !h.store.BeginGenerate(id) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "a suggestion request is already in flight"})
	}
	defer h.store.EndGenerate(id)

	names := h.suggester.RequestSkills(c.Context(), position)
	sess, ok = h.store.Update(id, func(d model.Document) model.Document {
		return usecase.MergeSkills(d, names)
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(fiber.Map{"suggested": names, "session": sess})
}

// Preview returns the screen-mode HTML for the requested template, defaulting
// to the session's active one.
func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	sess, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	variant, err := h.variantFor(c, sess.Template)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := h.exporter.ComposeHTML(sess.Document, variant, render.ModeScreen)
	if err != nil {
		log.Printf("handler: preview compose failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render preview"})
	}
	c.Type("html")
	return c.SendString(html)
}

// Export captures the print-mode render as a PDF download.
func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}
	sess, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	variant, err := h.variantFor(c, sess.Template)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pdf, filename, err := h.exporter.Export(c.Context(), sess.ID, sess.Document, variant)
	if err != nil {
		log.Printf("handler: export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Type("pdf")
	return c.Send(pdf)
}

func (h *Handler) variantFor(c *fiber.Ctx, active string) (render.Variant, error) {
	name := c.Query("template", active)
	return render.ParseVariant(name)
}
