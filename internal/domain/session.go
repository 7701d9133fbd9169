package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Session holds the single live document snapshot for one editing session.
// Mutations replace Document wholesale; nothing edits it in place.
type Session struct {
	ID         uuid.UUID      `json:"id"`
	Document   model.Document `json:"document"`
	Template   string         `json:"template"`
	Generating bool           `json:"generating"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// ExportRecord describes one completed PDF capture. Persisting it is
// best-effort; the export itself never depends on it.
type ExportRecord struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Template  string    `json:"template"`
	Filename  string    `json:"filename"`
	FileSize  int       `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}
