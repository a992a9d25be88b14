package types

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedDocument is the output of one generation cycle: the raw markdown
// returned by the model plus the derived preview HTML. Documents are
// replaced wholesale on each generation, never merged.
type GeneratedDocument struct {
	ID        uuid.UUID `json:"id"`
	Profile   *Profile  `json:"profile,omitempty"`
	Markdown  string    `json:"markdown"`
	HTML      string    `json:"html"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
