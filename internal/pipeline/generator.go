// Package pipeline runs one README generation cycle: build the prompt, call
// the generation model once, classify any failure, and produce the rendered
// document.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/amarzeus/readme-studio/internal/llm"
	"github.com/amarzeus/readme-studio/internal/prompt"
	"github.com/amarzeus/readme-studio/internal/render"
	"github.com/amarzeus/readme-studio/internal/types"
)

// ErrBusy is returned when a generation cycle is already in flight. There is
// no queue: callers retry after the current cycle finishes.
var ErrBusy = errors.New("a generation is already in progress")

// Generator orchestrates generation cycles. At most one request is in
// flight at a time; an issued request always runs to completion.
type Generator struct {
	client llm.Client
	logger *zap.Logger
	busy   *semaphore.Weighted
}

// New creates a Generator around an LLM client.
func New(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client: client,
		logger: logger,
		busy:   semaphore.NewWeighted(1),
	}
}

// Generate runs one full cycle for a profile. On failure the returned error
// is always a *llm.GenerationError carrying the fixed user-facing message.
func (g *Generator) Generate(ctx context.Context, profile *types.Profile) (*types.GeneratedDocument, error) {
	if !g.busy.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer g.busy.Release(1)

	start := time.Now()
	instructions := prompt.Build(profile)

	g.logger.Info("generation cycle started",
		zap.String("model", g.client.Model()),
		zap.String("style", string(profile.GenerationStyle.Normalize())),
		zap.Int("prompt_bytes", len(instructions)))

	text, err := g.callModel(ctx, instructions)
	if err != nil {
		genErr := llm.ClassifyError(err)
		g.logger.Error("generation cycle failed",
			zap.String("class", string(genErr.Class)),
			zap.Error(genErr.Cause),
			zap.Duration("elapsed", time.Since(start)))
		return nil, genErr
	}

	text = llm.StripCodeFence(text)

	doc := &types.GeneratedDocument{
		ID:        uuid.New(),
		Profile:   profile,
		Markdown:  text,
		HTML:      render.Render(text),
		Model:     g.client.Model(),
		CreatedAt: time.Now().UTC(),
	}

	g.logger.Info("generation cycle finished",
		zap.String("document_id", doc.ID.String()),
		zap.Int("markdown_bytes", len(doc.Markdown)),
		zap.Duration("elapsed", time.Since(start)))

	return doc, nil
}

// callModel issues the single provider request. A panic from the provider
// SDK is recovered into an error so the unknown-failure message applies
// instead of crashing the cycle.
func (g *Generator) callModel(ctx context.Context, instructions string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			// Non-error panic values classify as the unknown failure.
			g.logger.Error("provider panicked with non-error value", zap.Any("value", r))
			err = llm.ErrNonErrorFailure
		}
	}()
	return g.client.GenerateContent(ctx, instructions)
}

// ErrorDocument builds the fixed error placeholder document shown in place
// of generated content when a cycle fails.
func ErrorDocument() *types.GeneratedDocument {
	return &types.GeneratedDocument{
		ID:        uuid.New(),
		Markdown:  ErrorMarkdown,
		HTML:      render.Render(ErrorMarkdown),
		CreatedAt: time.Now().UTC(),
	}
}

// PlaceholderDocument builds the initial preview document.
func PlaceholderDocument() *types.GeneratedDocument {
	return &types.GeneratedDocument{
		ID:        uuid.New(),
		Markdown:  PlaceholderMarkdown,
		HTML:      render.Render(PlaceholderMarkdown),
		CreatedAt: time.Now().UTC(),
	}
}
