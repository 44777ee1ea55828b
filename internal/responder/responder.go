package responder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/civicpulse/internal/models"
	"github.com/spacesedan/civicpulse/internal/session"
)

// Generator is a conversational backend. history holds the turns before
// message, oldest first.
type Generator interface {
	Generate(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

type Responder struct {
	selector  *Selector
	store     session.Store
	generator Generator
}

type Option func(*Responder)

// WithGenerator asks g first and only uses canned replies when it fails.
func WithGenerator(g Generator) Option {
	return func(r *Responder) {
		r.generator = g
	}
}

func New(selector *Selector, store session.Store, opts ...Option) *Responder {
	if selector == nil {
		selector = NewSelector(nil)
	}
	if store == nil {
		store = session.NewMemoryStore()
	}

	r := &Responder{
		selector: selector,
		store:    store,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond answers one chat turn and records both sides of it in the
// session. A request without a session id starts a new session; a request
// carrying context replaces the stored history with it.
func (r *Responder) Respond(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	id := req.SessionID
	if id == "" {
		id = session.NewID()
	}

	sess, err := r.store.Load(ctx, id)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("failed to load session: %w", err)
	}
	if len(req.Context) > 0 {
		sess.Replace(req.Context)
	}

	history := sess.Clone().History
	sess.Append(models.RoleUser, req.Message)

	resp := models.ChatResponse{
		SessionID: id,
		Topic:     r.selector.Classify(req.Message),
	}

	if r.generator != nil {
		reply, err := r.generator.Generate(ctx, history, req.Message)
		switch {
		case err != nil:
			slog.Warn("[Responder] Generator failed, using canned reply",
				slog.String("session_id", id),
				slog.String("error", err.Error()))
		case strings.TrimSpace(reply) == "":
			slog.Warn("[Responder] Generator returned an empty reply, using canned reply",
				slog.String("session_id", id))
		default:
			resp.Response = reply
			resp.Generated = true
		}
	}

	if !resp.Generated {
		resp.Response = r.selector.Select(resp.Topic, req.Message)
	}

	sess.Append(models.RoleAssistant, resp.Response)
	if err := r.store.Save(ctx, sess); err != nil {
		return models.ChatResponse{}, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Debug("[Responder] Replied",
		slog.String("session_id", id),
		slog.String("topic", resp.Topic),
		slog.Bool("generated", resp.Generated),
		slog.Int("history", len(sess.History)))

	return resp, nil
}

// Reset forgets everything recorded for a session. The id stays usable and
// the next turn starts from an empty history.
func (r *Responder) Reset(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	slog.Debug("[Responder] Session reset", slog.String("session_id", id))
	return nil
}
