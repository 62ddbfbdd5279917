package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maypok86/otter"

	"github.com/lotayaai/lotaya-io/internal/modal"
	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/internal/website/components"
)

const (
	sessionCookie   = "lotaya_session"
	sessionTTL      = 30 * time.Minute
	maxSessions     = 10_000
	chatContextSize = 3
)

const chatGreeting = "Hi! I'm your AI creative assistant. I can help you with logo design, branding ideas, content creation, and more. What would you like to create today?"

var chatGreetingSuggestions = []string{
	"Generate a logo",
	"Create video content",
	"Design social media posts",
	"Build a brand kit",
}

// visitor is the per-browser page state: the modal it has open and the
// assistant transcript.
type visitor struct {
	mu    sync.Mutex
	modal *modal.Controller
	chat  []components.ChatMessage
}

func (v *visitor) resetChat() {
	v.chat = []components.ChatMessage{{
		Type:        components.MessageBot,
		Content:     chatGreeting,
		Suggestions: chatGreetingSuggestions,
	}}
}

// chatContext joins the last few transcript entries as "type: content" lines.
func (v *visitor) chatContext() string {
	recent := v.chat
	if len(recent) > chatContextSize {
		recent = recent[len(recent)-chatContextSize:]
	}
	var out string
	for i, m := range recent {
		if i > 0 {
			out += "\n"
		}
		out += m.Type + ": " + m.Content
	}
	return out
}

// sessions maps the session cookie to a visitor. Expired visitors have
// their modal unmounted so the form is destroyed and the lock released.
// The listener relies on the controller's own locking and never takes
// visitor.mu.
type sessions struct {
	cache    otter.Cache[string, *visitor]
	registry *tools.Registry
	log      *slog.Logger
}

func newSessions(registry *tools.Registry, log *slog.Logger) (*sessions, error) {
	cache, err := otter.MustBuilder[string, *visitor](maxSessions).
		DeletionListener(func(_ string, v *visitor, cause otter.DeletionCause) {
			if cause == otter.Replaced {
				return
			}
			v.modal.Unmount()
		}).
		WithTTL(sessionTTL).
		Build()
	if err != nil {
		return nil, err
	}
	return &sessions{cache: cache, registry: registry, log: log}, nil
}

// get returns the visitor for the request, issuing a cookie when the
// request has none or its session expired.
func (s *sessions) get(w http.ResponseWriter, r *http.Request) *visitor {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if v, ok := s.cache.Get(c.Value); ok {
			s.cache.Set(c.Value, v)
			return v
		}
	}

	id := uuid.NewString()
	v := &visitor{modal: modal.NewController(s.registry, nil, s.log)}
	v.resetChat()
	s.cache.Set(id, v)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
	return v
}

func (s *sessions) close() {
	s.cache.Close()
}
