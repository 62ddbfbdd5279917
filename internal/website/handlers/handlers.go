package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/lotayaai/lotaya-io/internal/modal"
	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/internal/website/components"
	"github.com/lotayaai/lotaya-io/pkg/logger"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// Handlers serves the landing page and the tool modals. Tool submissions
// are forwarded to the generation API through caller.
type Handlers struct {
	registry *tools.Registry
	caller   tools.Caller
	sessions *sessions
	log      *slog.Logger
}

func New(registry *tools.Registry, caller tools.Caller, log *slog.Logger) (*Handlers, error) {
	log = log.With(logger.Scope("website"))
	s, err := newSessions(registry, log)
	if err != nil {
		return nil, err
	}
	return &Handlers{registry: registry, caller: caller, sessions: s, log: log}, nil
}

// Close drops every visitor session.
func (h *Handlers) Close() {
	h.sessions.close()
}

// Routes mounts the page handlers on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/", h.LandingPage)
	r.Get("/health", Health)
	r.Route("/tools/{id}", func(r chi.Router) {
		r.Get("/", h.OpenTool)
		r.Post("/", h.SubmitTool)
		r.Post("/reset", h.ResetTool)
		r.Get("/close", h.CloseTool)
	})
}

func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	v := h.sessions.get(w, r)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.modal.Unmount()
	h.render(w, http.StatusOK, h.landing(false))
}

// OpenTool shows the modal for the tool. Opening a different tool replaces
// the one currently shown; reloading the open tool keeps its state.
func (h *Handlers) OpenTool(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	v := h.sessions.get(w, r)
	v.mu.Lock()
	defer v.mu.Unlock()

	fresh, err := h.ensureOpen(v, d)
	if err != nil {
		h.fail(w, err)
		return
	}
	phase := modal.PhaseOpen
	if fresh {
		phase = modal.PhaseOpening
	}
	h.renderModal(w, http.StatusOK, v, phase)
}

// SubmitTool validates the posted fields and forwards them to the API. The
// visitor is unlocked while the request is in flight, so closing the modal
// or browsing the page does not wait on it.
func (h *Handlers) SubmitTool(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	v := h.sessions.get(w, r)
	v.mu.Lock()
	form, attempt, message, err := h.begin(v, d, r)
	if err != nil {
		defer v.mu.Unlock()
		var verr *tools.ValidationError
		switch {
		case errors.As(err, &verr):
			h.renderModal(w, http.StatusUnprocessableEntity, v, modal.PhaseOpen)
		case errors.Is(err, tools.ErrResultShown), errors.Is(err, tools.ErrInFlight):
			h.renderModal(w, http.StatusConflict, v, modal.PhaseOpen)
		default:
			h.fail(w, err)
		}
		return
	}
	v.mu.Unlock()

	applied, err := tools.Perform(r.Context(), h.caller, form, attempt)
	if err != nil {
		h.log.Warn("tool request failed",
			slog.String("tool", d.ID),
			logger.Error(err),
		)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	s, active := v.modal.Active()
	if !applied || !active || s.Form != form {
		h.log.Debug("tool response dropped", slog.String("tool", d.ID))
		target := "/"
		if active {
			target = "/tools/" + s.Tool.ID
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	if d.ID == tools.Chat {
		h.recordChat(v, form, message)
	}
	h.renderModal(w, http.StatusOK, v, modal.PhaseOpen)
}

// begin opens d if needed, applies the posted fields and starts an attempt.
// The caller holds v.mu.
func (h *Handlers) begin(v *visitor, d tools.Descriptor, r *http.Request) (*tools.FormState, tools.Attempt, string, error) {
	if _, err := h.ensureOpen(v, d); err != nil {
		return nil, tools.Attempt{}, "", err
	}
	session, _ := v.modal.Active()
	form := session.Form

	if err := h.applyFields(form, d, r); err != nil {
		return form, tools.Attempt{}, "", err
	}

	var message string
	if d.ID == tools.Chat {
		message = form.Snapshot().Fields.String("message")
		if err := form.SetField("context", v.chatContext()); err != nil {
			return form, tools.Attempt{}, "", err
		}
	}

	attempt, err := form.Begin()
	return form, attempt, message, err
}

// ResetTool implements "Try another": the result is cleared and the form
// returns to its defaults.
func (h *Handlers) ResetTool(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	v := h.sessions.get(w, r)
	v.mu.Lock()
	if s, active := v.modal.Active(); active && s.Tool.ID == d.ID {
		if err := s.Form.TryAnother(); err != nil {
			h.log.Debug("reset rejected", slog.String("tool", d.ID), logger.Error(err))
		}
	}
	v.mu.Unlock()

	http.Redirect(w, r, "/tools/"+d.ID, http.StatusSeeOther)
}

// CloseTool runs the exit transition to completion. A close requested by a
// click on the backdrop carries via=backdrop.
func (h *Handlers) CloseTool(w http.ResponseWriter, r *http.Request) {
	v := h.sessions.get(w, r)
	v.mu.Lock()
	if r.URL.Query().Get("via") == "backdrop" {
		v.modal.BackdropClick(true)
	} else {
		v.modal.RequestClose()
	}
	v.modal.TransitionComplete()
	v.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (tools.Descriptor, bool) {
	d, err := h.registry.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		h.render(w, http.StatusNotFound, h.notFound())
		return tools.Descriptor{}, false
	}
	return d, true
}

// ensureOpen makes d the active tool. It reports whether a new session was
// opened.
func (h *Handlers) ensureOpen(v *visitor, d tools.Descriptor) (bool, error) {
	if s, ok := v.modal.Active(); ok {
		if s.Tool.ID == d.ID {
			return false, nil
		}
		v.modal.Unmount()
	}
	if _, err := v.modal.Open(d.ID); err != nil {
		return false, err
	}
	v.modal.TransitionComplete()
	if d.ID == tools.Chat {
		v.resetChat()
	}
	return true, nil
}

func (h *Handlers) applyFields(form *tools.FormState, d tools.Descriptor, r *http.Request) error {
	for _, f := range d.Form.Schema() {
		if f.Hidden {
			continue
		}
		var value any
		if f.Kind == tools.KindMultiChoice {
			value = r.PostForm[f.Name]
		} else {
			values, present := r.PostForm[f.Name]
			if !present {
				continue
			}
			value = values[0]
		}
		if err := form.SetField(f.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// recordChat appends the exchange to the transcript and clears the form for
// the next message.
func (h *Handlers) recordChat(v *visitor, form *tools.FormState, message string) {
	snap := form.Snapshot()
	v.chat = append(v.chat, components.ChatMessage{Type: components.MessageUser, Content: message})

	reply := components.ChatMessage{Type: components.MessageBot, Content: snap.ErrorMessage}
	if snap.Status == tools.StatusSucceeded {
		var res sdk.ChatResult
		if err := snap.Result.Decode(&res); err != nil {
			reply.Content = form.Tool().Form.FallbackMessage()
		} else {
			reply.Content = res.Response
			reply.Suggestions = res.Suggestions
		}
	}
	v.chat = append(v.chat, reply)

	if err := form.TryAnother(); err != nil {
		h.log.Debug("chat reset rejected", logger.Error(err))
	}
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	h.log.Error("tool page failed", logger.Error(err))
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}

func (h *Handlers) renderModal(w http.ResponseWriter, status int, v *visitor, phase modal.Phase) {
	s, ok := v.modal.Active()
	if !ok {
		h.render(w, status, h.landing(false))
		return
	}
	snap := s.Form.Snapshot()

	var body g.Node
	switch {
	case s.Tool.ID == tools.Chat:
		body = g.Group([]g.Node{
			components.ChatTranscript(v.chat),
			components.ToolForm(s.Tool, snap),
		})
	case snap.Status == tools.StatusSucceeded:
		body = components.ToolResult(s.Tool, snap.Result)
	default:
		body = components.ToolForm(s.Tool, snap)
	}

	h.render(w, status, h.landing(true, components.ToolModal(s.Tool, phase.String(), body)))
}

func (h *Handlers) landing(locked bool, overlay ...g.Node) g.Node {
	return components.Layout(
		components.PageConfig{ScrollLocked: locked},
		components.Topbar(),
		components.Hero(),
		components.ToolGrid(h.registry.All()),
		components.Features(),
		components.Benefits(),
		components.PageFooter(),
		g.Group(overlay),
	)
}

func (h *Handlers) notFound() g.Node {
	return components.Layout(
		components.PageConfig{Title: "Tool not found - Lotaya AI"},
		components.Topbar(),
		components.NotFound(),
		components.PageFooter(),
	)
}

func (h *Handlers) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Error("render page", logger.Error(err))
	}
}
