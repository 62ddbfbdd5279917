// Package modal owns the single active tool modal: which tool is open, its
// transition phase, the form state it hosts and the page scroll lock.
package modal

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Phase is the position of the modal in its open/close cycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// ErrSessionActive is returned by Open while another modal is showing.
var ErrSessionActive = errors.New("a modal is already open")

// Session is a read-only view of the active modal.
type Session struct {
	Tool  tools.Descriptor
	Phase Phase
	Form  *tools.FormState
}

// Controller is the state machine closed → opening → open → closing → closed.
// Content teardown happens only on TransitionComplete while closing, or on
// Unmount.
type Controller struct {
	mu       sync.Mutex
	registry *tools.Registry
	lock     *ScrollLock
	log      *slog.Logger

	tool    tools.Descriptor
	phase   Phase
	form    *tools.FormState
	release func()
}

// NewController returns a closed controller. A nil lock gets a private one.
func NewController(registry *tools.Registry, lock *ScrollLock, log *slog.Logger) *Controller {
	if lock == nil {
		lock = &ScrollLock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		registry: registry,
		lock:     lock,
		log:      log.With(logger.Scope("modal")),
	}
}

// ScrollLock returns the lock this controller holds while a modal is shown.
func (c *Controller) ScrollLock() *ScrollLock { return c.lock }

// Open starts the entrance transition for tool id with a fresh form.
func (c *Controller) Open(id string) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseClosed {
		return c.sessionLocked(), ErrSessionActive
	}
	d, err := c.registry.Lookup(id)
	if err != nil {
		return Session{}, err
	}

	c.tool = d
	c.form = tools.NewFormState(d)
	c.phase = PhaseOpening
	c.release = c.lock.Acquire()
	c.log.Debug("modal opening", slog.String("tool", id))
	return c.sessionLocked(), nil
}

// TransitionComplete is the single callback fired when an entrance or exit
// transition ends. It is ignored in the other phases.
func (c *Controller) TransitionComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseOpening:
		c.phase = PhaseOpen
	case PhaseClosing:
		c.teardownLocked()
	}
}

// RequestClose starts the exit transition. Repeated requests while closing,
// or when nothing is open, do nothing. It reports whether a close started.
func (c *Controller) RequestClose() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseOpening && c.phase != PhaseOpen {
		return false
	}
	c.phase = PhaseClosing
	c.log.Debug("modal closing", slog.String("tool", c.tool.ID))
	return true
}

// BackdropClick closes the modal when the click landed on the backdrop
// itself rather than inside the content.
func (c *Controller) BackdropClick(onBackdrop bool) bool {
	if !onBackdrop {
		return false
	}
	return c.RequestClose()
}

// Unmount tears the modal down immediately, skipping any transition. Used
// when the hosting view goes away.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseClosed {
		c.teardownLocked()
	}
}

// Active returns the current session, if any.
func (c *Controller) Active() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseClosed {
		return Session{}, false
	}
	return c.sessionLocked(), true
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Interactive reports whether the hosted form may be used.
func (c *Controller) Interactive() bool {
	return c.Phase() == PhaseOpen
}

func (c *Controller) sessionLocked() Session {
	return Session{Tool: c.tool, Phase: c.phase, Form: c.form}
}

func (c *Controller) teardownLocked() {
	if c.form != nil {
		c.form.Destroy()
	}
	if c.release != nil {
		c.release()
	}
	c.log.Debug("modal closed", slog.String("tool", c.tool.ID))
	c.tool = tools.Descriptor{}
	c.form = nil
	c.release = nil
	c.phase = PhaseClosed
}
