package projects

import (
	"context"
	"sync"
)

// View identifies the shell's top-level navigation target.
type View string

// Top-level views.
const (
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
)

// Valid reports whether the view is a known navigation target.
func (v View) Valid() bool {
	return v == ViewDashboard || v == ViewProjects
}

// Shell owns the minimal UI state: active view, selected project, and the
// single modal slot. Children never reach upward except through it.
type Shell struct {
	mu       sync.RWMutex
	view     View
	selected int
	modal    *ModalContent
	hook     EventHook
}

// NewShell builds a shell starting on the dashboard view.
func NewShell(hook EventHook) *Shell {
	if hook == nil {
		hook = noopEventHook{}
	}
	return &Shell{view: ViewDashboard, hook: hook}
}

// ActiveView returns the current navigation target.
func (s *Shell) ActiveView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SelectedProjectID returns the selected project id, zero when none.
func (s *Shell) SelectedProjectID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Modal returns the open modal payload, nil when closed.
func (s *Shell) Modal() *ModalContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.modal == nil {
		return nil
	}
	modal := *s.modal
	return &modal
}

// Navigate switches the active view. Switching unconditionally clears the
// project selection so re-entering the projects view always lands on the
// list. Unknown views are ignored.
func (s *Shell) Navigate(ctx context.Context, view View) {
	if !view.Valid() {
		return
	}
	s.mu.Lock()
	s.view = view
	s.selected = 0
	s.mu.Unlock()
	_ = s.hook.EventEmitted(ctx, Event{Kind: EventNavigate, View: view})
}

// SelectProject records the selected project id. Resolution against the
// catalog happens at render time; an unresolvable id falls back to the list.
func (s *Shell) SelectProject(ctx context.Context, id int) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	_ = s.hook.EventEmitted(ctx, Event{Kind: EventProjectSelected, ProjectID: id})
}

// ClearSelection returns from the detail view to the project list.
func (s *Shell) ClearSelection(ctx context.Context) {
	s.mu.Lock()
	s.selected = 0
	s.mu.Unlock()
	_ = s.hook.EventEmitted(ctx, Event{Kind: EventProjectSelected})
}

// OpenModal sets the single modal slot, replacing any open modal. Two modals
// are never open simultaneously by construction.
func (s *Shell) OpenModal(ctx context.Context, content ModalContent) {
	s.mu.Lock()
	s.modal = &content
	s.mu.Unlock()
	_ = s.hook.EventEmitted(ctx, Event{Kind: EventModalOpened, Payload: map[string]any{
		"title": content.Title,
	}})
}

// CloseModal clears the modal slot.
func (s *Shell) CloseModal(ctx context.Context) {
	s.mu.Lock()
	s.modal = nil
	s.mu.Unlock()
	_ = s.hook.EventEmitted(ctx, Event{Kind: EventModalClosed})
}
