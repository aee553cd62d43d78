package projects

import (
	"context"
	"sync"
	"time"
)

// ActionKind identifies one of the simulated budget-panel actions.
type ActionKind string

// Simulated actions.
const (
	ActionApproveProgress ActionKind = "approve_progress"
	ActionRequestFunds    ActionKind = "request_funds"
)

// ActionState is the simulated action's machine state.
type ActionState string

// Action states. Transitions: idle -> loading -> success -> idle. Triggers
// while not idle are no-ops.
const (
	ActionIdle    ActionState = "idle"
	ActionLoading ActionState = "loading"
	ActionSuccess ActionState = "success"
)

// Default delays mirroring the simulated backend call: T1 before success, T2
// before returning to idle.
const (
	DefaultLoadingDelay = 1500 * time.Millisecond
	DefaultSuccessHold  = 2500 * time.Millisecond
)

type actionKey struct {
	projectID int
	kind      ActionKind
}

// ActionRunner drives the simulated asynchronous actions. Timers are scoped
// to the runner's lifetime: Close cancels in-flight transitions so no state
// update targets a torn-down view.
type ActionRunner struct {
	loadingDelay time.Duration
	successHold  time.Duration
	hook         EventHook
	telemetry    Telemetry

	mu     sync.Mutex
	states map[actionKey]ActionState
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// ActionRunnerOption customizes runner behavior.
type ActionRunnerOption func(*ActionRunner)

// WithActionDelays overrides the transition delays.
func WithActionDelays(loading, hold time.Duration) ActionRunnerOption {
	return func(r *ActionRunner) {
		r.loadingDelay = loading
		r.successHold = hold
	}
}

// WithActionHook wires an event hook receiving every state transition.
func WithActionHook(hook EventHook) ActionRunnerOption {
	return func(r *ActionRunner) {
		r.hook = hook
	}
}

// WithActionTelemetry wires telemetry for triggers.
func WithActionTelemetry(t Telemetry) ActionRunnerOption {
	return func(r *ActionRunner) {
		r.telemetry = t
	}
}

// NewActionRunner builds a runner with the default delays.
func NewActionRunner(optFns ...ActionRunnerOption) *ActionRunner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &ActionRunner{
		loadingDelay: DefaultLoadingDelay,
		successHold:  DefaultSuccessHold,
		hook:         noopEventHook{},
		states:       make(map[actionKey]ActionState),
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range optFns {
		opt(r)
	}
	if r.hook == nil {
		r.hook = noopEventHook{}
	}
	r.telemetry = normalizeTelemetry(r.telemetry)
	return r
}

// State returns the current machine state for the project's action.
func (r *ActionRunner) State(projectID int, kind ActionKind) ActionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.states[actionKey{projectID, kind}]; ok {
		return state
	}
	return ActionIdle
}

// Trigger starts the action's loading cycle. It reports false when the action
// is already in flight; re-entrant triggers are no-ops while not idle.
func (r *ActionRunner) Trigger(ctx context.Context, projectID int, kind ActionKind) bool {
	key := actionKey{projectID, kind}

	r.mu.Lock()
	if r.ctx.Err() != nil {
		r.mu.Unlock()
		return false
	}
	if state, ok := r.states[key]; ok && state != ActionIdle {
		r.mu.Unlock()
		return false
	}
	r.states[key] = ActionLoading
	r.mu.Unlock()

	r.telemetry.Record(ctx, "projects.action.trigger", map[string]any{
		"project_id": projectID,
		"action":     string(kind),
	})
	r.emit(projectID, kind, ActionLoading)

	r.wg.Add(1)
	go r.run(key)
	return true
}

func (r *ActionRunner) run(key actionKey) {
	defer r.wg.Done()
	if !r.sleep(r.loadingDelay) {
		r.reset(key)
		return
	}
	r.transition(key, ActionSuccess)
	if !r.sleep(r.successHold) {
		r.reset(key)
		return
	}
	r.transition(key, ActionIdle)
}

// sleep waits for d, returning false when the runner is closed first.
func (r *ActionRunner) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-r.ctx.Done():
		return false
	}
}

func (r *ActionRunner) transition(key actionKey, state ActionState) {
	r.mu.Lock()
	r.states[key] = state
	r.mu.Unlock()
	r.emit(key.projectID, key.kind, state)
}

// reset silently returns the machine to idle without emitting, used during
// teardown so cancelled timers never notify torn-down views.
func (r *ActionRunner) reset(key actionKey) {
	r.mu.Lock()
	r.states[key] = ActionIdle
	r.mu.Unlock()
}

func (r *ActionRunner) emit(projectID int, kind ActionKind, state ActionState) {
	_ = r.hook.EventEmitted(r.ctx, Event{
		Kind:      EventActionState,
		ProjectID: projectID,
		Action:    kind,
		State:     state,
	})
}

// Close cancels pending transitions and waits for in-flight goroutines.
func (r *ActionRunner) Close() {
	r.cancel()
	r.wg.Wait()
}
