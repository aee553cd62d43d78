// Package activity fans out audit events about portfolio interactions to
// pluggable hooks (user activity sinks, log forwarders).
package activity

import (
	"context"
	"strings"
	"time"
)

// DefaultChannel tags events that do not declare their own channel.
const DefaultChannel = "projects"

// Event is one auditable interaction.
type Event struct {
	Verb           string
	ActorID        string
	UserID         string
	TenantID       string
	ObjectType     string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any
	OccurredAt     time.Time
}

// Hook receives normalized events.
type Hook interface {
	Notify(ctx context.Context, evt Event) error
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, evt Event) error

// Notify invokes the wrapped function.
func (f HookFunc) Notify(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Hooks is an ordered hook chain.
type Hooks []Hook

// Notify normalizes the event and delivers it to every hook. Events without
// a verb or object are skipped. The first hook error stops delivery.
func (h Hooks) Notify(ctx context.Context, evt Event) error {
	evt = NormalizeEvent(evt)
	if evt.Verb == "" || evt.ObjectType == "" || evt.ObjectID == "" {
		return nil
	}
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeEvent trims identifier fields and clones mutable members so hooks
// cannot alias the caller's maps and slices.
func NormalizeEvent(evt Event) Event {
	evt.Verb = strings.TrimSpace(evt.Verb)
	evt.ObjectType = strings.TrimSpace(evt.ObjectType)
	evt.ObjectID = strings.TrimSpace(evt.ObjectID)
	evt.Channel = strings.TrimSpace(evt.Channel)
	if evt.Channel == "" {
		evt.Channel = DefaultChannel
	}
	if evt.Metadata != nil {
		meta := make(map[string]any, len(evt.Metadata))
		for k, v := range evt.Metadata {
			meta[k] = v
		}
		evt.Metadata = meta
	}
	if evt.Recipients != nil {
		evt.Recipients = append([]string(nil), evt.Recipients...)
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	return evt
}

// Config toggles emission.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter guards a hook chain behind a config switch.
type Emitter struct {
	hooks   Hooks
	config  Config
	enabled bool
}

// NewEmitter builds an emitter. An emitter without hooks is disabled no
// matter what the config says.
func NewEmitter(hooks Hooks, config Config) *Emitter {
	if config.Channel == "" {
		config.Channel = DefaultChannel
	}
	return &Emitter{
		hooks:   hooks,
		config:  config,
		enabled: config.Enabled && len(hooks) > 0,
	}
}

// Enabled reports whether Emit will deliver anything.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled
}

// Emit delivers the event through the hook chain, stamping the configured
// channel when the event has none.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if !e.Enabled() {
		return nil
	}
	if evt.Channel == "" {
		evt.Channel = e.config.Channel
	}
	return e.hooks.Notify(ctx, evt)
}
