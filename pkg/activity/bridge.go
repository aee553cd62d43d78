package activity

import (
	"context"
	"strconv"

	projects "github.com/goliatone/go-projects/components/projects"
)

// Bridge adapts shell/action/contract events into audit events so the same
// emitter observes UI interactions and contract changes.
type Bridge struct {
	emitter *Emitter
	actorID string
}

// NewBridge wires an emitter. ActorID identifies the session user when the
// transport knows it; it may be empty.
func NewBridge(emitter *Emitter, actorID string) *Bridge {
	return &Bridge{emitter: emitter, actorID: actorID}
}

var _ projects.EventHook = (*Bridge)(nil)

// EventEmitted maps the event to an audit record and emits it. Delivery
// failures are swallowed; auditing never blocks the interaction itself.
func (b *Bridge) EventEmitted(ctx context.Context, event projects.Event) error {
	if b == nil || !b.emitter.Enabled() {
		return nil
	}
	evt, ok := b.translate(event)
	if !ok {
		return nil
	}
	_ = b.emitter.Emit(ctx, evt)
	return nil
}

func (b *Bridge) translate(event projects.Event) (Event, bool) {
	out := Event{
		ActorID:  b.actorID,
		Metadata: map[string]any{},
	}
	switch event.Kind {
	case projects.EventNavigate:
		out.Verb = "navigate"
		out.ObjectType = "view"
		out.ObjectID = string(event.View)
	case projects.EventProjectSelected:
		if event.ProjectID == 0 {
			return Event{}, false
		}
		out.Verb = "select"
		out.ObjectType = "project"
		out.ObjectID = strconv.Itoa(event.ProjectID)
	case projects.EventActionState:
		out.Verb = "action"
		out.ObjectType = "project"
		out.ObjectID = strconv.Itoa(event.ProjectID)
		out.Metadata["action"] = string(event.Action)
		out.Metadata["state"] = string(event.State)
	case projects.EventContractChanged:
		out.Verb = "contract"
		out.ObjectType = "project"
		out.ObjectID = strconv.Itoa(event.ProjectID)
		for k, v := range event.Payload {
			out.Metadata[k] = v
		}
	default:
		return Event{}, false
	}
	return out, true
}
