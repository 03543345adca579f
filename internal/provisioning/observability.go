package provisioning

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Logger is the minimal logging surface steps depend on.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer defines the interface for structured observability during a run.
type Observer interface {
	Logger

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType
	Step      string
	Message   string
	Resource  string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventStepStarted indicates a step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepFailed indicates a step failed fatally.
	EventStepFailed EventType = "step.failed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists and the
	// failure was ignored.
	EventResourceExists EventType = "resource.exists"
)

// ConsoleObserver implements Observer on top of slog.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	slog.Info(o.formatEvent(event))
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Step != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Step))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, step, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("creating %s", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, step, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Step:     step,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceExists logs when a resource already exists and the create was
// ignored.
func LogResourceExists(observer Observer, step, detail string) {
	observer.Event(Event{
		Type:    EventResourceExists,
		Step:    step,
		Message: fmt.Sprintf("already exists, continuing (%s)", detail),
	})
}
