// Package notify is the toast sink: fire-and-forget notifications the
// rest of the application emits after user-triggered actions.
package notify

import "log"

type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

type Notification struct {
	Title       string
	Description string
	Kind        Kind
}

// Notifier delivers a notification. Callers never await or inspect the
// outcome.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	log.Printf("[%s] %s: %s", n.Kind, n.Title, n.Description)
}

// Discard swallows notifications. Useful in tests.
type Discard struct{}

func (Discard) Notify(Notification) {}
