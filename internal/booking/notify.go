package booking

import "log"

// Notifier abstracts how failures reach the user. The initial catalog
// load surfaces an alert, filtered reload failures degrade to an
// inline message only.
type Notifier interface {
	Inline(msg string)
	Alert(msg string)
}

// LogNotifier writes notifications to the process log. Used when no
// richer presentation channel is wired in.
type LogNotifier struct{}

func (LogNotifier) Inline(msg string) {
	log.Printf("notify inline: %s", msg)
}

func (LogNotifier) Alert(msg string) {
	log.Printf("notify alert: %s", msg)
}
