package routing

// State is a captured thought's position in the routing lifecycle. Every
// thought moves through these states exactly once per submission.
type State string

const (
	// StateCaptured: just submitted, not yet classified.
	StateCaptured State = "captured"
	// StateClassifying: an oracle call is in flight.
	StateClassifying State = "classifying"
	// StateRoutedCalendar: finalized as a calendar event.
	StateRoutedCalendar State = "routed_calendar"
	// StateRoutedNotes: finalized as a note.
	StateRoutedNotes State = "routed_notes"
	// StateAwaitingManualRoute: parked in the inbox for a manual decision.
	StateAwaitingManualRoute State = "awaiting_manual_route"
	// StateFailed: classification failed; the thought is retained nowhere
	// and the user must resubmit.
	StateFailed State = "failed"
)
