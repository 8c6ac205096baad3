package feedback

// Definition maps a logical occurrence to the names of the events that
// play for its long, short and meeting variants. Definitions pass
// through the loader untouched; event playback resolves them at request
// time.
type Definition struct {
	// LongEvent is the event name for the long variant.
	LongEvent string

	// ShortEvent is the event name for the short variant.
	ShortEvent string

	// MeetingEvent is the event name for the meeting-profile variant.
	MeetingEvent string
}
