package gcalendar

import "context"

// ICalendar defines the interface for calendar event creation.
// Implementations are safe for concurrent use.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
