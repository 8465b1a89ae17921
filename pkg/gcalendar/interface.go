package gcalendar

import "context"

// IClient is the calendar surface used by the reminder service.
type IClient interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

// Ensure Client implements IClient interface
var _ IClient = (*Client)(nil)
