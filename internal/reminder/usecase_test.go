package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-assistant/pkg/datemath"
	"voice-assistant/pkg/gcalendar"
	pkgLog "voice-assistant/pkg/log"
)

type mockCalendar struct {
	created   []gcalendar.CreateEventRequest
	listReq   gcalendar.ListEventsRequest
	events    []gcalendar.Event
	createErr error
	listErr   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, HtmlLink: "https://calendar.google.com/evt-1"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listReq = req
	return m.events, m.listErr
}

var base = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, cal gcalendar.IClient) *usecase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := New(Config{Timezone: "UTC", ReminderMinutes: 10}, cal, parser, pkgLog.NewNop()).(*usecase)
	uc.now = func() time.Time { return base }
	return uc
}

func TestCreate(t *testing.T) {
	t.Run("timed reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)

		res := uc.Create(context.Background(), "9:00pm 25th june meeting with team")

		require.True(t, res.OK)
		assert.Equal(t, "Reminder set for Tue 25 Jun 2024 at 9:00 PM: meeting with team.", res.Message)
		assert.Equal(t, "https://calendar.google.com/evt-1", res.Link)
		require.Len(t, cal.created, 1)
		req := cal.created[0]
		assert.Equal(t, "Meeting with team", req.Summary)
		assert.Equal(t, gcalendar.DefaultCalendarID, req.CalendarID)
		assert.Equal(t, time.Date(2024, 6, 25, 21, 0, 0, 0, time.UTC), req.StartTime)
		assert.Equal(t, 30*time.Minute, req.EndTime.Sub(req.StartTime))
		assert.False(t, req.AllDay)
		assert.EqualValues(t, 10, req.ReminderMinutes)
	})

	t.Run("all day reminder", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)

		res := uc.Create(context.Background(), "25th june pay rent")

		require.True(t, res.OK)
		assert.True(t, res.AllDay)
		assert.Equal(t, "Reminder set for Tue 25 Jun 2024: pay rent.", res.Message)
		req := cal.created[0]
		assert.True(t, req.AllDay)
		assert.Equal(t, req.StartTime.AddDate(0, 0, 1), req.EndTime)
		assert.Zero(t, req.ReminderMinutes)
	})

	t.Run("missing title uses default", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)

		res := uc.Create(context.Background(), "at 6pm")

		require.True(t, res.OK)
		assert.Equal(t, "Reminder", cal.created[0].Summary)
	})

	t.Run("no date or time", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)

		res := uc.Create(context.Background(), "buy milk")

		assert.False(t, res.OK)
		assert.Equal(t, MsgUsage, res.Message)
		assert.Empty(t, cal.created)
	})

	t.Run("calendar not configured", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		res := uc.Create(context.Background(), "9am standup")

		assert.False(t, res.OK)
		assert.Equal(t, MsgUnconfigured, res.Message)
	})

	t.Run("calendar error", func(t *testing.T) {
		cal := &mockCalendar{createErr: errors.New("googleapi: Error 403")}
		uc := newTestUseCase(t, cal)

		res := uc.Create(context.Background(), "9am standup")

		assert.False(t, res.OK)
		assert.Equal(t, MsgCreateFailed, res.Message)
		assert.NotContains(t, res.Message, "403")
	})
}

func TestUpcoming(t *testing.T) {
	t.Run("maps events", func(t *testing.T) {
		day := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		cal := &mockCalendar{events: []gcalendar.Event{
			{Summary: "Standup", StartTime: base.Add(time.Hour), EndTime: base.Add(90 * time.Minute)},
			{Summary: "Pay rent", StartTime: day, EndTime: day.AddDate(0, 0, 1), AllDay: true},
		}}
		uc := newTestUseCase(t, cal)

		entries, err := uc.Upcoming(context.Background(), 72*time.Hour)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.False(t, entries[0].AllDay)
		assert.True(t, entries[1].AllDay)
		assert.Equal(t, base, cal.listReq.TimeMin)
		assert.Equal(t, base.Add(72*time.Hour), cal.listReq.TimeMax)
	})

	t.Run("no calendar", func(t *testing.T) {
		uc := newTestUseCase(t, nil)
		_, err := uc.Upcoming(context.Background(), time.Hour)
		assert.ErrorIs(t, err, ErrNoCalendar)
	})

	t.Run("list error", func(t *testing.T) {
		uc := newTestUseCase(t, &mockCalendar{listErr: errors.New("boom")})
		_, err := uc.Upcoming(context.Background(), time.Hour)
		assert.Error(t, err)
	})
}
