package datemath_test

import (
	"testing"
	"time"

	"voice-assistant/pkg/datemath"
)

func TestParseReminder(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name    string
		text    string
		want    time.Time
		allDay  bool
		message string
		wantErr bool
	}{
		{
			name:    "clock and day month",
			text:    "9:00pm 25th june meeting with team",
			want:    time.Date(2024, 6, 25, 21, 0, 0, 0, time.UTC),
			message: "meeting with team",
		},
		{
			name:    "month day and am",
			text:    "11am october 20 programming contest",
			want:    time.Date(2024, 10, 20, 11, 0, 0, 0, time.UTC),
			message: "programming contest",
		},
		{
			name:    "past date rolls to next year",
			text:    "8:30am 2nd january dentist",
			want:    time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC),
			message: "dentist",
		},
		{
			name:    "time only later today",
			text:    "at 6pm call mom",
			want:    time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			message: "call mom",
		},
		{
			name:    "time only already passed",
			text:    "9am standup",
			want:    time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
			message: "standup",
		},
		{
			name:    "24 hour clock tomorrow",
			text:    "tomorrow 14:45 review pr",
			want:    time.Date(2024, 5, 2, 14, 45, 0, 0, time.UTC),
			message: "review pr",
		},
		{
			name:    "date only is all day",
			text:    "next friday pay rent",
			want:    time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			allDay:  true,
			message: "pay rent",
		},
		{
			name:    "midnight",
			text:    "12am 3rd may backup",
			want:    time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			message: "backup",
		},
		{
			name: "time without message",
			text: "remind me at 6pm",
			want: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		},
		{
			name:    "day after tomorrow",
			text:    "the day after tomorrow 10am dentist",
			want:    time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC),
			message: "dentist",
		},
		{
			name:    "weekday with on",
			text:    "on saturday picnic",
			want:    time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
			allDay:  true,
			message: "picnic",
		},
		{
			name:    "in a week",
			text:    "remind me in a week to call bob",
			want:    time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
			allDay:  true,
			message: "call bob",
		},
		{name: "nothing to parse", text: "buy milk", wantErr: true},
		{name: "invalid day", text: "31st june party", wantErr: true},
		{name: "invalid hour", text: "13pm lunch", wantErr: true},
		{name: "empty", text: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseReminder(tt.text, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReminder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.AbsoluteTime.Equal(tt.want) {
				t.Errorf("time = %v, want %v", got.AbsoluteTime, tt.want)
			}
			if got.IsAllDay != tt.allDay {
				t.Errorf("IsAllDay = %v, want %v", got.IsAllDay, tt.allDay)
			}
			if got.Message != tt.message {
				t.Errorf("Message = %q, want %q", got.Message, tt.message)
			}
		})
	}
}
