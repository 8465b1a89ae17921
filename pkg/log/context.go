package log

import "context"

type ctxKey int

const (
	turnIDKey ctxKey = iota
	channelKey
)

// WithTurn attaches the turn id to ctx so every entry logged during the turn carries it.
func WithTurn(ctx context.Context, turnID string) context.Context {
	return context.WithValue(ctx, turnIDKey, turnID)
}

// WithChannel attaches the input channel (cli, http, telegram, ipc).
func WithChannel(ctx context.Context, channel string) context.Context {
	return context.WithValue(ctx, channelKey, channel)
}

// TurnID returns the turn id stored in ctx, if any.
func TurnID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(turnIDKey).(string)
	return id
}

func contextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if id, ok := ctx.Value(turnIDKey).(string); ok && id != "" {
		fields = append(fields, "turn_id", id)
	}
	if ch, ok := ctx.Value(channelKey).(string); ok && ch != "" {
		fields = append(fields, "channel", ch)
	}
	return fields
}
