package conversation

import "context"

// Chatter answers general conversational queries.
type Chatter interface {
	Chat(ctx context.Context, query string) (string, error)
}

// Answerer answers queries that need live information.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// UseCase is both conversational collaborators backed by one model and one chat log.
type UseCase interface {
	Chatter
	Answerer
}
