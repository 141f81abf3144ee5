package kb

import "context"

// Store is the persistence surface the web layer works against. Every handler
// opens its own Store for the duration of one request and closes it on every
// exit path, so implementations must be cheap to open.
type Store interface {
	TopicIndex(ctx context.Context) (TopicIndex, error)
	SubtopicsForTopic(ctx context.Context, topic string) ([]string, error)
	ContentText(ctx context.Context, topic, subtopic string) (string, error)
	TopicNames(ctx context.Context) ([]string, error)
	AddContent(ctx context.Context, entry Entry) error
	Close() error
}

// StoreOpener produces a fresh Store per request. Tests substitute openers
// pointed at temp databases.
type StoreOpener func() (Store, error)
