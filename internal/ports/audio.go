package ports

import "context"

// Voice is one running audio stream
type Voice interface {
	Done() <-chan struct{}
	Pause() error
	Resume() error
	Stop() error
}

// AudioPlayer turns a file path into a running voice
type AudioPlayer interface {
	Start(ctx context.Context, path string) (Voice, error)
}

// Notifier shows transient messages to the acting user
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}
