// Package bridge drives the two platform adapters: it normalizes
// inbound events, intercepts verification commands, and forwards
// routable messages to the destination the routing engine picks.
package bridge

import "context"

// MediaType classifies forwardable attachments.
type MediaType string

const (
	MediaPhoto    MediaType = "photo"
	MediaDocument MediaType = "document"
	MediaVideo    MediaType = "video"
)

// Media is a downloaded attachment ready to re-upload on the other side.
type Media struct {
	Type     MediaType
	Bytes    []byte
	Filename string
	Caption  string
}

// Event is one normalized inbound message from a platform adapter.
type Event struct {
	Platform   string
	ChatID     int64
	ChatKind   string
	ChatTitle  string
	AuthorID   int64
	AuthorName string
	Text       string
	Media      *Media
}

// EventHandler consumes normalized inbound events. Errors are logged
// by the adapter; they never stop its receive loop.
type EventHandler func(ctx context.Context, ev Event) error

// Sender is the outbound capability set the bridge needs from a platform.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, data []byte, filename, caption string) error
	SendDocument(ctx context.Context, chatID int64, data []byte, filename, caption string) error
	SendVideo(ctx context.Context, chatID int64, data []byte, filename, caption string) error
}

// Adapter is one platform client: a sender plus its receive loop.
type Adapter interface {
	Sender
	// Platform returns the platform name events from this adapter carry.
	Platform() string
	// SelfID returns the bot's own user id on this platform, known
	// after the adapter connects.
	SelfID() int64
	// Run blocks delivering inbound events to handler until ctx is done.
	Run(ctx context.Context, handler EventHandler) error
}

// Default filenames for media that arrives without one.
const (
	defaultPhotoName    = "photo.jpg"
	defaultDocumentName = "document.bin"
	defaultVideoName    = "video.mp4"
)
