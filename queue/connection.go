package queue

import (
	"context"
	"time"

	"github.com/fakelag/jukebox/entities"
)

//go:generate mockgen -source=connection.go -destination=mocks/connection.go -package=mocks

// Connection streams tracks into a joined voice channel.
type Connection interface {
	// Play blocks until the media has finished, was skipped or the connection was closed.
	Play(ctx context.Context, media entities.Media) error
	SetPaused(paused bool)
	// Skip stops the media currently being played. It reports false when nothing is playing.
	Skip() bool
	PlaybackPosition() time.Duration
	Disconnect() error
}

// ChannelMover is implemented by connections that need to know when the bot
// was moved into another voice channel.
type ChannelMover interface {
	SetVoiceChannelID(channelID string)
}

// Connector joins voice channels.
type Connector interface {
	Connect(ctx context.Context, guildID string, channelID string) (Connection, error)
}
