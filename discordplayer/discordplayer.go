package discordplayer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/queue"
)

var ErrSessionDisconnected = errors.New("music session disconnected")

type DiscordMusicSessionOptions struct {
	GuildID        string
	VoiceChannelID string
	Logger         *log.Logger
}

// DiscordMusicSession streams media into a single voice channel with dca.
type DiscordMusicSession struct {
	mutex sync.RWMutex

	guildID        string
	voiceChannelID string

	dca             discordinterface.DiscordAudio
	discordSession  discordinterface.DiscordSession
	voiceConnection discordinterface.DiscordVoiceConnection

	currentMediaSession *DcaMediaSession
	paused              bool
	disconnected        bool

	chanSkipCommand chan struct{}
	logger          *log.Logger
}

func NewDiscordMusicSession(discordSession discordinterface.DiscordSession, options *DiscordMusicSessionOptions) (*DiscordMusicSession, error) {
	return NewDiscordMusicSessionEx(discordinterface.NewDiscordAudio(), discordSession, options)
}

func NewDiscordMusicSessionEx(
	dca discordinterface.DiscordAudio,
	discordSession discordinterface.DiscordSession,
	options *DiscordMusicSessionOptions,
) (*DiscordMusicSession, error) {
	voiceConnection, err := discordSession.ChannelVoiceJoin(options.GuildID, options.VoiceChannelID, false, true)

	if err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &DiscordMusicSession{
		guildID:         options.GuildID,
		voiceChannelID:  options.VoiceChannelID,
		dca:             dca,
		discordSession:  discordSession,
		voiceConnection: voiceConnection,
		chanSkipCommand: make(chan struct{}, 1),
		logger:          logger.With("guild", options.GuildID, "channel", options.VoiceChannelID),
	}, nil
}

// Play blocks until the media has finished, was skipped or ctx is cancelled.
func (dms *DiscordMusicSession) Play(ctx context.Context, media entities.Media) error {
	if dms.isDisconnected() {
		return ErrSessionDisconnected
	}

	keepPlayingCurrentMediaFrom := time.Duration(0)

	for {
		keepPlayingCurrentMedia, playFrom, err := dms.playMediaFile(ctx, media, keepPlayingCurrentMediaFrom)

		if err != nil || !keepPlayingCurrentMedia {
			return err
		}

		keepPlayingCurrentMediaFrom = playFrom
	}
}

func (dms *DiscordMusicSession) SetPaused(paused bool) {
	dms.mutex.Lock()
	defer dms.mutex.Unlock()

	dms.paused = paused

	if dms.currentMediaSession != nil && dms.currentMediaSession.streamingSession != nil {
		dms.currentMediaSession.streamingSession.SetPaused(paused)
	}
}

// SetVoiceChannelID records the channel the bot was moved to. Reconnects join
// this channel.
func (dms *DiscordMusicSession) SetVoiceChannelID(channelID string) {
	dms.mutex.Lock()
	defer dms.mutex.Unlock()
	dms.voiceChannelID = channelID
}

func (dms *DiscordMusicSession) VoiceChannelID() string {
	dms.mutex.RLock()
	defer dms.mutex.RUnlock()
	return dms.voiceChannelID
}

func (dms *DiscordMusicSession) Paused() bool {
	dms.mutex.RLock()
	defer dms.mutex.RUnlock()
	return dms.paused
}

// Skip ends the media that is currently playing. Returns false if nothing is playing.
func (dms *DiscordMusicSession) Skip() bool {
	dms.mutex.RLock()
	playing := dms.currentMediaSession != nil
	dms.mutex.RUnlock()

	if !playing {
		return false
	}

	select {
	case dms.chanSkipCommand <- struct{}{}:
	default:
	}

	return true
}

func (dms *DiscordMusicSession) PlaybackPosition() time.Duration {
	dms.mutex.RLock()
	defer dms.mutex.RUnlock()

	if dms.currentMediaSession == nil {
		return 0
	}

	return dms.currentMediaSession.position()
}

func (dms *DiscordMusicSession) Disconnect() error {
	dms.mutex.Lock()
	defer dms.mutex.Unlock()

	if dms.disconnected {
		return nil
	}

	dms.disconnected = true

	if dms.voiceConnection == nil {
		return nil
	}

	dms.logger.Info("leaving voice channel")

	return dms.voiceConnection.Disconnect()
}

func (dms *DiscordMusicSession) isDisconnected() bool {
	dms.mutex.RLock()
	defer dms.mutex.RUnlock()
	return dms.disconnected
}

// Connector opens dca music sessions for the server queues.
type Connector struct {
	dca            discordinterface.DiscordAudio
	discordSession discordinterface.DiscordSession
	logger         *log.Logger
}

func NewConnector(discordSession discordinterface.DiscordSession, logger *log.Logger) *Connector {
	return NewConnectorEx(discordinterface.NewDiscordAudio(), discordSession, logger)
}

func NewConnectorEx(dca discordinterface.DiscordAudio, discordSession discordinterface.DiscordSession, logger *log.Logger) *Connector {
	return &Connector{
		dca:            dca,
		discordSession: discordSession,
		logger:         logger,
	}
}

func (c *Connector) Connect(ctx context.Context, guildID string, channelID string) (queue.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dms, err := NewDiscordMusicSessionEx(c.dca, c.discordSession, &DiscordMusicSessionOptions{
		GuildID:        guildID,
		VoiceChannelID: channelID,
		Logger:         c.logger,
	})

	if err != nil {
		return nil, errors.Wrap(err, "open music session")
	}

	return dms, nil
}

var _ queue.Connection = (*DiscordMusicSession)(nil)
var _ queue.ChannelMover = (*DiscordMusicSession)(nil)
var _ queue.Connector = (*Connector)(nil)
