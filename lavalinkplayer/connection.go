package lavalinkplayer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/entities"
)

var (
	ErrNoNode        = errors.New("no lavalink node available")
	ErrTrackNotFound = errors.New("lavalink found no track")
	ErrDisconnected  = errors.New("lavalink connection closed")
)

const updateTimeout = 5 * time.Second

// trackPlayer is the part of disgolink.Player a connection drives.
type trackPlayer interface {
	Update(ctx context.Context, opts ...lavalink.PlayerUpdateOpt) error
	Position() lavalink.Duration
	Destroy(ctx context.Context) error
}

type trackLoader interface {
	LoadTracks(ctx context.Context, identifier string) (*lavalink.LoadResult, error)
}

// Connection plays media of one guild through a lavalink player.
type Connection struct {
	mutex sync.Mutex

	guildID snowflake.ID
	player  trackPlayer
	loader  func() trackLoader
	leave   func() error

	currentTrack string
	trackEnded   chan error
	paused       bool
	disconnected bool

	logger *log.Logger
}

func newConnection(guildID snowflake.ID, player trackPlayer, loader func() trackLoader, leave func() error, logger *log.Logger) *Connection {
	return &Connection{
		guildID: guildID,
		player:  player,
		loader:  loader,
		leave:   leave,
		logger:  logger.With("guild", guildID),
	}
}

// Play loads media by its link and blocks until lavalink reports the end of the track.
func (c *Connection) Play(ctx context.Context, media entities.Media) error {
	track, err := c.loadTrack(ctx, media.Link())

	if err != nil {
		return err
	}

	c.mutex.Lock()
	if c.disconnected {
		c.mutex.Unlock()
		return ErrDisconnected
	}

	ended := make(chan error, 1)
	c.currentTrack = track.Encoded
	c.trackEnded = ended
	opts := []lavalink.PlayerUpdateOpt{lavalink.WithEncodedTrack(track.Encoded), lavalink.WithPaused(c.paused)}
	c.mutex.Unlock()

	defer c.clearTrack(track.Encoded)

	if err := c.player.Update(ctx, opts...); err != nil {
		return errors.Wrap(err, "start track")
	}

	select {
	case err := <-ended:
		return err
	case <-ctx.Done():
		c.stopTrack()
		return ctx.Err()
	}
}

func (c *Connection) SetPaused(paused bool) {
	c.mutex.Lock()
	c.paused = paused
	playing := c.currentTrack != ""
	c.mutex.Unlock()

	if !playing {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	if err := c.player.Update(ctx, lavalink.WithPaused(paused)); err != nil {
		c.logger.Warn("failed to update pause state", "paused", paused, "err", err)
	}
}

func (c *Connection) Skip() bool {
	c.mutex.Lock()
	playing := c.currentTrack != ""
	c.mutex.Unlock()

	if !playing {
		return false
	}

	return c.stopTrack()
}

func (c *Connection) PlaybackPosition() time.Duration {
	return time.Duration(c.player.Position()) * time.Millisecond
}

func (c *Connection) Disconnect() error {
	c.mutex.Lock()
	if c.disconnected {
		c.mutex.Unlock()
		return nil
	}
	c.disconnected = true
	c.mutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	if err := c.player.Destroy(ctx); err != nil {
		c.logger.Warn("failed to destroy player", "err", err)
	}

	if c.leave == nil {
		return nil
	}

	return c.leave()
}

// onTrackEnd resolves the Play call waiting for encodedTrack. Events of
// earlier tracks are ignored.
func (c *Connection) onTrackEnd(encodedTrack string, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.currentTrack == "" || c.currentTrack != encodedTrack {
		return
	}

	select {
	case c.trackEnded <- err:
	default:
	}
}

func (c *Connection) stopTrack() bool {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	if err := c.player.Update(ctx, lavalink.WithNullTrack()); err != nil {
		c.logger.Warn("failed to stop track", "err", err)
		return false
	}

	return true
}

func (c *Connection) clearTrack(encodedTrack string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.currentTrack == encodedTrack {
		c.currentTrack = ""
		c.trackEnded = nil
	}
}

func (c *Connection) loadTrack(ctx context.Context, identifier string) (*lavalink.Track, error) {
	loader := c.loader()

	if loader == nil {
		return nil, ErrNoNode
	}

	result, err := loader.LoadTracks(ctx, identifier)

	if err != nil {
		return nil, errors.Wrapf(err, "load %s", identifier)
	}

	switch data := result.Data.(type) {
	case lavalink.Track:
		return &data, nil
	case lavalink.Search:
		if len(data) > 0 {
			return &data[0], nil
		}
	case lavalink.Playlist:
		if len(data.Tracks) > 0 {
			selected := data.Info.SelectedTrack
			if selected < 0 || selected >= len(data.Tracks) {
				selected = 0
			}
			return &data.Tracks[selected], nil
		}
	case lavalink.Exception:
		return nil, errors.Errorf("lavalink: %s", data.Message)
	}

	return nil, errors.Wrap(ErrTrackNotFound, identifier)
}
