package queue

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/entities"
)

var (
	ErrTrackAlreadyQueued = errors.New("track already queued")
	ErrQueueFull          = errors.New("queue full")
	ErrAlreadyStarted     = errors.New("queue already started")
	ErrQueueDestroyed     = errors.New("queue destroyed")
	ErrQueueEnded         = errors.New("queue ended")
)

type LoopMode int

const (
	LoopModeOff LoopMode = iota
	LoopModeTrack
	LoopModeQueue
)

func (lm LoopMode) String() string {
	switch lm {
	case LoopModeTrack:
		return "one"
	case LoopModeQueue:
		return "all"
	default:
		return "off"
	}
}

// ParseLoopMode accepts the names printed by LoopMode.String.
func ParseLoopMode(name string) (LoopMode, bool) {
	switch strings.ToLower(name) {
	case "off":
		return LoopModeOff, true
	case "one", "track":
		return LoopModeTrack, true
	case "all", "queue":
		return LoopModeQueue, true
	default:
		return LoopModeOff, false
	}
}

// Hooks are called from the playback loop.
type Hooks struct {
	OnTrackStart func(q *ServerQueue, media entities.Media)
	OnTrackError func(q *ServerQueue, media entities.Media, err error)
	// OnQueueEnd is called once the last track has finished. The queue is not
	// destroyed automatically.
	OnQueueEnd func(q *ServerQueue)
}

type ServerQueueOptions struct {
	GuildID        string
	TextChannelID  string
	VoiceChannelID string
	MaxSize        int
	Hooks          Hooks
	Logger         *log.Logger
}

// ServerQueue is the playback state of a single guild.
type ServerQueue struct {
	mutex sync.RWMutex

	guildID        string
	textChannelID  string
	voiceChannelID string

	tracks  *TrackList
	conn    Connection
	playing bool
	timeout *time.Timer

	shuffle       bool
	loopMode      LoopMode
	skipRequested bool

	hooks  Hooks
	logger *log.Logger
	rng    *rand.Rand

	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
	destroyOnce sync.Once
	destroyed   bool
	ended       bool
}

func NewServerQueue(options *ServerQueueOptions) *ServerQueue {
	ctx, cancel := context.WithCancel(context.Background())

	logger := options.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &ServerQueue{
		guildID:        options.GuildID,
		textChannelID:  options.TextChannelID,
		voiceChannelID: options.VoiceChannelID,
		tracks:         NewTrackList(options.MaxSize),
		hooks:          options.Hooks,
		logger:         logger.With("guild", options.GuildID),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

func (q *ServerQueue) GuildID() string {
	return q.guildID
}

func (q *ServerQueue) TextChannelID() string {
	return q.textChannelID
}

func (q *ServerQueue) VoiceChannelID() string {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.voiceChannelID
}

// SetVoiceChannelID records a move of the bot and passes it on to the
// connection when it implements ChannelMover.
func (q *ServerQueue) SetVoiceChannelID(channelID string) {
	q.mutex.Lock()
	q.voiceChannelID = channelID
	conn := q.conn
	q.mutex.Unlock()

	if mover, ok := conn.(ChannelMover); ok {
		mover.SetVoiceChannelID(channelID)
	}
}

func (q *ServerQueue) Tracks() *TrackList {
	return q.tracks
}

// Add queues media. With allowDuplicate unset a track that is already queued is
// rejected with ErrTrackAlreadyQueued. Once the playback loop has run out of
// tracks nothing can be added and ErrQueueEnded is returned.
func (q *ServerQueue) Add(media entities.Media, allowDuplicate bool) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.destroyed {
		return ErrQueueDestroyed
	}

	if q.ended {
		return ErrQueueEnded
	}

	if allowDuplicate {
		return q.tracks.Add(media)
	}

	return q.tracks.addUnique(media)
}

func (q *ServerQueue) Connection() Connection {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.conn
}

func (q *ServerQueue) Playing() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.playing
}

func (q *ServerQueue) SetPlaying(playing bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.playing = playing
}

func (q *ServerQueue) ShuffleMode() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.shuffle
}

// SetShuffleMode turns shuffling on or off. Turning it on also shuffles the
// tracks after the current one.
func (q *ServerQueue) SetShuffleMode(shuffle bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if shuffle && !q.shuffle {
		q.tracks.Shuffle(q.rng)
	}

	q.shuffle = shuffle
}

func (q *ServerQueue) LoopMode() LoopMode {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.loopMode
}

func (q *ServerQueue) SetLoopMode(loopMode LoopMode) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.loopMode = loopMode
}

// ShuffleItems shuffles the given medias in place with the queue's random source.
func (q *ServerQueue) ShuffleItems(medias []entities.Media) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.rng.Shuffle(len(medias), func(i, j int) {
		medias[i], medias[j] = medias[j], medias[i]
	})
}

// Pause marks the queue as not playing and pauses the connection.
func (q *ServerQueue) Pause() {
	q.mutex.Lock()
	q.playing = false
	conn := q.conn
	q.mutex.Unlock()

	if conn != nil {
		conn.SetPaused(true)
	}
}

// Resume marks the queue as playing and resumes the connection.
func (q *ServerQueue) Resume() {
	q.mutex.Lock()
	q.playing = true
	conn := q.conn
	q.mutex.Unlock()

	if conn != nil {
		conn.SetPaused(false)
	}
}

// Skip ends the current track. The next track starts regardless of the loop mode.
func (q *ServerQueue) Skip() bool {
	q.mutex.Lock()
	conn := q.conn
	if conn != nil {
		q.skipRequested = true
	}
	q.mutex.Unlock()

	if conn == nil {
		return false
	}

	if !conn.Skip() {
		q.mutex.Lock()
		q.skipRequested = false
		q.mutex.Unlock()
		return false
	}

	return true
}

func (q *ServerQueue) PlaybackPosition() time.Duration {
	conn := q.Connection()

	if conn == nil {
		return 0
	}

	return conn.PlaybackPosition()
}

// StartTimeout arms the idle timer. It returns false when a timer is already armed.
func (q *ServerQueue) StartTimeout(duration time.Duration, onTimeout func()) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.timeout != nil || q.destroyed {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(duration, func() {
		q.mutex.Lock()
		current := q.timeout == timer
		if current {
			q.timeout = nil
		}
		q.mutex.Unlock()

		if current {
			onTimeout()
		}
	})

	q.timeout = timer
	return true
}

func (q *ServerQueue) ClearTimeout() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.timeout != nil {
		q.timeout.Stop()
		q.timeout = nil
	}
}

func (q *ServerQueue) HasTimeout() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.timeout != nil
}

// Start attaches the connection and starts playing from the first track.
func (q *ServerQueue) Start(conn Connection) error {
	q.mutex.Lock()

	if q.destroyed {
		q.mutex.Unlock()
		return ErrQueueDestroyed
	}

	if q.conn != nil {
		q.mutex.Unlock()
		return ErrAlreadyStarted
	}

	q.conn = conn
	q.playing = true
	q.mutex.Unlock()

	go q.playbackLoop()

	return nil
}

// Done is closed when the playback loop has exited.
func (q *ServerQueue) Done() <-chan struct{} {
	return q.done
}

// Ended reports whether the playback loop ran out of tracks.
func (q *ServerQueue) Ended() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.ended
}

func (q *ServerQueue) Destroyed() bool {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.destroyed
}

// Destroy stops playback, clears every track and disconnects from voice.
// Calling it more than once has no effect.
func (q *ServerQueue) Destroy() {
	q.destroyOnce.Do(func() {
		q.mutex.Lock()
		q.destroyed = true
		q.playing = false
		if q.timeout != nil {
			q.timeout.Stop()
			q.timeout = nil
		}
		conn := q.conn
		started := conn != nil
		q.mutex.Unlock()

		q.cancel()
		q.tracks.Clear()

		if !started {
			close(q.done)
			return
		}

		if err := conn.Disconnect(); err != nil {
			q.logger.Warn("failed to disconnect from voice", "err", err)
		}
	})
}

func (q *ServerQueue) playbackLoop() {
	defer close(q.done)

	for {
		media := q.nextTrack()

		if media == nil {
			if q.ctx.Err() == nil && q.hooks.OnQueueEnd != nil {
				q.hooks.OnQueueEnd(q)
			}
			return
		}

		if q.hooks.OnTrackStart != nil {
			q.hooks.OnTrackStart(q, media)
		}

		q.logger.Info("playing track", "id", media.ID(), "title", media.Title())

		err := q.Connection().Play(q.ctx, media)

		if q.ctx.Err() != nil {
			return
		}

		if err != nil {
			q.logger.Error("failed to play track", "id", media.ID(), "err", err)

			if q.hooks.OnTrackError != nil {
				q.hooks.OnTrackError(q, media, err)
			}
		}

		q.advance(media, err != nil)
	}
}

// nextTrack returns the track to play. When there is none the queue is marked
// as ended under the same lock Add takes, so no track can slip in afterwards.
func (q *ServerQueue) nextTrack() entities.Media {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	media := q.tracks.First()

	if media == nil {
		q.ended = true
		q.playing = false
	}

	return media
}

// advance moves past the track that was just played according to the loop mode.
func (q *ServerQueue) advance(played entities.Media, failed bool) {
	q.mutex.Lock()
	skipped := q.skipRequested
	q.skipRequested = false
	loopMode := q.loopMode
	q.mutex.Unlock()

	// The first track may have changed if the list was cleared during playback.
	if first := q.tracks.First(); first == nil || first != played {
		return
	}

	switch {
	case loopMode == LoopModeTrack && !skipped && !failed:
		return
	case loopMode == LoopModeQueue && !failed:
		q.tracks.Rotate()
	default:
		q.tracks.RemoveFirst()
	}
}
