package lavalinkplayer

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/config"
	"github.com/fakelag/jukebox/queue"
)

// voiceJoinTimeout bounds the wait for discord's voice state and voice server events.
const voiceJoinTimeout = 10 * time.Second

var ErrNotStarted = errors.New("lavalink connector not started")

// VoiceJoiner sends voice state updates over the gateway without opening a voice connection.
type VoiceJoiner interface {
	ChannelVoiceJoinManual(gID string, cID string, mute bool, deaf bool) error
}

// Connector opens lavalink backed connections. Discord voice events have to
// be forwarded to it with OnVoiceStateUpdate and OnVoiceServerUpdate.
type Connector struct {
	mutex sync.Mutex

	joiner VoiceJoiner
	config config.LavalinkConfig
	link   disgolink.Client
	botID  snowflake.ID

	pending     map[snowflake.ID]*pendingJoin
	credentials map[snowflake.ID]*voiceCredentials
	connections map[snowflake.ID]*Connection

	logger *log.Logger
}

func NewConnector(joiner VoiceJoiner, cfg config.LavalinkConfig, logger *log.Logger) *Connector {
	return &Connector{
		joiner:      joiner,
		config:      cfg,
		pending:     make(map[snowflake.ID]*pendingJoin),
		credentials: make(map[snowflake.ID]*voiceCredentials),
		connections: make(map[snowflake.ID]*Connection),
		logger:      logger.WithPrefix("lavalink"),
	}
}

// Start creates the lavalink client for the logged in bot user and connects to the node.
func (c *Connector) Start(ctx context.Context, botUserID string) error {
	botID, err := snowflake.Parse(botUserID)

	if err != nil {
		return errors.Wrap(err, "parse bot id")
	}

	link := disgolink.New(botID,
		disgolink.WithListenerFunc(c.onTrackStart),
		disgolink.WithListenerFunc(c.onTrackEnd),
		disgolink.WithListenerFunc(c.onTrackException),
		disgolink.WithListenerFunc(c.onTrackStuck),
	)

	node, err := link.AddNode(ctx, disgolink.NodeConfig{
		Name:     c.config.Name,
		Address:  c.config.Address,
		Password: c.config.Password,
		Secure:   c.config.Secure,
	})

	if err != nil {
		return errors.Wrap(err, "add lavalink node")
	}

	c.mutex.Lock()
	c.link = link
	c.botID = botID
	c.mutex.Unlock()

	c.logger.Info("connected to lavalink", "node", node.Config().Name, "address", c.config.Address)

	return nil
}

// Close disconnects from every lavalink node.
func (c *Connector) Close() {
	if link := c.client(); link != nil {
		link.Close()
	}
}

func (c *Connector) Connect(ctx context.Context, guildID string, channelID string) (queue.Connection, error) {
	link := c.client()

	if link == nil {
		return nil, ErrNotStarted
	}

	gID, err := snowflake.Parse(guildID)

	if err != nil {
		return nil, errors.Wrap(err, "parse guild id")
	}

	if err := c.join(ctx, gID, channelID); err != nil {
		return nil, err
	}

	conn := newConnection(
		gID,
		link.Player(gID),
		func() trackLoader {
			node := link.BestNode()
			if node == nil {
				return nil
			}
			return node
		},
		func() error {
			c.removeConnection(gID)
			return c.joiner.ChannelVoiceJoinManual(guildID, "", false, true)
		},
		c.logger,
	)

	c.mutex.Lock()
	c.connections[gID] = conn
	c.mutex.Unlock()

	return conn, nil
}

func (c *Connector) join(ctx context.Context, guildID snowflake.ID, channelID string) error {
	pending := newPendingJoin()

	c.mutex.Lock()
	c.pending[guildID] = pending
	c.mutex.Unlock()

	defer func() {
		c.mutex.Lock()
		delete(c.pending, guildID)
		c.mutex.Unlock()
	}()

	if err := c.joiner.ChannelVoiceJoinManual(guildID.String(), channelID, false, true); err != nil {
		return errors.Wrap(err, "join voice channel")
	}

	select {
	case <-pending.ready:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for voice connection")
	case <-time.After(voiceJoinTimeout):
		return errors.New("timed out waiting for voice connection")
	}
}

// OnVoiceStateUpdate is a discordgo handler for the bot's own voice state.
func (c *Connector) OnVoiceStateUpdate(_ *discordgo.Session, event *discordgo.VoiceStateUpdate) {
	link, botID := c.clientWithBotID()

	if link == nil || event.UserID != botID.String() {
		return
	}

	guildID, err := snowflake.Parse(event.GuildID)

	if err != nil {
		c.logger.Error("VOICE_STATE_UPDATE_EVENT_ERR", "err", err)
		return
	}

	if event.ChannelID == "" {
		link.OnVoiceStateUpdate(context.Background(), guildID, nil, event.SessionID)

		c.mutex.Lock()
		delete(c.credentials, guildID)
		c.mutex.Unlock()
		return
	}

	channelID, err := snowflake.Parse(event.ChannelID)

	if err != nil {
		c.logger.Error("VOICE_STATE_UPDATE_EVENT_ERR", "err", err)
		return
	}

	creds := c.voiceCredentials(guildID)

	switch {
	case creds.setVoiceState(&channelID, event.SessionID):
		c.forwardVoiceCredentials(link, guildID, creds)
	case creds.isEstablished():
		// Moves keep the voice server, only the channel changes.
		c.logger.Debug("forwarding voice channel move", "guild", guildID, "channel", channelID)
		link.OnVoiceStateUpdate(context.Background(), guildID, &channelID, event.SessionID)
	}

	c.notifyPending(guildID, true)
}

// OnVoiceServerUpdate is a discordgo handler for voice server assignments.
func (c *Connector) OnVoiceServerUpdate(_ *discordgo.Session, event *discordgo.VoiceServerUpdate) {
	link := c.client()

	if link == nil {
		return
	}

	guildID, err := snowflake.Parse(event.GuildID)

	if err != nil {
		c.logger.Error("VOICE_SERVER_UPDATE_EVENT_ERR", "err", err)
		return
	}

	creds := c.voiceCredentials(guildID)

	if creds.setVoiceServer(event.Token, event.Endpoint) {
		c.forwardVoiceCredentials(link, guildID, creds)
	}

	c.notifyPending(guildID, false)
}

func (c *Connector) forwardVoiceCredentials(link disgolink.Client, guildID snowflake.ID, creds *voiceCredentials) {
	channelID, sessionID, token, endpoint := creds.take()

	c.logger.Debug("forwarding voice credentials", "guild", guildID, "channel", channelID)

	link.OnVoiceStateUpdate(context.Background(), guildID, channelID, sessionID)
	link.OnVoiceServerUpdate(context.Background(), guildID, token, endpoint)
}

func (c *Connector) voiceCredentials(guildID snowflake.ID) *voiceCredentials {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	creds, ok := c.credentials[guildID]
	if !ok {
		creds = &voiceCredentials{}
		c.credentials[guildID] = creds
	}

	return creds
}

func (c *Connector) notifyPending(guildID snowflake.ID, isVoiceState bool) {
	c.mutex.Lock()
	pending := c.pending[guildID]
	c.mutex.Unlock()

	if pending != nil {
		pending.onEvent(isVoiceState)
	}
}

func (c *Connector) client() disgolink.Client {
	link, _ := c.clientWithBotID()
	return link
}

func (c *Connector) clientWithBotID() (disgolink.Client, snowflake.ID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.link, c.botID
}

func (c *Connector) connection(guildID snowflake.ID) *Connection {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.connections[guildID]
}

func (c *Connector) removeConnection(guildID snowflake.ID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.connections, guildID)
}

func (c *Connector) onTrackStart(player disgolink.Player, event lavalink.TrackStartEvent) {
	c.logger.Debug("track started", "guild", player.GuildID(), "track", event.Track.Info.Title)
}

func (c *Connector) onTrackEnd(player disgolink.Player, event lavalink.TrackEndEvent) {
	c.logger.Debug("track ended", "guild", player.GuildID(), "reason", event.Reason)

	if conn := c.connection(player.GuildID()); conn != nil {
		conn.onTrackEnd(event.Track.Encoded, nil)
	}
}

func (c *Connector) onTrackException(player disgolink.Player, event lavalink.TrackExceptionEvent) {
	c.logger.Warn("track exception", "guild", player.GuildID(), "err", event.Exception.Message)

	if conn := c.connection(player.GuildID()); conn != nil {
		conn.onTrackEnd(event.Track.Encoded, errors.Errorf("lavalink: %s", event.Exception.Message))
	}
}

func (c *Connector) onTrackStuck(player disgolink.Player, event lavalink.TrackStuckEvent) {
	c.logger.Warn("track stuck", "guild", player.GuildID(), "threshold", event.Threshold)

	if conn := c.connection(player.GuildID()); conn != nil {
		conn.onTrackEnd(event.Track.Encoded, errors.Errorf("lavalink: track stuck for %dms", event.Threshold))
	}
}

var _ queue.Connector = (*Connector)(nil)
var _ queue.Connection = (*Connection)(nil)
