package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/commands"
	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/listeners"
	"github.com/fakelag/jukebox/queue"
)

//go:generate mockgen -source=bot.go -destination=mocks/bot.go -package=mocks

const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentMessageContent

// Gateway is the part of *discordgo.Session that owns the websocket connection.
type Gateway interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
}

// BackendStarter is implemented by voice backends that need the bot user id
// before they can connect, e.g. lavalink.
type BackendStarter interface {
	Start(ctx context.Context, botUserID string) error
	Close()
}

// VoiceEventForwarder is implemented by voice backends that consume raw
// discord voice events.
type VoiceEventForwarder interface {
	OnVoiceStateUpdate(s *discordgo.Session, event *discordgo.VoiceStateUpdate)
	OnVoiceServerUpdate(s *discordgo.Session, event *discordgo.VoiceServerUpdate)
}

type Options struct {
	Gateway   Gateway
	Session   discordinterface.DiscordSession
	Registry  *queue.Registry
	Connector queue.Connector
	Manager   *commands.Manager
	Voice     *listeners.VoiceStateListener
	Logger    *log.Logger
}

type Bot struct {
	gateway   Gateway
	session   discordinterface.DiscordSession
	registry  *queue.Registry
	connector queue.Connector
	manager   *commands.Manager
	voice     *listeners.VoiceStateListener
	logger    *log.Logger

	ctx context.Context
}

func New(options *Options) *Bot {
	return &Bot{
		gateway:   options.Gateway,
		session:   options.Session,
		registry:  options.Registry,
		connector: options.Connector,
		manager:   options.Manager,
		voice:     options.Voice,
		logger:    options.Logger,
		ctx:       context.Background(),
	}
}

// Run connects to discord and serves events until ctx is cancelled. Every
// queue is deleted before the connection is closed.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.registerHandlers()

	if err := b.gateway.Open(); err != nil {
		return errors.Wrap(err, "open discord session")
	}

	if starter, ok := b.connector.(BackendStarter); ok {
		if err := starter.Start(ctx, b.session.BotUserID()); err != nil {
			if closeErr := b.gateway.Close(); closeErr != nil {
				b.logger.Warn("failed to close discord session", "err", closeErr)
			}

			return errors.Wrap(err, "start voice backend")
		}
	}

	b.logger.Info("bot is running", "commands", len(b.manager.Commands()))

	<-ctx.Done()

	b.shutdown()
	return nil
}

func (b *Bot) registerHandlers() {
	b.gateway.AddHandler(b.onReady)
	b.gateway.AddHandler(b.onMessageCreate)
	b.gateway.AddHandler(b.voice.OnVoiceStateUpdate)

	if forwarder, ok := b.connector.(VoiceEventForwarder); ok {
		b.gateway.AddHandler(forwarder.OnVoiceStateUpdate)
		b.gateway.AddHandler(forwarder.OnVoiceServerUpdate)
	}
}

func (b *Bot) onReady(_ *discordgo.Session, event *discordgo.Ready) {
	if event.User == nil {
		return
	}

	b.logger.Info("logged in", "user", event.User.String(), "guilds", len(event.Guilds))
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, event *discordgo.MessageCreate) {
	b.manager.Handle(b.ctx, event.Message)
}

func (b *Bot) shutdown() {
	queues := make([]*queue.ServerQueue, 0, b.registry.Len())

	b.registry.Range(func(_ snowflake.ID, q *queue.ServerQueue) bool {
		queues = append(queues, q)
		return true
	})

	for _, q := range queues {
		b.registry.Remove(q)
	}

	b.logger.Info("deleted queues", "count", len(queues))

	if starter, ok := b.connector.(BackendStarter); ok {
		starter.Close()
	}

	if err := b.gateway.Close(); err != nil {
		b.logger.Warn("failed to close discord session", "err", err)
	}
}
