package commands

import (
	"context"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/fakelag/jukebox/embeds"
)

// Manager dispatches prefixed chat messages to the registered commands.
type Manager struct {
	env *Env

	commands []Command
	byName   map[string]Command

	limiterMutex sync.Mutex
	limiters     map[string]*rate.Limiter
}

// NewManager returns a manager with every music command registered.
func NewManager(env *Env) *Manager {
	m := &Manager{
		env:      env,
		byName:   make(map[string]Command),
		limiters: make(map[string]*rate.Limiter),
	}

	m.Register(NewPingCommand(env))
	m.Register(NewPlayCommand(env))
	m.Register(NewSkipCommand(env))
	m.Register(NewStopCommand(env))
	m.Register(NewPauseCommand(env))
	m.Register(NewResumeCommand(env))
	m.Register(NewQueueCommand(env))
	m.Register(NewNowPlayingCommand(env))
	m.Register(NewShuffleCommand(env))
	m.Register(NewRepeatCommand(env))
	m.Register(NewHelpCommand(env, m))

	return m
}

// Register adds a command under its name and aliases. Later registrations
// replace earlier ones with the same name.
func (m *Manager) Register(cmd Command) {
	meta := cmd.Meta()

	m.commands = append(m.commands, cmd)
	m.byName[strings.ToLower(meta.Name)] = cmd

	for _, alias := range meta.Aliases {
		m.byName[strings.ToLower(alias)] = cmd
	}
}

// Get resolves a command by name or alias.
func (m *Manager) Get(name string) Command {
	return m.byName[strings.ToLower(name)]
}

// Commands lists the commands in registration order.
func (m *Manager) Commands() []Command {
	return m.commands
}

// Handle runs the command a message invokes, if any.
func (m *Manager) Handle(ctx context.Context, message *discordgo.Message) {
	if message == nil || message.Author == nil || message.Author.Bot || message.GuildID == "" {
		return
	}

	prefix := m.env.Config.Prefix

	if !strings.HasPrefix(message.Content, prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(message.Content, prefix))

	if len(fields) == 0 {
		return
	}

	cmd := m.Get(fields[0])

	if cmd == nil {
		return
	}

	if !m.allow(message.Author.ID) {
		m.env.send(message.ChannelID, embeds.CreateEmbed(embeds.Warn, m.env.Lang.CommandRateLimited()))
		return
	}

	msg := &Message{
		ID:             message.ID,
		GuildID:        message.GuildID,
		ChannelID:      message.ChannelID,
		Author:         message.Author,
		Args:           fields[1:],
		VoiceChannelID: m.voiceChannelOf(message.GuildID, message.Author.ID),
	}

	meta := cmd.Meta()

	for _, guard := range meta.Guards {
		if !guard(m.env, msg) {
			return
		}
	}

	m.env.Logger.Debug("running command", "command", meta.Name, "guild", msg.GuildID, "user", msg.Author.ID)

	if err := cmd.Execute(ctx, msg); err != nil {
		m.env.Logger.Error(commandErr, "command", meta.Name, "guild", msg.GuildID, "err", err)
	}
}

func (m *Manager) allow(userID string) bool {
	m.limiterMutex.Lock()
	defer m.limiterMutex.Unlock()

	limiter, ok := m.limiters[userID]

	if !ok {
		limiter = rate.NewLimiter(rate.Limit(m.env.Config.CommandRate), m.env.Config.CommandBurst)
		m.limiters[userID] = limiter
	}

	return limiter.Allow()
}

func (m *Manager) voiceChannelOf(guildID string, userID string) string {
	guild, err := m.env.Session.Guild(guildID)

	if err != nil {
		m.env.Logger.Warn("could not read guild state", "guild", guildID, "err", err)
		return ""
	}

	return guild.GetUserVoiceChannelID(userID)
}
