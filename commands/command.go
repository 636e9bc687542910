package commands

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/fakelag/jukebox/config"
	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/lang"
	"github.com/fakelag/jukebox/queue"
)

const commandErr = "COMMAND_EXECUTE_ERR"

// Env is the state shared by every command.
type Env struct {
	Session   discordinterface.DiscordSession
	Registry  *queue.Registry
	Connector queue.Connector
	Source    MediaSource
	Config    *config.Config
	Lang      *lang.Printer
	Logger    *log.Logger
}

// Message is a command invocation parsed from a chat message.
type Message struct {
	ID        string
	GuildID   string
	ChannelID string
	Author    *discordgo.User
	Args      []string
	// VoiceChannelID is the voice channel of the author when the command was sent.
	VoiceChannelID string
}

// Guard runs before a command and reports whether it may run. A guard that
// fails replies to the message itself.
type Guard func(env *Env, msg *Message) bool

type Meta struct {
	Name    string
	Aliases []string
	// Description and Usage are rendered by the help command. Usage contains a
	// {prefix} placeholder.
	Description string
	Usage       string
	Guards      []Guard
}

type Command interface {
	Meta() Meta
	Execute(ctx context.Context, msg *Message) error
}

func (env *Env) send(channelID string, embed *discordgo.MessageEmbed) *discordgo.Message {
	message, err := env.Session.ChannelMessageSendEmbed(channelID, embed)

	if err != nil {
		env.Logger.Error(commandErr, "channel", channelID, "err", err)
		return nil
	}

	return message
}

func (env *Env) delete(message *discordgo.Message) {
	if message == nil {
		return
	}

	if err := env.Session.ChannelMessageDelete(message.ChannelID, message.ID); err != nil {
		env.Logger.Warn("failed to delete message", "channel", message.ChannelID, "message", message.ID, "err", err)
	}
}

func (env *Env) usage(meta Meta) string {
	return strings.ReplaceAll(meta.Usage, "{prefix}", env.Config.Prefix)
}
