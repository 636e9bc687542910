package discordinterface

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=discordsessioninterface.go -destination=../mocks/discordsessioninterface.go -package=mocks

type DiscordSession interface {
	ChannelVoiceJoin(gID string, cID string, mute bool, deaf bool) (voice DiscordVoiceConnection, err error)
	// Guild returns the cached state of a guild, including its voice states.
	Guild(gID string) (guild DiscordGuild, err error)
	Member(gID string, uID string) (user DiscordUser, err error)
	Channel(cID string) (channel *discordgo.Channel, err error)
	UserChannelPermissions(uID string, cID string) (permissions int64, err error)
	ChannelMessageSend(cID string, content string) (*discordgo.Message, error)
	ChannelMessageSendEmbed(cID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	ChannelMessageEditEmbed(cID string, mID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	ChannelMessageDelete(cID string, mID string) error
	HeartbeatLatency() time.Duration
	BotUserID() string
}

type DefaultDiscordSession struct {
	session *discordgo.Session
}

func (dds *DefaultDiscordSession) ChannelVoiceJoin(gID string, cID string, mute bool, deaf bool) (voice DiscordVoiceConnection, err error) {
	voiceConn, err := dds.session.ChannelVoiceJoin(gID, cID, mute, deaf)

	if err != nil {
		return nil, errors.Wrapf(err, "join voice channel %s", cID)
	}

	return NewDiscordVoiceConnection(voiceConn), nil
}

func (dds *DefaultDiscordSession) Guild(gID string) (guild DiscordGuild, err error) {
	g, err := dds.session.State.Guild(gID)

	if err != nil {
		return nil, errors.Wrapf(err, "guild %s", gID)
	}

	// Voice states are updated by the gateway while we read them.
	dds.session.State.RLock()
	defer dds.session.State.RUnlock()

	return NewDiscordGuild(g), nil
}

func (dds *DefaultDiscordSession) Member(gID string, uID string) (user DiscordUser, err error) {
	member, err := dds.session.State.Member(gID, uID)

	if err != nil {
		member, err = dds.session.GuildMember(gID, uID)

		if err != nil {
			return nil, errors.Wrapf(err, "member %s", uID)
		}
	}

	if member.User == nil {
		return nil, errors.Errorf("member %s has no user", uID)
	}

	return NewDiscordUser(member.User), nil
}

func (dds *DefaultDiscordSession) Channel(cID string) (channel *discordgo.Channel, err error) {
	channel, err = dds.session.State.Channel(cID)

	if err == nil {
		return channel, nil
	}

	channel, err = dds.session.Channel(cID)

	if err != nil {
		return nil, errors.Wrapf(err, "channel %s", cID)
	}

	return channel, nil
}

func (dds *DefaultDiscordSession) UserChannelPermissions(uID string, cID string) (permissions int64, err error) {
	return dds.session.State.UserChannelPermissions(uID, cID)
}

func (dds *DefaultDiscordSession) ChannelMessageSend(cID string, content string) (*discordgo.Message, error) {
	return dds.session.ChannelMessageSend(cID, content)
}

func (dds *DefaultDiscordSession) ChannelMessageSendEmbed(cID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return dds.session.ChannelMessageSendEmbed(cID, embed)
}

// ChannelMessageEditEmbed replaces the content of a message with embed.
func (dds *DefaultDiscordSession) ChannelMessageEditEmbed(cID string, mID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return dds.session.ChannelMessageEditComplex(discordgo.NewMessageEdit(cID, mID).SetContent("").SetEmbed(embed))
}

func (dds *DefaultDiscordSession) ChannelMessageDelete(cID string, mID string) error {
	return dds.session.ChannelMessageDelete(cID, mID)
}

func (dds *DefaultDiscordSession) HeartbeatLatency() time.Duration {
	return dds.session.HeartbeatLatency()
}

func (dds *DefaultDiscordSession) BotUserID() string {
	if dds.session.State == nil || dds.session.State.User == nil {
		return ""
	}

	return dds.session.State.User.ID
}

func NewDiscordSession(discord *discordgo.Session) DiscordSession {
	return &DefaultDiscordSession{
		session: discord,
	}
}
