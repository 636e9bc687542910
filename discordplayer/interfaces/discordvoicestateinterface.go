package discordinterface

import "github.com/bwmarrin/discordgo"

type DiscordVoiceState interface {
	GetChannelID() string
	GetUserID() string
	// GetUser returns the user attached to the voice state, or nil when the
	// gateway did not include the member.
	GetUser() DiscordUser
}

type DefaultDiscordVoiceState struct {
	channelID string
	userID    string
	user      DiscordUser
}

func (dvs *DefaultDiscordVoiceState) GetChannelID() string {
	return dvs.channelID
}

func (dvs *DefaultDiscordVoiceState) GetUserID() string {
	return dvs.userID
}

func (dvs *DefaultDiscordVoiceState) GetUser() DiscordUser {
	return dvs.user
}

func NewDiscordVoiceState(vs *discordgo.VoiceState) DiscordVoiceState {
	state := &DefaultDiscordVoiceState{
		channelID: vs.ChannelID,
		userID:    vs.UserID,
	}

	if vs.Member != nil && vs.Member.User != nil {
		state.user = NewDiscordUser(vs.Member.User)
	}

	return state
}
