package discordinterface

import "github.com/bwmarrin/discordgo"

type DiscordGuild interface {
	GetID() string
	GetVoiceStates() []DiscordVoiceState
	// GetUserVoiceChannelID returns the voice channel a user is connected to, or "".
	GetUserVoiceChannelID(uID string) string
}

type DefaultDiscordGuild struct {
	id          string
	voiceStates []DiscordVoiceState
}

func (ddg *DefaultDiscordGuild) GetID() string {
	return ddg.id
}

func (ddg *DefaultDiscordGuild) GetVoiceStates() []DiscordVoiceState {
	return ddg.voiceStates
}

func (ddg *DefaultDiscordGuild) GetUserVoiceChannelID(uID string) string {
	for _, vs := range ddg.voiceStates {
		if vs.GetUserID() == uID {
			return vs.GetChannelID()
		}
	}

	return ""
}

// NewDiscordGuild snapshots the voice states of a guild.
func NewDiscordGuild(guild *discordgo.Guild) DiscordGuild {
	states := make([]DiscordVoiceState, 0, len(guild.VoiceStates))

	for _, vs := range guild.VoiceStates {
		if vs == nil {
			continue
		}

		states = append(states, NewDiscordVoiceState(vs))
	}

	return &DefaultDiscordGuild{
		id:          guild.ID,
		voiceStates: states,
	}
}
