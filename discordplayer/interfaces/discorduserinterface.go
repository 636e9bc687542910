package discordinterface

import "github.com/bwmarrin/discordgo"

type DiscordUser interface {
	ID() string
	Bot() bool
}

type DefaultDiscordUser struct {
	id  string
	bot bool
}

func (ddu *DefaultDiscordUser) ID() string {
	return ddu.id
}

func (ddu *DefaultDiscordUser) Bot() bool {
	return ddu.bot
}

func NewDiscordUser(user *discordgo.User) DiscordUser {
	return &DefaultDiscordUser{
		id:  user.ID,
		bot: user.Bot,
	}
}
