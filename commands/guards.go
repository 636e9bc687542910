package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/queue"
)

// IsUserInTheVoiceChannel requires the author to be connected to a voice channel.
func IsUserInTheVoiceChannel(env *Env, msg *Message) bool {
	if msg.VoiceChannelID != "" {
		return true
	}

	env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, env.Lang.MusicHelperUserNotInVC()))
	return false
}

// IsValidVoiceChannel requires the bot to be allowed to connect and speak in
// the author's voice channel.
func IsValidVoiceChannel(env *Env, msg *Message) bool {
	permissions, err := env.Session.UserChannelPermissions(env.Session.BotUserID(), msg.VoiceChannelID)

	if err != nil {
		env.Logger.Error(commandErr, "guild", msg.GuildID, "channel", msg.VoiceChannelID, "err", err)
		env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, env.Lang.MusicHelperBotCantConnect()))
		return false
	}

	if permissions&discordgo.PermissionVoiceConnect == 0 {
		env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, env.Lang.MusicHelperBotCantConnect()))
		return false
	}

	if permissions&discordgo.PermissionVoiceSpeak == 0 {
		env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, env.Lang.MusicHelperBotCantSpeak()))
		return false
	}

	return true
}

// IsSameVoiceChannel requires the author to share the bot's voice channel
// when the bot is connected to one.
func IsSameVoiceChannel(env *Env, msg *Message) bool {
	guild, err := env.Session.Guild(msg.GuildID)

	if err != nil {
		env.Logger.Error(commandErr, "guild", msg.GuildID, "err", err)
		return false
	}

	botVC := guild.GetUserVoiceChannelID(env.Session.BotUserID())

	if botVC == "" || botVC == msg.VoiceChannelID {
		return true
	}

	env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, env.Lang.MusicHelperNeedSameVC()))
	return false
}

// IsMusicQueueExists requires the guild to have a queue.
func IsMusicQueueExists(env *Env, msg *Message) bool {
	return env.currentQueue(msg) != nil
}

// currentQueue returns the queue of the message's guild. It replies when there is none.
func (env *Env) currentQueue(msg *Message) *queue.ServerQueue {
	q := env.Registry.Get(msg.GuildID)

	if q == nil {
		env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, env.Lang.MusicHelperNothingIsPlaying()))
	}

	return q
}

var musicGuards = []Guard{IsUserInTheVoiceChannel, IsSameVoiceChannel, IsMusicQueueExists}
