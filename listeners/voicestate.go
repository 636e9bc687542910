package listeners

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/lang"
	"github.com/fakelag/jukebox/queue"
)

const voiceStateUpdateErr = "VOICE_STATE_UPDATE_EVENT_ERR"

// VoiceStateListener pauses queues whose voice channel has no listeners left,
// resumes them when someone joins and deletes them after the idle timeout.
type VoiceStateListener struct {
	session            discordinterface.DiscordSession
	registry           *queue.Registry
	deleteQueueTimeout time.Duration
	lang               *lang.Printer
	logger             *log.Logger
}

func NewVoiceStateListener(
	session discordinterface.DiscordSession,
	registry *queue.Registry,
	deleteQueueTimeout time.Duration,
	printer *lang.Printer,
	logger *log.Logger,
) *VoiceStateListener {
	return &VoiceStateListener{
		session:            session,
		registry:           registry,
		deleteQueueTimeout: deleteQueueTimeout,
		lang:               printer,
		logger:             logger,
	}
}

// OnVoiceStateUpdate is the discordgo handler.
func (l *VoiceStateListener) OnVoiceStateUpdate(_ *discordgo.Session, event *discordgo.VoiceStateUpdate) {
	l.Handle(event)
}

func (l *VoiceStateListener) Handle(event *discordgo.VoiceStateUpdate) {
	if event == nil || event.VoiceState == nil {
		return
	}

	q := l.registry.Get(event.GuildID)

	if q == nil {
		return
	}

	botID := l.session.BotUserID()
	queueVC := q.VoiceChannelID()
	newID := event.ChannelID
	oldID := ""

	if event.BeforeUpdate != nil {
		oldID = event.BeforeUpdate.ChannelID
	}

	isBotItself := event.UserID == botID

	if isBotItself && oldID == queueVC && newID == "" {
		l.logger.Info("disconnected from the voice channel, queue deleted", "guild", event.GuildID)
		l.send(q, embeds.CreateEmbed(embeds.Warn, l.lang.VoiceBotDisconnected()))
		l.registry.Remove(q)
		return
	}

	guild, err := l.session.Guild(event.GuildID)

	if err != nil {
		l.logger.Error(voiceStateUpdateErr, "guild", event.GuildID, "err", err)
		return
	}

	memberIsBot := isBotItself || l.isBot(event.GuildID, event.UserID, memberUser(event.Member))
	queueVCMembers := l.countHumans(guild, queueVC)

	if before := event.BeforeUpdate; before != nil {
		oldMute, newMute := before.Mute || before.SelfMute, event.Mute || event.SelfMute
		oldDeaf, newDeaf := before.Deaf || before.SelfDeaf, event.Deaf || event.SelfDeaf

		if oldMute != newMute || oldDeaf != newDeaf {
			if oldMute != newMute && isBotItself {
				if newMute {
					l.doTimeout(q, queueVCMembers, true)
				} else {
					l.resumeTimeout(q, queueVCMembers)
				}
			}

			if newDeaf && memberIsBot {
				return
			}

			if oldDeaf != newDeaf && !memberIsBot {
				return
			}
		}
	}

	if isBotItself && oldID == queueVC && newID != queueVC && newID != "" {
		newVCMembers := l.countHumans(guild, newID)

		if newVCMembers == 0 && !q.HasTimeout() {
			l.doTimeout(q, newVCMembers, false)
		} else if newVCMembers != 0 && q.HasTimeout() {
			l.resumeTimeout(q, newVCMembers)
		}

		q.SetVoiceChannelID(newID)
	}

	if oldID == queueVC && newID != queueVC && !memberIsBot && !q.HasTimeout() {
		l.doTimeout(q, queueVCMembers, false)
	}

	if newID == queueVC && !memberIsBot {
		l.resumeTimeout(q, queueVCMembers)
	}
}

// doTimeout pauses the queue and arms its deletion. With alt set the queue is
// paused even when the channel still has listeners.
func (l *VoiceStateListener) doTimeout(q *queue.ServerQueue, members int, alt bool) {
	if members != 0 && !alt {
		return
	}

	if q.HasTimeout() {
		return
	}

	q.Pause()

	duration := embeds.FormatDuration(l.deleteQueueTimeout)

	q.StartTimeout(l.deleteQueueTimeout, func() {
		l.logger.Info("queue idle timeout, deleting", "guild", q.GuildID())
		l.registry.Remove(q)
		l.send(q, embeds.CreateEmbed(
			embeds.Error,
			l.lang.VoiceQueueDeleted(duration),
			embeds.WithTitle(l.lang.VoiceQueueDeletedTitle()),
		))
	})

	l.send(q, embeds.CreateEmbed(
		embeds.Warn,
		l.lang.VoiceQueuePaused(duration),
		embeds.WithTitle(l.lang.VoiceQueuePausedTitle()),
	))
}

func (l *VoiceStateListener) resumeTimeout(q *queue.ServerQueue, members int) {
	if members <= 0 || q.Playing() {
		return
	}

	q.ClearTimeout()

	if track := q.Tracks().First(); track != nil {
		l.send(q, embeds.CreateEmbed(
			embeds.Info,
			l.lang.VoiceQueueResumed(track.Title(), track.Link()),
			embeds.WithTitle(l.lang.VoiceQueueResumedTitle()),
			embeds.WithThumbnail(track.Thumbnail()),
		))
	}

	q.Resume()
}

// countHumans counts the users in a voice channel that are not bots.
func (l *VoiceStateListener) countHumans(guild discordinterface.DiscordGuild, channelID string) int {
	if channelID == "" {
		return 0
	}

	count := 0

	for _, vs := range guild.GetVoiceStates() {
		if vs.GetChannelID() != channelID {
			continue
		}

		if l.isBot(guild.GetID(), vs.GetUserID(), vs.GetUser()) {
			continue
		}

		count++
	}

	return count
}

func (l *VoiceStateListener) isBot(guildID string, userID string, user discordinterface.DiscordUser) bool {
	if userID == l.session.BotUserID() {
		return true
	}

	if user != nil {
		return user.Bot()
	}

	member, err := l.session.Member(guildID, userID)

	if err != nil {
		l.logger.Warn("could not look up voice member", "guild", guildID, "user", userID, "err", err)
		return false
	}

	return member.Bot()
}

func (l *VoiceStateListener) send(q *queue.ServerQueue, embed *discordgo.MessageEmbed) {
	if q.TextChannelID() == "" {
		return
	}

	if _, err := l.session.ChannelMessageSendEmbed(q.TextChannelID(), embed); err != nil {
		l.logger.Error(voiceStateUpdateErr, "guild", q.GuildID(), "err", err)
	}
}

func memberUser(member *discordgo.Member) discordinterface.DiscordUser {
	if member == nil || member.User == nil {
		return nil
	}

	return discordinterface.NewDiscordUser(member.User)
}
