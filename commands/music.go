package commands

import (
	"fmt"

	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/queue"
)

// newServerQueue creates the queue of a guild. Track changes are announced in
// the channel the queue was created from and the queue is removed when it runs
// out of tracks.
func (env *Env) newServerQueue(msg *Message) *queue.ServerQueue {
	return queue.NewServerQueue(&queue.ServerQueueOptions{
		GuildID:        msg.GuildID,
		TextChannelID:  msg.ChannelID,
		VoiceChannelID: msg.VoiceChannelID,
		MaxSize:        env.Config.MaxQueueSize,
		Logger:         env.Logger,
		Hooks: queue.Hooks{
			OnTrackStart: env.onTrackStart,
			OnTrackError: env.onTrackError,
			OnQueueEnd:   env.onQueueEnd,
		},
	})
}

func (env *Env) onTrackStart(q *queue.ServerQueue, media entities.Media) {
	env.send(q.TextChannelID(), embeds.CreateEmbed(
		embeds.Info,
		env.Lang.MusicTrackStart(media.Title(), media.Link()),
		embeds.WithThumbnail(media.Thumbnail()),
	))
}

func (env *Env) onTrackError(q *queue.ServerQueue, media entities.Media, err error) {
	env.send(q.TextChannelID(), embeds.CreateEmbed(
		embeds.Error,
		env.Lang.MusicTrackError(media.Title(), media.Link(), err.Error()),
	))
}

func (env *Env) onQueueEnd(q *queue.ServerQueue) {
	env.Registry.Remove(q)
	env.send(q.TextChannelID(), embeds.CreateEmbed(embeds.Info, env.Lang.MusicQueueEnded(env.Config.Prefix)))
}

func trackLink(media entities.Media) string {
	return fmt.Sprintf("**[%s](%s)**", media.Title(), media.Link())
}
