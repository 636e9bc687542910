package commands

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/queue"
	"github.com/fakelag/jukebox/youtubeapi"
)

type PlayCommand struct {
	env *Env

	// duplicates collects playlist tracks that were already queued, per guild.
	duplicatesMutex sync.Mutex
	duplicates      map[string][]entities.Media
}

func NewPlayCommand(env *Env) *PlayCommand {
	return &PlayCommand{
		env:        env,
		duplicates: make(map[string][]entities.Media),
	}
}

func (c *PlayCommand) Meta() Meta {
	return Meta{
		Name:        "play",
		Aliases:     []string{"play-music", "add", "p"},
		Description: c.env.Lang.CommandPlayMetaDescription(),
		Usage:       "{prefix}play <" + c.env.Lang.CommandPlayMetaArgs() + ">",
		Guards:      []Guard{IsUserInTheVoiceChannel, IsValidVoiceChannel, IsSameVoiceChannel},
	}
}

func (c *PlayCommand) Execute(ctx context.Context, msg *Message) error {
	if len(msg.Args) == 0 {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandInvalidArgs(c.env.Config.Prefix, "play")))
		return nil
	}

	if q := c.env.Registry.Get(msg.GuildID); q != nil && q.VoiceChannelID() != msg.VoiceChannelID {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandPlayAlreadyPlaying(c.channelName(q.VoiceChannelID()))))
		return nil
	}

	if err := c.play(ctx, msg, strings.Join(msg.Args, " ")); err != nil {
		reason := err.Error()

		if errors.Is(err, youtubeapi.ErrorNoVideoFound) {
			reason = c.env.Lang.CommandPlayResourceNotFound()
		}

		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayResourceProcessingErr(reason)))
		return err
	}

	return nil
}

func (c *PlayCommand) play(ctx context.Context, msg *Message, input string) error {
	request, err := youtubeapi.ParseRequest(input)

	if err != nil {
		return err
	}

	var media entities.Media

	switch request.Kind {
	case youtubeapi.RequestInvalidSource:
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayInvalidSource()))
		return nil
	case youtubeapi.RequestInvalidYoutubeURL:
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayInvalidYoutubeURL()))
		return nil
	case youtubeapi.RequestPlaylist:
		return c.loadPlaylist(ctx, msg, request.PlaylistID, false, request.PlaylistIndex)
	case youtubeapi.RequestVideo:
		media, err = c.env.Source.GetVideo(ctx, request.VideoID)

		if err != nil {
			return err
		}
	default:
		media, err = c.search(ctx, msg, request.Query)

		if err != nil {
			return err
		}

		if media == nil {
			return nil
		}
	}

	if err := c.handleVideo(ctx, msg, media, false, false); err != nil {
		return err
	}

	if request.Kind == youtubeapi.RequestVideo && request.PlaylistID != "" {
		go func() {
			if err := c.loadPlaylist(ctx, msg, request.PlaylistID, true, request.PlaylistIndex); err != nil {
				c.env.Logger.Error(commandErr, "guild", msg.GuildID, "playlist", request.PlaylistID, "err", err)
				c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayYoutubePlaylistLoadErr(err.Error())))
			}
		}()
	}

	return nil
}

// search returns the first search result that resolves. It replies and
// returns nil media when nothing does.
func (c *PlayCommand) search(ctx context.Context, msg *Message, term string) (entities.Media, error) {
	results, err := c.env.Source.Search(ctx, term, c.env.Config.SearchResults)

	if err != nil {
		return nil, err
	}

	for _, result := range results {
		media, err := c.env.Source.GetVideo(ctx, result.ID())

		if err == nil {
			return media, nil
		}

		c.env.Logger.Warn("search result could not be resolved", "id", result.ID(), "err", err)
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandPlayYoutubeSearchNoResults()))
	return nil, nil
}

// handleVideo adds media to the guild's queue, creating the queue and joining
// the voice channel when there is none. Playlist tracks are not announced one
// by one and the rest of a playlist never creates a queue.
func (c *PlayCommand) handleVideo(ctx context.Context, msg *Message, media entities.Media, playlist bool, restPlaylist bool) error {
	if q := c.env.Registry.Get(msg.GuildID); q != nil {
		err := c.addToQueue(msg, q, media, playlist)

		if !errors.Is(err, queue.ErrQueueEnded) && !errors.Is(err, queue.ErrQueueDestroyed) {
			return err
		}

		// The queue finished while the media was being resolved, start a new one.
		c.env.Registry.Remove(q)
	}

	if restPlaylist {
		return nil
	}

	q, created, err := c.env.Registry.GetOrCreate(msg.GuildID, func() *queue.ServerQueue {
		return c.env.newServerQueue(msg)
	})

	if err != nil {
		return err
	}

	if !created {
		return c.addToQueue(msg, q, media, playlist)
	}

	if err := q.Add(media, true); err != nil {
		c.env.Registry.Remove(q)
		return err
	}

	if !playlist {
		c.trackAdded(msg, media)
	}

	conn, err := c.env.Connector.Connect(ctx, msg.GuildID, msg.VoiceChannelID)

	if err != nil {
		c.env.Logger.Error(commandErr, "guild", msg.GuildID, "channel", msg.VoiceChannelID, "err", err)
		q.Tracks().Clear()
		c.env.Registry.Remove(q)
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayCouldNotJoinVC(err.Error())))
		return nil
	}

	if err := q.Start(conn); err != nil {
		if disconnectErr := conn.Disconnect(); disconnectErr != nil {
			c.env.Logger.Warn("failed to disconnect", "guild", msg.GuildID, "err", disconnectErr)
		}

		if errors.Is(err, queue.ErrQueueDestroyed) {
			return nil
		}

		return err
	}

	return nil
}

func (c *PlayCommand) addToQueue(msg *Message, q *queue.ServerQueue, media entities.Media, playlist bool) error {
	err := q.Add(media, c.env.Config.AllowDuplicate)

	switch {
	case errors.Is(err, queue.ErrTrackAlreadyQueued):
		if playlist {
			c.collectDuplicate(msg.GuildID, media)
			return nil
		}

		c.env.send(msg.ChannelID, embeds.CreateEmbed(
			embeds.Warn,
			c.env.Lang.CommandPlayAlreadyQueuedMsg(media.Title(), media.Link(), c.env.Config.Prefix),
			embeds.WithTitle(c.env.Lang.CommandPlayAlreadyQueuedTitle()),
			embeds.WithThumbnail(media.Thumbnail()),
		))
		return nil
	case errors.Is(err, queue.ErrQueueFull):
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandPlayQueueFull(c.env.Config.MaxQueueSize)))
		return err
	case err != nil:
		return err
	}

	if !playlist {
		c.trackAdded(msg, media)
	}

	return nil
}

func (c *PlayCommand) trackAdded(msg *Message, media entities.Media) {
	c.env.send(msg.ChannelID, embeds.CreateEmbed(
		embeds.Info,
		c.env.Lang.CommandPlayTrackAdded(media.Title(), media.Link()),
		embeds.WithThumbnail(media.Thumbnail()),
	))
}

func (c *PlayCommand) collectDuplicate(guildID string, media entities.Media) {
	c.duplicatesMutex.Lock()
	defer c.duplicatesMutex.Unlock()
	c.duplicates[guildID] = append(c.duplicates[guildID], media)
}

func (c *PlayCommand) takeDuplicates(guildID string) []entities.Media {
	c.duplicatesMutex.Lock()
	defer c.duplicatesMutex.Unlock()

	duplicates := c.duplicates[guildID]
	delete(c.duplicates, guildID)
	return duplicates
}

func (c *PlayCommand) channelName(channelID string) string {
	channel, err := c.env.Session.Channel(channelID)

	if err != nil || channel == nil {
		return channelID
	}

	return channel.Name
}
