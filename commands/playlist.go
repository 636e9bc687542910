package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/youtubeapi"
)

const duplicatesPerPage = 10

// loadPlaylist queues the tracks of a playlist. With watchEndpoint set the
// playlist was opened from a video that is already queued and loading starts
// at index, or right after that video when index is PlaylistIndexAfterCurrent.
func (c *PlayCommand) loadPlaylist(ctx context.Context, msg *Message, playlistID string, watchEndpoint bool, index int) error {
	playlist, err := c.env.Source.GetPlaylist(ctx, playlistID)

	if errors.Is(err, youtubeapi.ErrorNoPlaylistFound) {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayYoutubePlaylistNotFound()))
		return nil
	}

	if err != nil {
		return err
	}

	if playlist.IsMix() {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayYoutubeRDPlaylistNotSupported()))
		return nil
	}

	medias := playlist.Medias()

	if len(medias) == 0 {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandPlayYoutubePlaylistEmpty()))
		return nil
	}

	playlistTitle := fmt.Sprintf("**[%s](%s)**", playlist.Title(), youtubeapi.PlaylistURL(playlist.ID()))

	status := func(embedType embeds.EmbedType, message string, options ...embeds.Option) *discordgo.Message {
		options = append([]embeds.Option{embeds.WithThumbnail(playlist.Thumbnail())}, options...)
		return c.env.send(msg.ChannelID, embeds.CreateEmbed(embedType, message, options...))
	}

	var adding *discordgo.Message
	successMessage := c.env.Lang.CommandPlayYoutubePlaylistSuccess(playlistTitle)

	if watchEndpoint {
		q := c.env.Registry.Get(msg.GuildID)

		if q == nil || q.Tracks().First() == nil {
			return nil
		}

		videoTitle := trackLink(q.Tracks().First())

		adding = status(embeds.Info, c.env.Lang.CommandPlayYoutubePlaylistAddingVideosFrom(videoTitle, playlistTitle))
		successMessage = c.env.Lang.CommandPlayYoutubePlaylistSuccess2(playlistTitle, videoTitle)
	} else {
		adding = status(embeds.Info, c.env.Lang.CommandPlayYoutubePlaylistAddingAllVideos(playlistTitle))

		first, err := c.env.Source.GetVideo(ctx, medias[0].ID())

		if err != nil {
			c.env.Logger.Warn("first playlist track could not be resolved", "playlist", playlistID, "err", err)
			status(embeds.Error, c.env.Lang.CommandPlayYoutubePlaylistAddingFirstVideoErr(playlistTitle))
			c.env.delete(adding)
			return nil
		}

		if err := c.handleVideo(ctx, msg, first, true, false); err != nil {
			c.env.delete(adding)
			return err
		}
	}

	q := c.env.Registry.Get(msg.GuildID)

	if q == nil || q.Tracks().First() == nil {
		c.env.delete(adding)
		return nil
	}

	rest := playlistRest(medias, index, q.Tracks().First().ID())
	shuffle := q.ShuffleMode()

	if shuffle {
		q.ShuffleItems(rest)
	}

	for _, media := range rest {
		if c.env.Registry.Get(msg.GuildID) == nil {
			c.env.delete(adding)
			return nil
		}

		if err := c.handleVideo(ctx, msg, media, true, true); err != nil {
			c.env.Logger.Warn("playlist track could not be queued", "playlist", playlistID, "id", media.ID(), "err", err)
			status(embeds.Error, c.env.Lang.CommandPlayYoutubePlaylistAddingRestVideosErr(playlistTitle))
			c.takeDuplicates(msg.GuildID)
			c.env.delete(adding)
			return nil
		}
	}

	c.reportDuplicates(msg)

	var options []embeds.Option

	if shuffle {
		options = append(options, embeds.WithFooter(c.env.Lang.CommandPlayYoutubePlaylistSuccessFooter(c.env.Config.Prefix), ""))
	}

	status(embeds.Info, successMessage, options...)
	c.env.delete(adding)

	return nil
}

// reportDuplicates lists the playlist tracks that were skipped as duplicates.
func (c *PlayCommand) reportDuplicates(msg *Message) {
	duplicates := c.takeDuplicates(msg.GuildID)

	if len(duplicates) == 0 {
		return
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandPlayAlreadyQueuedMsg2(len(duplicates), c.env.Config.Prefix)))

	lines := make([]string, len(duplicates))

	for index, media := range duplicates {
		lines[index] = fmt.Sprintf("**%d.** %s", index+1, trackLink(media))
	}

	for page, content := range embeds.Paginate(lines, duplicatesPerPage) {
		var options []embeds.Option

		if page == 0 {
			options = append(options, embeds.WithTitle(c.env.Lang.CommandPlayAlreadyQueuedTitle2()))
		}

		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, content, options...))
	}
}

// playlistRest returns a copy of the playlist tracks from start onwards. The
// start index PlaylistIndexAfterCurrent resolves to the track after currentID.
func playlistRest(medias []entities.Media, start int, currentID string) []entities.Media {
	if start == youtubeapi.PlaylistIndexAfterCurrent {
		start = 0

		for index, media := range medias {
			if media.ID() == currentID {
				start = index + 1
				break
			}
		}
	}

	if start < 0 {
		start = 0
	}

	if start > len(medias) {
		start = len(medias)
	}

	return append([]entities.Media{}, medias[start:]...)
}
