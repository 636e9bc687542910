package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fakelag/jukebox/embeds"
)

const tracksPerPage = 10

type QueueCommand struct {
	env *Env
}

func NewQueueCommand(env *Env) *QueueCommand {
	return &QueueCommand{env: env}
}

func (c *QueueCommand) Meta() Meta {
	return Meta{
		Name:        "queue",
		Aliases:     []string{"q"},
		Description: c.env.Lang.CommandQueueMetaDescription(),
		Usage:       "{prefix}queue [page]",
		Guards:      []Guard{IsMusicQueueExists},
	}
}

func (c *QueueCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	tracks := q.Tracks().Items()
	lines := make([]string, len(tracks))

	for index, media := range tracks {
		lines[index] = fmt.Sprintf("**%d.** %s", index+1, trackLink(media))
	}

	pages := embeds.Paginate(lines, tracksPerPage)

	if len(pages) == 0 {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.MusicHelperNothingIsPlaying()))
		return nil
	}

	page := 1

	if len(msg.Args) > 0 {
		if requested, err := strconv.Atoi(msg.Args[0]); err == nil {
			page = max(1, min(requested, len(pages)))
		}
	}

	var options []embeds.Option

	options = append(options,
		embeds.WithTitle(c.env.Lang.CommandQueueEmbedTitle()),
		embeds.WithFooter(c.env.Lang.CommandQueueEmbedFooter(page, len(pages)), ""),
	)

	if first := q.Tracks().First(); first != nil {
		options = append(options, embeds.WithThumbnail(first.Thumbnail()))
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Info, pages[page-1], options...))
	return nil
}

type NowPlayingCommand struct {
	env *Env
}

func NewNowPlayingCommand(env *Env) *NowPlayingCommand {
	return &NowPlayingCommand{env: env}
}

func (c *NowPlayingCommand) Meta() Meta {
	return Meta{
		Name:        "nowplaying",
		Aliases:     []string{"np"},
		Description: c.env.Lang.CommandNowPlayingMetaDescription(),
		Usage:       "{prefix}nowplaying",
		Guards:      []Guard{IsMusicQueueExists},
	}
}

func (c *NowPlayingCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	current := q.Tracks().First()

	if current == nil {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.MusicHelperNothingIsPlaying()))
		return nil
	}

	progress := embeds.FormatTimestamp(q.PlaybackPosition())

	if duration := current.Duration(); duration != nil {
		progress += " / " + embeds.FormatTimestamp(*duration)
	} else {
		progress += " / LIVE"
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(
		embeds.Info,
		c.env.Lang.CommandNowPlayingMessage(current.Title(), current.Link(), progress),
		embeds.WithThumbnail(current.Thumbnail()),
	))

	return nil
}
