package commands

import (
	"context"

	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/queue"
)

type SkipCommand struct {
	env *Env
}

func NewSkipCommand(env *Env) *SkipCommand {
	return &SkipCommand{env: env}
}

func (c *SkipCommand) Meta() Meta {
	return Meta{
		Name:        "skip",
		Aliases:     []string{"s"},
		Description: c.env.Lang.CommandSkipMetaDescription(),
		Usage:       "{prefix}skip",
		Guards:      musicGuards,
	}
}

func (c *SkipCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	current := q.Tracks().First()

	if current == nil || !q.Skip() {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.MusicHelperNothingIsPlaying()))
		return nil
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(
		embeds.Success,
		c.env.Lang.CommandSkipSuccess(current.Title(), current.Link()),
		embeds.WithThumbnail(current.Thumbnail()),
	))

	return nil
}

type StopCommand struct {
	env *Env
}

func NewStopCommand(env *Env) *StopCommand {
	return &StopCommand{env: env}
}

func (c *StopCommand) Meta() Meta {
	return Meta{
		Name:        "stop",
		Aliases:     []string{"leave", "disconnect"},
		Description: c.env.Lang.CommandStopMetaDescription(),
		Usage:       "{prefix}stop",
		Guards:      musicGuards,
	}
}

func (c *StopCommand) Execute(_ context.Context, msg *Message) error {
	c.env.Registry.Remove(c.env.Registry.Get(msg.GuildID))
	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Success, c.env.Lang.CommandStopSuccess()))
	return nil
}

type PauseCommand struct {
	env *Env
}

func NewPauseCommand(env *Env) *PauseCommand {
	return &PauseCommand{env: env}
}

func (c *PauseCommand) Meta() Meta {
	return Meta{
		Name:        "pause",
		Description: c.env.Lang.CommandPauseMetaDescription(),
		Usage:       "{prefix}pause",
		Guards:      musicGuards,
	}
}

func (c *PauseCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	if !q.Playing() {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandPauseAlreadyPaused()))
		return nil
	}

	q.Pause()
	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Success, c.env.Lang.CommandPauseSuccess()))
	return nil
}

type ResumeCommand struct {
	env *Env
}

func NewResumeCommand(env *Env) *ResumeCommand {
	return &ResumeCommand{env: env}
}

func (c *ResumeCommand) Meta() Meta {
	return Meta{
		Name:        "resume",
		Aliases:     []string{"unpause"},
		Description: c.env.Lang.CommandResumeMetaDescription(),
		Usage:       "{prefix}resume",
		Guards:      musicGuards,
	}
}

func (c *ResumeCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	if q.Playing() {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandResumeAlreadyResumed()))
		return nil
	}

	q.ClearTimeout()
	q.Resume()
	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Success, c.env.Lang.CommandResumeSuccess()))
	return nil
}

type ShuffleCommand struct {
	env *Env
}

func NewShuffleCommand(env *Env) *ShuffleCommand {
	return &ShuffleCommand{env: env}
}

func (c *ShuffleCommand) Meta() Meta {
	return Meta{
		Name:        "shuffle",
		Description: c.env.Lang.CommandShuffleMetaDescription(),
		Usage:       "{prefix}shuffle",
		Guards:      musicGuards,
	}
}

func (c *ShuffleCommand) Execute(_ context.Context, msg *Message) error {
	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	shuffle := !q.ShuffleMode()

	q.SetShuffleMode(shuffle)
	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Info, c.env.Lang.CommandShuffleMessage(shuffle)))
	return nil
}

type RepeatCommand struct {
	env *Env
}

func NewRepeatCommand(env *Env) *RepeatCommand {
	return &RepeatCommand{env: env}
}

func (c *RepeatCommand) Meta() Meta {
	return Meta{
		Name:        "repeat",
		Aliases:     []string{"loop"},
		Description: c.env.Lang.CommandRepeatMetaDescription(),
		Usage:       "{prefix}repeat <" + c.env.Lang.CommandRepeatMetaArgs() + ">",
		Guards:      musicGuards,
	}
}

func (c *RepeatCommand) Execute(_ context.Context, msg *Message) error {
	if len(msg.Args) == 0 {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandInvalidArgs(c.env.Config.Prefix, "repeat")))
		return nil
	}

	mode, ok := queue.ParseLoopMode(msg.Args[0])

	if !ok {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Error, c.env.Lang.CommandInvalidArgs(c.env.Config.Prefix, "repeat")))
		return nil
	}

	q := c.env.currentQueue(msg)

	if q == nil {
		return nil
	}

	q.SetLoopMode(mode)
	c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Info, c.env.Lang.CommandRepeatMessage(mode.String())))
	return nil
}
