package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/embeds"
)

type latencyColor struct {
	min   int64
	max   int64
	color int
}

var latencyColors = []latencyColor{
	{0, 20, 0x0DFF00},
	{21, 50, 0x0BC700},
	{51, 100, 0xE5ED02},
	{101, 150, 0xFF8C00},
	{150, 200, 0xFF6A00},
}

const defaultLatencyColor = 0xFF0D00

// LatencyColor picks the embed colour for a websocket latency in milliseconds.
func LatencyColor(ms int64) int {
	for _, lc := range latencyColors {
		if lc.min <= ms && ms <= lc.max {
			return lc.color
		}
	}

	return defaultLatencyColor
}

type PingCommand struct {
	env *Env
}

func NewPingCommand(env *Env) *PingCommand {
	return &PingCommand{env: env}
}

func (c *PingCommand) Meta() Meta {
	return Meta{
		Name:        "ping",
		Aliases:     []string{"pong", "peng", "pingpong"},
		Description: c.env.Lang.CommandPingMetaDescription(),
		Usage:       "{prefix}ping",
	}
}

func (c *PingCommand) Execute(_ context.Context, msg *Message) error {
	reply, err := c.env.Session.ChannelMessageSend(msg.ChannelID, c.env.Lang.CommandPingInitialMessage())

	if err != nil {
		return errors.Wrap(err, "send ping message")
	}

	apiLatency, err := messageLatency(msg.ID, reply.ID)

	if err != nil {
		return err
	}

	wsLatency := c.env.Session.HeartbeatLatency().Milliseconds()

	embed := embeds.CreateEmbed(embeds.Info, "",
		embeds.WithAuthor(c.env.Lang.CommandPingResultMessage(), ""),
		embeds.WithColor(LatencyColor(wsLatency)),
		embeds.WithField(c.env.Lang.CommandPingAPILatency(), fmt.Sprintf("**`%d`** ms", apiLatency.Milliseconds()), true),
		embeds.WithField(c.env.Lang.CommandPingWSLatency(), fmt.Sprintf("**`%d`** ms", wsLatency), true),
		embeds.WithFooter(c.env.Lang.CommandPingEmbedFooter(msg.Author.String()), msg.Author.AvatarURL("")),
		embeds.WithTimestamp(time.Now()),
	)

	if _, err := c.env.Session.ChannelMessageEditEmbed(msg.ChannelID, reply.ID, embed); err != nil {
		return errors.Wrap(err, "edit ping message")
	}

	return nil
}

// messageLatency is the time between the creation of two messages.
func messageLatency(requestID string, replyID string) (time.Duration, error) {
	request, err := snowflake.Parse(requestID)

	if err != nil {
		return 0, errors.Wrap(err, "parse message id")
	}

	reply, err := snowflake.Parse(replyID)

	if err != nil {
		return 0, errors.Wrap(err, "parse reply id")
	}

	return reply.Time().Sub(request.Time()), nil
}
