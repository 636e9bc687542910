package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fakelag/jukebox/embeds"
)

type HelpCommand struct {
	env     *Env
	manager *Manager
}

func NewHelpCommand(env *Env, manager *Manager) *HelpCommand {
	return &HelpCommand{env: env, manager: manager}
}

func (c *HelpCommand) Meta() Meta {
	return Meta{
		Name:        "help",
		Aliases:     []string{"h", "commands"},
		Description: c.env.Lang.CommandHelpMetaDescription(),
		Usage:       "{prefix}help [command]",
	}
}

func (c *HelpCommand) Execute(_ context.Context, msg *Message) error {
	if len(msg.Args) > 0 {
		return c.details(msg, msg.Args[0])
	}

	names := make([]string, 0, len(c.manager.Commands()))

	for _, cmd := range c.manager.Commands() {
		names = append(names, fmt.Sprintf("`%s`", cmd.Meta().Name))
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(
		embeds.Info,
		strings.Join(names, ", "),
		embeds.WithTitle(c.env.Lang.CommandHelpEmbedTitle()),
		embeds.WithFooter(c.env.Lang.CommandHelpEmbedFooter(c.env.Config.Prefix), ""),
	))

	return nil
}

func (c *HelpCommand) details(msg *Message, name string) error {
	cmd := c.manager.Get(name)

	if cmd == nil {
		c.env.send(msg.ChannelID, embeds.CreateEmbed(embeds.Warn, c.env.Lang.CommandUnknown(name)))
		return nil
	}

	meta := cmd.Meta()
	aliases := "-"

	if len(meta.Aliases) > 0 {
		aliases = strings.Join(meta.Aliases, ", ")
	}

	c.env.send(msg.ChannelID, embeds.CreateEmbed(
		embeds.Info,
		c.env.Lang.CommandHelpCommandDetails(meta.Name, meta.Description, aliases, c.env.usage(meta)),
		embeds.WithTitle(c.env.Lang.CommandHelpEmbedDetail(meta.Name)),
	))

	return nil
}
