package embeds

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

type EmbedType string

const (
	Info    EmbedType = "info"
	Warn    EmbedType = "warn"
	Error   EmbedType = "error"
	Success EmbedType = "success"
)

const (
	ColorInfo    = 0x00AD95
	ColorWarn    = 0xFFFF00
	ColorError   = 0xFF0000
	ColorSuccess = 0x00FF00
)

// Discord rejects embeds whose description is longer than this.
const MaxDescriptionLength = 4096

var colors = map[EmbedType]int{
	Info:    ColorInfo,
	Warn:    ColorWarn,
	Error:   ColorError,
	Success: ColorSuccess,
}

type Option func(embed *discordgo.MessageEmbed)

func WithTitle(title string) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Title = title
	}
}

func WithThumbnail(url string) Option {
	return func(embed *discordgo.MessageEmbed) {
		if url == "" {
			return
		}

		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
}

func WithFooter(text string, iconURL string) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: text, IconURL: iconURL}
	}
}

func WithAuthor(name string, iconURL string) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: name, IconURL: iconURL}
	}
}

func WithTimestamp(t time.Time) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Timestamp = t.Format(time.RFC3339)
	}
}

func WithColor(color int) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Color = color
	}
}

func WithField(name string, value string, inline bool) Option {
	return func(embed *discordgo.MessageEmbed) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: inline,
		})
	}
}

// CreateEmbed builds a status embed. Unknown types are rendered as info.
func CreateEmbed(embedType EmbedType, message string, options ...Option) *discordgo.MessageEmbed {
	color, ok := colors[embedType]
	if !ok {
		color = ColorInfo
	}

	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Color:       color,
		Description: TruncateString(message, MaxDescriptionLength, "..."),
	}

	for _, option := range options {
		option(embed)
	}

	return embed
}
