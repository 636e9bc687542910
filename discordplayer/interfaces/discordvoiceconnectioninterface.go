package discordinterface

import "github.com/bwmarrin/discordgo"

//go:generate mockgen -source=discordvoiceconnectioninterface.go -destination=../mocks/discordvoiceconnectioninterface.go -package=mocks

type DiscordVoiceConnection interface {
	Speaking(b bool) error
	IsReady() bool
	Disconnect() error
	GetChannelID() string
	GetRaw() *discordgo.VoiceConnection
}

type DefaultDiscordVoiceConnection struct {
	voiceConn *discordgo.VoiceConnection
}

func (dvc *DefaultDiscordVoiceConnection) Speaking(b bool) error {
	return dvc.voiceConn.Speaking(b)
}

func (dvc *DefaultDiscordVoiceConnection) IsReady() bool {
	dvc.voiceConn.RLock()
	defer dvc.voiceConn.RUnlock()
	return dvc.voiceConn.Ready
}

func (dvc *DefaultDiscordVoiceConnection) Disconnect() error {
	return dvc.voiceConn.Disconnect()
}

func (dvc *DefaultDiscordVoiceConnection) GetChannelID() string {
	dvc.voiceConn.RLock()
	defer dvc.voiceConn.RUnlock()
	return dvc.voiceConn.ChannelID
}

func (dvc *DefaultDiscordVoiceConnection) GetRaw() *discordgo.VoiceConnection {
	return dvc.voiceConn
}

func NewDiscordVoiceConnection(voiceConn *discordgo.VoiceConnection) DiscordVoiceConnection {
	return &DefaultDiscordVoiceConnection{
		voiceConn: voiceConn,
	}
}
