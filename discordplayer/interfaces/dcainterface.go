package discordinterface

import (
	"time"

	"github.com/fakelag/dca"
)

//go:generate mockgen -source=dcainterface.go -destination=../mocks/dcainterface.go -package=mocks

type DiscordAudio interface {
	NewStream(source dca.OpusReader, vc DiscordVoiceConnection, done chan error) DcaStreamingSession
	EncodeFile(path string, options *dca.EncodeOptions) (session *dca.EncodeSession, err error)
}

// DcaStreamingSession is a stream of opus frames into a voice connection.
type DcaStreamingSession interface {
	SetPaused(paused bool)
	PlaybackPosition() time.Duration
	Finished() (bool, error)
	Paused() bool
}

type DefaultDiscordAudio struct {
}

func (dda *DefaultDiscordAudio) NewStream(source dca.OpusReader, vc DiscordVoiceConnection, done chan error) DcaStreamingSession {
	return dca.NewStream(source, vc.GetRaw(), done)
}

func (dda *DefaultDiscordAudio) EncodeFile(path string, options *dca.EncodeOptions) (session *dca.EncodeSession, err error) {
	return dca.EncodeFile(path, options)
}

func NewDiscordAudio() DiscordAudio {
	return &DefaultDiscordAudio{}
}

// Verify *dca.StreamingSession implements DcaStreamingSession
var _ DcaStreamingSession = (*dca.StreamingSession)(nil)
