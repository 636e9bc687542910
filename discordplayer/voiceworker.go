package discordplayer

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/fakelag/dca"

	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/entities"
)

type DcaMediaSession struct {
	encodingSession  *dca.EncodeSession
	streamingSession discordinterface.DcaStreamingSession
	startedAt        time.Duration
	done             chan error
}

func (session *DcaMediaSession) position() time.Duration {
	if session.streamingSession == nil {
		return session.startedAt
	}

	return session.startedAt + session.streamingSession.PlaybackPosition()
}

func (dms *DiscordMusicSession) playMediaFile(
	ctx context.Context,
	mediaFile entities.Media,
	startPlaybackAt time.Duration,
) (
	keepPlayingCurrentMedia bool,
	keepPlayingCurrentMediaFrom time.Duration,
	err error,
) {
	playMediaCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err = dms.checkDiscordVoiceConnection()

	if err != nil {
		return
	}

	err = mediaFile.EnsureLoaded()

	if err != nil {
		return
	}

	dms.drainSkipCommand()

	voiceConnection := dms.getVoiceConnection()
	_ = voiceConnection.Speaking(true)

	dms.logger.Debug("streaming media", "id", mediaFile.ID(), "from", startPlaybackAt)

	session, err := dms.playUrlInDiscord(mediaFile.FileURL(), voiceConnection, startPlaybackAt)

	if err != nil {
		_ = voiceConnection.Speaking(false)
		return
	}

	dms.setCurrentMediaSession(session)
	defer dms.setCurrentMediaSession(nil)

	fileUrlExpiresAt := mediaFile.FileURLExpiresAt()
	reloadChan := make(chan bool, 1)

	if fileUrlExpiresAt != nil {
		go dms.checkForMediaFileExpiration(playMediaCtx, fileUrlExpiresAt, reloadChan)
	}

	select {
	case err = <-session.done:
		dms.cleanupEncodingAndVoiceSession(session.encodingSession, voiceConnection)

		if err == nil || err == io.EOF {
			err = nil
			return
		}

		if !strings.Contains(err.Error(), "Voice connection closed") {
			return
		}

		dms.logger.Warn("voice connection closed while streaming", "id", mediaFile.ID())

		err = nil
		position := session.position()

		if mediaFileDuration := mediaFile.Duration(); mediaFileDuration != nil {
			if (*mediaFileDuration - position).Seconds() < 2 {
				return
			}
		}

		keepPlayingCurrentMedia = true

		if mediaFile.CanJumpToTimeStamp() {
			keepPlayingCurrentMediaFrom = position
		}

		return
	case <-dms.chanSkipCommand:
		dms.cleanupEncodingAndVoiceSession(session.encodingSession, voiceConnection)
		return
	case <-reloadChan:
		dms.logger.Debug("stream url expiring, reloading", "id", mediaFile.ID())
		dms.cleanupEncodingAndVoiceSession(session.encodingSession, voiceConnection)

		keepPlayingCurrentMedia = true

		if mediaFile.CanJumpToTimeStamp() {
			keepPlayingCurrentMediaFrom = session.position()
		}

		return
	case <-playMediaCtx.Done():
		dms.cleanupEncodingAndVoiceSession(session.encodingSession, voiceConnection)

		err = playMediaCtx.Err()
		return
	}
}

func (dms *DiscordMusicSession) playUrlInDiscord(
	url string,
	voiceConnection discordinterface.DiscordVoiceConnection,
	startPlaybackAt time.Duration,
) (*DcaMediaSession, error) {
	options := *dca.StdEncodeOptions
	options.RawOutput = true
	options.Bitrate = 96
	options.Application = "lowdelay"
	options.StartTime = int(startPlaybackAt.Seconds())

	encodingSession, err := dms.dca.EncodeFile(url, &options)

	if err != nil {
		return nil, err
	}

	done := make(chan error, 1)

	time.Sleep(250 * time.Millisecond)
	streamingSession := dms.dca.NewStream(encodingSession, voiceConnection, done)

	if streamingSession != nil && dms.Paused() {
		streamingSession.SetPaused(true)
	}

	return &DcaMediaSession{
		encodingSession:  encodingSession,
		streamingSession: streamingSession,
		startedAt:        time.Duration(options.StartTime) * time.Second,
		done:             done,
	}, nil
}

func (dms *DiscordMusicSession) checkDiscordVoiceConnection() error {
	dms.mutex.Lock()
	defer dms.mutex.Unlock()

	if dms.disconnected {
		return ErrSessionDisconnected
	}

	if dms.voiceConnection != nil && dms.voiceConnection.IsReady() {
		return nil
	}

	dms.logger.Info("rejoining voice channel")

	newVoiceConnection, err := dms.discordSession.ChannelVoiceJoin(dms.guildID, dms.voiceChannelID, false, true)

	if err != nil {
		return err
	}

	dms.voiceConnection = newVoiceConnection
	return nil
}

func (dms *DiscordMusicSession) getVoiceConnection() discordinterface.DiscordVoiceConnection {
	dms.mutex.RLock()
	defer dms.mutex.RUnlock()
	return dms.voiceConnection
}

func (dms *DiscordMusicSession) setCurrentMediaSession(session *DcaMediaSession) {
	dms.mutex.Lock()
	defer dms.mutex.Unlock()
	dms.currentMediaSession = session
}

func (dms *DiscordMusicSession) drainSkipCommand() {
	select {
	case <-dms.chanSkipCommand:
	default:
	}
}

func (dms *DiscordMusicSession) cleanupEncodingAndVoiceSession(
	encodingSession *dca.EncodeSession,
	voiceConnection discordinterface.DiscordVoiceConnection,
) {
	if encodingSession != nil {
		encodingSession.Cleanup()
	}

	_ = voiceConnection.Speaking(false)
}

func (dms *DiscordMusicSession) checkForMediaFileExpiration(
	ctx context.Context,
	fileUrlExpiresAt *time.Time,
	reloadChan chan bool,
) {
	for {
		if time.Since(*fileUrlExpiresAt) > -10*time.Second {
			close(reloadChan)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Second):
		}
	}
}
