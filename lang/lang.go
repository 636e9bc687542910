package lang

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer renders the bot's user facing messages in one language.
type Printer struct {
	p *message.Printer
}

// New returns a printer for code, falling back to English when the language is unknown.
func New(code string) *Printer {
	tag := language.English

	if parsed, err := language.Parse(code); err == nil {
		if _, index, confidence := matcher.Match(parsed); confidence >= language.High {
			tag = supported[index]
		}
	}

	return &Printer{p: message.NewPrinter(tag)}
}

func (l *Printer) OnOff(on bool) string {
	if on {
		return l.p.Sprintf(stateOn)
	}
	return l.p.Sprintf(stateOff)
}

func (l *Printer) CommandInvalidArgs(prefix string, name string) string {
	return l.p.Sprintf(commandInvalidArgs, prefix, name)
}

func (l *Printer) CommandRateLimited() string {
	return l.p.Sprintf(commandRateLimited)
}

func (l *Printer) CommandUnknown(name string) string {
	return l.p.Sprintf(commandUnknown, name)
}

func (l *Printer) MusicHelperUserNotInVC() string {
	return l.p.Sprintf(musicHelperUserNotInVC)
}

func (l *Printer) MusicHelperBotCantConnect() string {
	return l.p.Sprintf(musicHelperBotCantConnect)
}

func (l *Printer) MusicHelperBotCantSpeak() string {
	return l.p.Sprintf(musicHelperBotCantSpeak)
}

func (l *Printer) MusicHelperNeedSameVC() string {
	return l.p.Sprintf(musicHelperNeedSameVC)
}

func (l *Printer) MusicHelperNothingIsPlaying() string {
	return l.p.Sprintf(musicHelperNothingIsPlaying)
}

func (l *Printer) CommandPingMetaDescription() string {
	return l.p.Sprintf(commandPingMetaDescription)
}

func (l *Printer) CommandPingInitialMessage() string {
	return l.p.Sprintf(commandPingInitialMessage)
}

func (l *Printer) CommandPingResultMessage() string {
	return l.p.Sprintf(commandPingResultMessage)
}

func (l *Printer) CommandPingAPILatency() string {
	return l.p.Sprintf(commandPingAPILatency)
}

func (l *Printer) CommandPingWSLatency() string {
	return l.p.Sprintf(commandPingWSLatency)
}

func (l *Printer) CommandPingEmbedFooter(tag string) string {
	return l.p.Sprintf(commandPingEmbedFooter, tag)
}

func (l *Printer) CommandPlayMetaDescription() string {
	return l.p.Sprintf(commandPlayMetaDescription)
}

func (l *Printer) CommandPlayMetaArgs() string {
	return l.p.Sprintf(commandPlayMetaArgs)
}

func (l *Printer) CommandPlayAlreadyPlaying(channelName string) string {
	return l.p.Sprintf(commandPlayAlreadyPlaying, channelName)
}

func (l *Printer) CommandPlayInvalidYoutubeURL() string {
	return l.p.Sprintf(commandPlayInvalidYoutubeURL)
}

func (l *Printer) CommandPlayInvalidSource() string {
	return l.p.Sprintf(commandPlayInvalidSource)
}

func (l *Printer) CommandPlayResourceNotFound() string {
	return l.p.Sprintf(commandPlayResourceNotFound)
}

func (l *Printer) CommandPlayResourceProcessingErr(reason string) string {
	return l.p.Sprintf(commandPlayResourceProcessingErr, reason)
}

func (l *Printer) CommandPlayTrackAdded(title string, url string) string {
	return l.p.Sprintf(commandPlayTrackAdded, title, url)
}

func (l *Printer) CommandPlayAlreadyQueuedTitle() string {
	return l.p.Sprintf(commandPlayAlreadyQueuedTitle)
}

func (l *Printer) CommandPlayAlreadyQueuedMsg(title string, url string, prefix string) string {
	return l.p.Sprintf(commandPlayAlreadyQueuedMsg, title, url, prefix)
}

func (l *Printer) CommandPlayAlreadyQueuedTitle2() string {
	return l.p.Sprintf(commandPlayAlreadyQueuedTitle2)
}

func (l *Printer) CommandPlayAlreadyQueuedMsg2(count int, prefix string) string {
	return l.p.Sprintf(commandPlayAlreadyQueuedMsg2, count, prefix)
}

func (l *Printer) CommandPlayQueueFull(maxSize int) string {
	return l.p.Sprintf(commandPlayQueueFull, maxSize)
}

func (l *Printer) CommandPlayCouldNotJoinVC(reason string) string {
	return l.p.Sprintf(commandPlayCouldNotJoinVC, reason)
}

func (l *Printer) CommandPlayYoutubePlaylistNotFound() string {
	return l.p.Sprintf(commandPlayYoutubePlaylistNotFound)
}

func (l *Printer) CommandPlayYoutubePlaylistEmpty() string {
	return l.p.Sprintf(commandPlayYoutubePlaylistEmpty)
}

func (l *Printer) CommandPlayYoutubeRDPlaylistNotSupported() string {
	return l.p.Sprintf(commandPlayYoutubeRDPlaylistUnsupported)
}

func (l *Printer) CommandPlayYoutubePlaylistAddingVideosFrom(video string, playlist string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistAddingFrom, playlist, video)
}

func (l *Printer) CommandPlayYoutubePlaylistAddingAllVideos(playlist string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistAddingAll, playlist)
}

func (l *Printer) CommandPlayYoutubePlaylistAddingFirstVideoErr(playlist string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistFirstErr, playlist)
}

func (l *Printer) CommandPlayYoutubePlaylistAddingRestVideosErr(playlist string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistRestErr, playlist)
}

func (l *Printer) CommandPlayYoutubePlaylistSuccess(playlist string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistSuccess, playlist)
}

func (l *Printer) CommandPlayYoutubePlaylistSuccess2(playlist string, video string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistSuccess2, playlist, video)
}

func (l *Printer) CommandPlayYoutubePlaylistSuccessFooter(prefix string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistSuccessFooter, prefix)
}

func (l *Printer) CommandPlayYoutubePlaylistLoadErr(reason string) string {
	return l.p.Sprintf(commandPlayYoutubePlaylistLoadErr, reason)
}

func (l *Printer) CommandPlayYoutubeSearchNoResults() string {
	return l.p.Sprintf(commandPlayYoutubeSearchNoResults)
}

func (l *Printer) CommandSkipMetaDescription() string {
	return l.p.Sprintf(commandSkipMetaDescription)
}

func (l *Printer) CommandSkipSuccess(title string, url string) string {
	return l.p.Sprintf(commandSkipSuccess, title, url)
}

func (l *Printer) CommandStopMetaDescription() string {
	return l.p.Sprintf(commandStopMetaDescription)
}

func (l *Printer) CommandStopSuccess() string {
	return l.p.Sprintf(commandStopSuccess)
}

func (l *Printer) CommandPauseMetaDescription() string {
	return l.p.Sprintf(commandPauseMetaDescription)
}

func (l *Printer) CommandPauseSuccess() string {
	return l.p.Sprintf(commandPauseSuccess)
}

func (l *Printer) CommandPauseAlreadyPaused() string {
	return l.p.Sprintf(commandPauseAlreadyPaused)
}

func (l *Printer) CommandResumeMetaDescription() string {
	return l.p.Sprintf(commandResumeMetaDescription)
}

func (l *Printer) CommandResumeSuccess() string {
	return l.p.Sprintf(commandResumeSuccess)
}

func (l *Printer) CommandResumeAlreadyResumed() string {
	return l.p.Sprintf(commandResumeAlreadyResumed)
}

func (l *Printer) CommandQueueMetaDescription() string {
	return l.p.Sprintf(commandQueueMetaDescription)
}

func (l *Printer) CommandQueueEmbedTitle() string {
	return l.p.Sprintf(commandQueueEmbedTitle)
}

func (l *Printer) CommandQueueEmbedFooter(page int, pages int) string {
	return l.p.Sprintf(commandQueueEmbedFooter, page, pages)
}

func (l *Printer) CommandNowPlayingMetaDescription() string {
	return l.p.Sprintf(commandNowPlayingMetaDescription)
}

func (l *Printer) CommandNowPlayingMessage(title string, url string, progress string) string {
	return l.p.Sprintf(commandNowPlayingMessage, title, url, progress)
}

func (l *Printer) CommandShuffleMetaDescription() string {
	return l.p.Sprintf(commandShuffleMetaDescription)
}

func (l *Printer) CommandShuffleMessage(on bool) string {
	return l.p.Sprintf(commandShuffleMessage, l.OnOff(on))
}

func (l *Printer) CommandRepeatMetaDescription() string {
	return l.p.Sprintf(commandRepeatMetaDescription)
}

func (l *Printer) CommandRepeatMetaArgs() string {
	return l.p.Sprintf(commandRepeatMetaArgs)
}

func (l *Printer) CommandRepeatMessage(mode string) string {
	return l.p.Sprintf(commandRepeatMessage, mode)
}

func (l *Printer) CommandHelpMetaDescription() string {
	return l.p.Sprintf(commandHelpMetaDescription)
}

func (l *Printer) CommandHelpEmbedTitle() string {
	return l.p.Sprintf(commandHelpEmbedTitle)
}

func (l *Printer) CommandHelpEmbedFooter(prefix string) string {
	return l.p.Sprintf(commandHelpEmbedFooter, prefix)
}

func (l *Printer) CommandHelpEmbedDetail(name string) string {
	return l.p.Sprintf(commandHelpEmbedDetail, name)
}

func (l *Printer) CommandHelpCommandDetails(name string, description string, aliases string, usage string) string {
	return l.p.Sprintf(commandHelpCommandDetails, name, description, aliases, usage)
}

func (l *Printer) MusicTrackStart(title string, url string) string {
	return l.p.Sprintf(musicTrackStart, title, url)
}

func (l *Printer) MusicTrackError(title string, url string, reason string) string {
	return l.p.Sprintf(musicTrackError, title, url, reason)
}

func (l *Printer) MusicQueueEnded(prefix string) string {
	return l.p.Sprintf(musicQueueEnded, prefix)
}

func (l *Printer) VoiceBotDisconnected() string {
	return l.p.Sprintf(voiceBotKicked)
}

func (l *Printer) VoiceQueuePausedTitle() string {
	return l.p.Sprintf(voiceQueuePausedT)
}

func (l *Printer) VoiceQueuePaused(duration string) string {
	return l.p.Sprintf(voiceQueuePaused, duration)
}

func (l *Printer) VoiceQueueDeletedTitle() string {
	return l.p.Sprintf(voiceQueueDeletedT)
}

func (l *Printer) VoiceQueueDeleted(duration string) string {
	return l.p.Sprintf(voiceQueueDeleted, duration)
}

func (l *Printer) VoiceQueueResumedTitle() string {
	return l.p.Sprintf(voiceQueueResumedT)
}

func (l *Printer) VoiceQueueResumed(title string, url string) string {
	return l.p.Sprintf(voiceQueueResumed, title, url)
}
