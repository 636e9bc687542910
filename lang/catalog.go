package lang

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	commandInvalidArgs = "COMMAND_INVALID_ARGS"
	commandRateLimited = "COMMAND_RATE_LIMITED"
	commandUnknown     = "COMMAND_UNKNOWN"

	musicHelperUserNotInVC      = "MUSIC_HELPER_USER_NOT_IN_VC"
	musicHelperBotCantConnect   = "MUSIC_HELPER_BOT_CANT_CONNECT"
	musicHelperBotCantSpeak     = "MUSIC_HELPER_BOT_CANT_SPEAK"
	musicHelperNeedSameVC       = "MUSIC_HELPER_NEED_SAME_VC"
	musicHelperNothingIsPlaying = "MUSIC_HELPER_NOTHING_IS_PLAYING"

	commandPingMetaDescription = "COMMAND_PING_META_DESCRIPTION"
	commandPingInitialMessage  = "COMMAND_PING_INITIAL_MESSAGE"
	commandPingResultMessage   = "COMMAND_PING_RESULT_MESSAGE"
	commandPingAPILatency      = "COMMAND_PING_API_LATENCY"
	commandPingWSLatency       = "COMMAND_PING_WS_LATENCY"
	commandPingEmbedFooter     = "COMMAND_PING_EMBED_FOOTER"

	commandPlayMetaDescription              = "COMMAND_PLAY_META_DESCRIPTION"
	commandPlayMetaArgs                     = "COMMAND_PLAY_META_ARGS"
	commandPlayAlreadyPlaying               = "COMMAND_PLAY_ALREADY_PLAYING"
	commandPlayInvalidYoutubeURL            = "COMMAND_PLAY_INVALID_YOUTUBE_URL"
	commandPlayInvalidSource                = "COMMAND_PLAY_INVALID_SOURCE"
	commandPlayResourceNotFound             = "COMMAND_PLAY_RESOURCE_NOT_FOUND"
	commandPlayResourceProcessingErr        = "COMMAND_PLAY_RESOURCE_PROCESSING_ERR"
	commandPlayTrackAdded                   = "COMMAND_PLAY_TRACK_ADDED"
	commandPlayAlreadyQueuedTitle           = "COMMAND_PLAY_ALREADY_QUEUED_TITLE"
	commandPlayAlreadyQueuedMsg             = "COMMAND_PLAY_ALREADY_QUEUED_MSG"
	commandPlayAlreadyQueuedTitle2          = "COMMAND_PLAY_ALREADY_QUEUED_TITLE2"
	commandPlayAlreadyQueuedMsg2            = "COMMAND_PLAY_ALREADY_QUEUED_MSG2"
	commandPlayQueueFull                    = "COMMAND_PLAY_QUEUE_FULL"
	commandPlayCouldNotJoinVC               = "COMMAND_PLAY_COULD_NOT_JOIN_VC"
	commandPlayYoutubePlaylistNotFound      = "COMMAND_PLAY_YOUTUBE_PLAYLIST_NOT_FOUND"
	commandPlayYoutubePlaylistEmpty         = "COMMAND_PLAY_YOUTUBE_PLAYLIST_EMPTY"
	commandPlayYoutubeRDPlaylistUnsupported = "COMMAND_PLAY_YOUTUBE_RD_PLAYLIST_NOT_SUPPORTED"
	commandPlayYoutubePlaylistAddingFrom    = "COMMAND_PLAY_YOUTUBE_PLAYLIST_ADDING_VIDEOS_FROM"
	commandPlayYoutubePlaylistAddingAll     = "COMMAND_PLAY_YOUTUBE_PLAYLIST_ADDING_ALL_VIDEOS"
	commandPlayYoutubePlaylistFirstErr      = "COMMAND_PLAY_YOUTUBE_PLAYLIST_ADDING_FIRST_VIDEOS_ERR"
	commandPlayYoutubePlaylistRestErr       = "COMMAND_PLAY_YOUTUBE_PLAYLIST_ADDING_REST_VIDEOS_ERR"
	commandPlayYoutubePlaylistSuccess       = "COMMAND_PLAY_YOUTUBE_PLAYLIST_SUCCESS"
	commandPlayYoutubePlaylistSuccess2      = "COMMAND_PLAY_YOUTUBE_PLAYLIST_SUCCESS2"
	commandPlayYoutubePlaylistSuccessFooter = "COMMAND_PLAY_YOUTUBE_PLAYLIST_SUCCESS_FOOTER"
	commandPlayYoutubePlaylistLoadErr       = "COMMAND_PLAY_YOUTUBE_PLAYLIST_LOAD_ERR"
	commandPlayYoutubeSearchNoResults       = "COMMAND_PLAY_YOUTUBE_SEARCH_NO_RESULTS"

	commandSkipMetaDescription = "COMMAND_SKIP_META_DESCRIPTION"
	commandSkipSuccess         = "COMMAND_SKIP_SUCCESS"

	commandStopMetaDescription = "COMMAND_STOP_META_DESCRIPTION"
	commandStopSuccess         = "COMMAND_STOP_SUCCESS"

	commandPauseMetaDescription = "COMMAND_PAUSE_META_DESCRIPTION"
	commandPauseSuccess         = "COMMAND_PAUSE_SUCCESS"
	commandPauseAlreadyPaused   = "COMMAND_PAUSE_ALREADY_PAUSED"

	commandResumeMetaDescription = "COMMAND_RESUME_META_DESCRIPTION"
	commandResumeSuccess         = "COMMAND_RESUME_SUCCESS"
	commandResumeAlreadyResumed  = "COMMAND_RESUME_ALREADY_RESUMED"

	commandQueueMetaDescription = "COMMAND_QUEUE_META_DESCRIPTION"
	commandQueueEmbedTitle      = "COMMAND_QUEUE_EMBED_TITLE"
	commandQueueEmbedFooter     = "COMMAND_QUEUE_EMBED_FOOTER"

	commandNowPlayingMetaDescription = "COMMAND_NOWPLAYING_META_DESCRIPTION"
	commandNowPlayingMessage         = "COMMAND_NOWPLAYING_MESSAGE"

	commandShuffleMetaDescription = "COMMAND_SHUFFLE_META_DESCRIPTION"
	commandShuffleMessage         = "COMMAND_SHUFFLE_MESSAGE"

	commandRepeatMetaDescription = "COMMAND_REPEAT_META_DESCRIPTION"
	commandRepeatMetaArgs        = "COMMAND_REPEAT_META_ARGS"
	commandRepeatMessage         = "COMMAND_REPEAT_MESSAGE"

	commandHelpMetaDescription = "COMMAND_HELP_META_DESCRIPTION"
	commandHelpEmbedTitle      = "COMMAND_HELP_EMBED_TITLE"
	commandHelpEmbedFooter     = "COMMAND_HELP_EMBED_FOOTER"
	commandHelpEmbedDetail     = "COMMAND_HELP_EMBED_DETAIL"
	commandHelpCommandDetails  = "COMMAND_HELP_COMMAND_DETAILS"

	musicTrackStart    = "MUSIC_TRACK_START"
	musicTrackError    = "MUSIC_TRACK_ERROR"
	musicQueueEnded    = "MUSIC_QUEUE_ENDED"
	voiceBotKicked     = "VOICE_BOT_DISCONNECTED"
	voiceQueuePausedT  = "VOICE_QUEUE_PAUSED_TITLE"
	voiceQueuePaused   = "VOICE_QUEUE_PAUSED"
	voiceQueueDeletedT = "VOICE_QUEUE_DELETED_TITLE"
	voiceQueueDeleted  = "VOICE_QUEUE_DELETED"
	voiceQueueResumedT = "VOICE_QUEUE_RESUMED_TITLE"
	voiceQueueResumed  = "VOICE_QUEUE_RESUMED"
	stateOn            = "STATE_ON"
	stateOff           = "STATE_OFF"
)

var english = map[string]string{
	commandInvalidArgs: "Invalid argument, type **`%shelp %s`** for more info",
	commandRateLimited: "You are sending commands too fast, please slow down",
	commandUnknown:     "Unknown command **`%s`**",

	musicHelperUserNotInVC:      "I'm sorry, but you need to be in a voice channel to do that",
	musicHelperBotCantConnect:   "I'm sorry, but I need **`CONNECT`** permission to do this",
	musicHelperBotCantSpeak:     "I'm sorry, but I need **`SPEAK`** permission to do this",
	musicHelperNeedSameVC:       "You need to be in the same voice channel as mine",
	musicHelperNothingIsPlaying: "There is nothing playing",

	commandPingMetaDescription: "Shows the current ping of the bot",
	commandPingInitialMessage:  "🏓 Pinging...",
	commandPingResultMessage:   "🏓 PONG",
	commandPingAPILatency:      "📶 API Latency",
	commandPingWSLatency:       "🌐 WebSocket Latency",
	commandPingEmbedFooter:     "Latency of: %s",

	commandPlayMetaDescription:              "Play some music",
	commandPlayMetaArgs:                     "youtube video / playlist / url / title",
	commandPlayAlreadyPlaying:               "The music player is already playing to **%s** voice channel",
	commandPlayInvalidYoutubeURL:            "Invalid YouTube URL",
	commandPlayInvalidSource:                "Invalid source, only YouTube links are supported",
	commandPlayResourceNotFound:             "Could not find any resource for that query",
	commandPlayResourceProcessingErr:        "Error while processing track resource\nReason: **`%s`**",
	commandPlayTrackAdded:                   "✅ Track **[%s](%s)** has been added to the queue",
	commandPlayAlreadyQueuedTitle:           "Already queued / duplicate",
	commandPlayAlreadyQueuedMsg:             "Track **[%s](%s)** is already queued, and duplicate tracks are not allowed here.\nPlease use **`%srepeat`** instead",
	commandPlayAlreadyQueuedTitle2:          "Tracks that are already queued / duplicate",
	commandPlayAlreadyQueuedMsg2:            "%d tracks were skipped because they are duplicates, and duplicate tracks are not allowed here. Please use **`%srepeat`** instead",
	commandPlayQueueFull:                    "The queue is full, it can hold at most %d tracks",
	commandPlayCouldNotJoinVC:               "Error: Could not join the voice channel!\nReason: **`%s`**",
	commandPlayYoutubePlaylistNotFound:      "Playlist not found",
	commandPlayYoutubePlaylistEmpty:         "The specified playlist is empty",
	commandPlayYoutubeRDPlaylistUnsupported: "Mix playlists are not supported",
	commandPlayYoutubePlaylistAddingFrom:    "Adding all tracks in playlist: %s, starting from %s, hang on...",
	commandPlayYoutubePlaylistAddingAll:     "Adding all tracks in playlist: %s, hang on...",
	commandPlayYoutubePlaylistFirstErr:      "Could not load the first track of playlist: %s",
	commandPlayYoutubePlaylistRestErr:       "Could not load the tracks of playlist: %s",
	commandPlayYoutubePlaylistSuccess:       "✅ All tracks in playlist: %s, have been added to the queue!",
	commandPlayYoutubePlaylistSuccess2:      "✅ All tracks in playlist: %s, starting from %s, have been added to the queue!",
	commandPlayYoutubePlaylistSuccessFooter: "Shuffle mode is on, use %sshuffle to turn it off",
	commandPlayYoutubePlaylistLoadErr:       "Could not load the playlist\nReason: **`%s`**",
	commandPlayYoutubeSearchNoResults:       "I could not obtain any search results",

	commandSkipMetaDescription: "Skip the current track",
	commandSkipSuccess:         "⏭ Skipped **[%s](%s)**",

	commandStopMetaDescription: "Stop the music player and clear the queue",
	commandStopSuccess:         "⏹ Queue stopped.",

	commandPauseMetaDescription: "Pause the music player",
	commandPauseSuccess:         "⏸ Paused the music player",
	commandPauseAlreadyPaused:   "The music player is already paused",

	commandResumeMetaDescription: "Resume the music player",
	commandResumeSuccess:         "▶ Resumed the music player",
	commandResumeAlreadyResumed:  "The music player is not paused",

	commandQueueMetaDescription: "Show the music queue",
	commandQueueEmbedTitle:      "🎶 Music Queue",
	commandQueueEmbedFooter:     "Page %d of %d",

	commandNowPlayingMetaDescription: "Show the track that is currently playing",
	commandNowPlayingMessage:         "▶ Now playing: **[%s](%s)**\n`%s`",

	commandShuffleMetaDescription: "Toggle shuffle mode for playlists",
	commandShuffleMessage:         "🔀 Shuffle mode is now **%s**",

	commandRepeatMetaDescription: "Repeat the current track or the whole queue",
	commandRepeatMetaArgs:        "off | one | all",
	commandRepeatMessage:         "🔁 Repeat mode is now **%s**",

	commandHelpMetaDescription: "Show the command list",
	commandHelpEmbedTitle:      "Command list",
	commandHelpEmbedFooter:     "Use %shelp <command> to get more info about a command",
	commandHelpEmbedDetail:     "Information for the %s command",
	commandHelpCommandDetails:  "**Name**: %s\n**Description**: %s\n**Aliases**: %s\n**Usage**: %s",

	musicTrackStart:    "▶ Start playing: **[%s](%s)**",
	musicTrackError:    "Error while playing **[%s](%s)**\nReason: **`%s`**",
	musicQueueEnded:    "⏹ Queue ended. Use **`%splay`** to play some more music",
	voiceBotKicked:     "I'm disconnected from the voice channel, the queue will be deleted",
	voiceQueuePausedT:  "⏸ Queue paused.",
	voiceQueuePaused:   "Currently, no one is in my voice channel, to save resources, the queue was paused. If there's no one who joins my voice channel in the next %s, the queue will be deleted.",
	voiceQueueDeletedT: "⏹ Queue deleted.",
	voiceQueueDeleted:  "%s have passed and there is no one who joins my voice channel, the queue was deleted.",
	voiceQueueResumedT: "▶ Queue resumed",
	voiceQueueResumed:  "Someones joins the voice channel. Enjoy the music 🎶\nNow Playing: **[%s](%s)**",
	stateOn:            "on",
	stateOff:           "off",
}

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range english {
		if err := message.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
}

// Supported reports whether messages can be printed in the given language.
func Supported(code string) bool {
	tag, err := language.Parse(code)

	if err != nil {
		return false
	}

	_, _, confidence := matcher.Match(tag)
	return confidence >= language.High
}
