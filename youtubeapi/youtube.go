package youtubeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/command"
)

var (
	ErrorUnrecognisedObject = errors.New("unrecognised object type")
	ErrorInvalidYtdlpData   = errors.New("invalid ytdlp data")
	ErrorNoVideoFound       = errors.New("no video found")
	ErrorNoPlaylistFound    = errors.New("no playlist found")
)

type YtDlpObject struct {
	// "playlist", "video"
	Type string `json:"_type"`
}

type YtDlpVideo struct {
	YtDlpObject
	ID           string `json:"id"`
	Title        string `json:"fulltitle"`
	Duration     int    `json:"duration"`
	Thumbnail    string `json:"thumbnail"`
	IsLiveStream bool   `json:"is_live"`
}

type YtDlpPlayListThumbnail struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type YtDlpPlayListEntry struct {
	YtDlpObject
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	Duration   int                      `json:"duration"`
	LiveStatus string                   `json:"live_status"`
	Thumbnails []YtDlpPlayListThumbnail `json:"thumbnails"`
}

type YtDlpPlayList struct {
	YtDlpObject
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	PlaylistCount int                   `json:"playlist_count"`
	PlaylistURL   string                `json:"webpage_url"`
	Entries       []*YtDlpPlayListEntry `json:"entries"`
}

// MetadataClient is the subset of the kkdai youtube client used for metadata lookups.
type MetadataClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error)
}

type YoutubeOptions struct {
	YtDlpPath        string
	StreamURLTimeout time.Duration
	HTTPTimeout      time.Duration
}

type Youtube struct {
	executor             command.CommandExecutor
	metadata             MetadataClient
	ytDlpPath            string
	streamUrlTimeout     time.Duration
	streamUrlExpireRegex *regexp.Regexp
}

func NewYoutubeAPI() *Youtube {
	return NewYoutubeAPIEx(&YoutubeOptions{
		YtDlpPath:        "yt-dlp",
		StreamURLTimeout: 30 * time.Second,
		HTTPTimeout:      15 * time.Second,
	})
}

func NewYoutubeAPIEx(options *YoutubeOptions) *Youtube {
	ytDlpPath := options.YtDlpPath

	if ytDlpPath == "" {
		ytDlpPath = "yt-dlp"
	}

	return &Youtube{
		executor: &command.DefaultCommandExecutor{},
		metadata: &youtube.Client{
			HTTPClient: &http.Client{
				Timeout: options.HTTPTimeout,
			},
		},
		ytDlpPath:            ytDlpPath,
		streamUrlTimeout:     options.StreamURLTimeout,
		streamUrlExpireRegex: regexp.MustCompile("(expire)(\\/|=)(\\d+)(\\/|=|&|$)"),
	}
}

func (yt *Youtube) SetCmdExecutor(exec command.CommandExecutor) {
	yt.executor = exec
}

func (yt *Youtube) SetMetadataClient(client MetadataClient) {
	yt.metadata = client
}

// GetVideo looks up video metadata. The stream URL is resolved lazily by EnsureLoaded.
func (yt *Youtube) GetVideo(ctx context.Context, videoID string) (*YoutubeMedia, error) {
	if videoID == "" {
		return nil, ErrorNoVideoFound
	}

	video, err := yt.metadata.GetVideoContext(ctx, videoID)

	if err != nil {
		return nil, errors.Wrapf(err, "get video %s", videoID)
	}

	if video == nil || video.ID == "" {
		return nil, ErrorNoVideoFound
	}

	thumbnailUrl := ""
	var thumbnailWidth uint

	for _, thumbnail := range video.Thumbnails {
		if thumbnail.Width > thumbnailWidth {
			thumbnailUrl = thumbnail.URL
			thumbnailWidth = thumbnail.Width
		}
	}

	return &YoutubeMedia{
		VideoID:           video.ID,
		VideoTitle:        CleanTitle(video.Title),
		VideoThumbnail:    thumbnailUrl,
		VideoIsLiveStream: video.Duration == 0 && video.HLSManifestURL != "",
		VideoDuration:     video.Duration,
		ytAPI:             yt,
	}, nil
}

// GetPlaylist looks up a playlist and its entries. Mix playlists are returned
// without entries. When the metadata client cannot read the playlist yt-dlp is
// used instead.
// isPlaylistNotFound reports whether the metadata client rejected the
// playlist itself rather than failing to reach youtube.
func isPlaylistNotFound(err error) bool {
	var status youtube.ErrPlaylistStatus
	return errors.Is(err, youtube.ErrInvalidPlaylist) || errors.As(err, &status)
}

func (yt *Youtube) GetPlaylist(ctx context.Context, playlistID string) (*YoutubePlaylist, error) {
	if playlistID == "" {
		return nil, ErrorNoPlaylistFound
	}

	if isMixPlaylistID(playlistID) {
		return &YoutubePlaylist{
			PlaylistID:   playlistID,
			PlaylistLink: PlaylistURL(playlistID),
			mix:          true,
		}, nil
	}

	playlist, err := yt.metadata.GetPlaylistContext(ctx, PlaylistURL(playlistID))

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		ytDlpPlaylist, ytDlpErr := yt.GetYoutubePlaylist(PlaylistURL(playlistID))

		if ytDlpErr != nil {
			if isPlaylistNotFound(err) || errors.Is(ytDlpErr, ErrorNoPlaylistFound) {
				return nil, ErrorNoPlaylistFound
			}

			return nil, errors.Wrapf(err, "get playlist %s", playlistID)
		}

		return ytDlpPlaylist, nil
	}

	if playlist == nil {
		return nil, ErrorNoPlaylistFound
	}

	pl := &YoutubePlaylist{
		PlaylistID:    playlist.ID,
		PlaylistTitle: CleanTitle(playlist.Title),
		PlaylistLink:  PlaylistURL(playlist.ID),
		mediaList:     make([]*YoutubeMedia, 0, len(playlist.Videos)),
	}

	for _, entry := range playlist.Videos {
		if entry == nil {
			continue
		}

		thumbnailUrl := ""
		var thumbnailWidth uint

		for _, thumbnail := range entry.Thumbnails {
			if thumbnail.Width > thumbnailWidth {
				thumbnailUrl = thumbnail.URL
				thumbnailWidth = thumbnail.Width
			}
		}

		pl.mediaList = append(pl.mediaList, &YoutubeMedia{
			VideoID:           entry.ID,
			VideoTitle:        CleanTitle(entry.Title),
			VideoThumbnail:    thumbnailUrl,
			VideoIsLiveStream: entry.Duration == 0,
			VideoDuration:     entry.Duration,
			ytAPI:             yt,
		})
	}

	return pl, nil
}

func (yt *Youtube) SearchYoutubeMedia(numSearchResults int, searchTerm string) ([]*YoutubeMedia, error) {
	replacer := strings.NewReplacer(
		"\"", "",
		"'", "",
	)

	videoArg := fmt.Sprintf("ytsearch%d:%s", numSearchResults, replacer.Replace(searchTerm))

	args := []string{
		videoArg,
		"--extract-audio",
		"--quiet",
		"--audio-format", "opus",
		"--ignore-errors",
		"--no-color",
		"--no-check-formats",
		"--max-downloads", "0",
		"-s",
		"--get-url",
		"--print-json",
	}

	stdout, err := yt.runYtDlp(args...)

	if err != nil {
		return nil, err
	}

	searchResults := make([]*YoutubeMedia, 0)

	jsonLines := strings.Split(strings.TrimSpace(stdout), "\n")

	if len(jsonLines) < 2 {
		return searchResults, nil
	}

	for i := 0; i+1 < len(jsonLines); i += 2 {
		videoStreamURL := jsonLines[i]
		videoJson := jsonLines[i+1]

		if videoStreamURL == "" || videoJson == "" {
			continue
		}

		var object YtDlpObject
		if err := json.Unmarshal([]byte(videoJson), &object); err != nil {
			return nil, err
		}

		if object.Type != "video" {
			continue
		}

		media, err := yt.getMediaFromJsonAndStreamURL(videoJson, videoStreamURL)

		if err != nil {
			return nil, err
		}

		searchResults = append(searchResults, media)
	}

	return searchResults, nil
}

func (yt *Youtube) GetYoutubeMedia(videoIdOrSearchTerm string) (*YoutubeMedia, error) {
	videoArg := videoIdOrSearchTerm

	videoID := getYoutubeUrlVideoId(videoIdOrSearchTerm)

	if videoID == "" {
		videoArg = "ytsearch:" + videoIdOrSearchTerm
	} else {
		videoArg = VideoURL(videoID)
	}

	replacer := strings.NewReplacer(
		"\"", "",
		"'", "",
	)

	args := []string{
		replacer.Replace(videoArg),
		"--no-playlist",
		"--extract-audio",
		"--quiet",
		"--audio-format", "opus",
		"--ignore-errors",
		"--no-color",
		"--no-check-formats",
		"--max-downloads", "0",
		"--get-url",
		"--print-json",
	}

	stdout, err := yt.runYtDlp(args...)

	if err != nil {
		return nil, err
	}

	if len(stdout) == 0 {
		return nil, ErrorNoVideoFound
	}

	urlAndJson := strings.Split(stdout, "\n")

	if len(urlAndJson) < 2 {
		return nil, ErrorInvalidYtdlpData
	}

	videoStreamURL := urlAndJson[0]
	videoJson := urlAndJson[1]

	var object YtDlpObject
	if err := json.Unmarshal([]byte(videoJson), &object); err != nil {
		return nil, err
	}

	if object.Type != "video" {
		return nil, ErrorUnrecognisedObject
	}

	return yt.getMediaFromJsonAndStreamURL(videoJson, videoStreamURL)
}

func (yt *Youtube) GetYoutubePlaylist(playlistIdOrUrl string) (*YoutubePlaylist, error) {
	replacer := strings.NewReplacer(
		"\"", "",
		"'", "",
	)

	args := []string{
		replacer.Replace(playlistIdOrUrl),
		"--quiet",
		"--ignore-errors",
		"--no-color",
		"--no-check-formats",
		"--max-downloads", "0",
		"--dump-single-json",
		"--flat-playlist",
	}

	playlistJson, err := yt.runYtDlp(args...)

	if err != nil {
		return nil, err
	}

	if len(playlistJson) == 0 {
		return nil, ErrorNoPlaylistFound
	}

	var object YtDlpObject
	if err := json.Unmarshal([]byte(playlistJson), &object); err != nil {
		return nil, err
	}

	if object.Type != "playlist" {
		return nil, ErrorUnrecognisedObject
	}

	var ytDlpPlaylist YtDlpPlayList
	if err := json.Unmarshal([]byte(playlistJson), &ytDlpPlaylist); err != nil {
		return nil, err
	}

	playList := &YoutubePlaylist{
		PlaylistID:    ytDlpPlaylist.ID,
		PlaylistTitle: CleanTitle(ytDlpPlaylist.Title),
		PlaylistLink:  PlaylistURL(ytDlpPlaylist.ID),
		mix:           isMixPlaylistID(ytDlpPlaylist.ID),
		mediaList:     make([]*YoutubeMedia, len(ytDlpPlaylist.Entries)),
	}

	for index, video := range ytDlpPlaylist.Entries {
		thumbnailUrl := ""
		thumbnailWidth := 0

		for _, thumbnail := range video.Thumbnails {
			if thumbnail.Width > thumbnailWidth {
				thumbnailUrl = thumbnail.URL
				thumbnailWidth = thumbnail.Width
			}
		}

		playList.mediaList[index] = &YoutubeMedia{
			VideoID:           video.ID,
			VideoTitle:        CleanTitle(video.Title),
			VideoThumbnail:    thumbnailUrl,
			VideoIsLiveStream: video.LiveStatus == "is_live",
			VideoDuration:     time.Duration(video.Duration) * time.Second,
			ytAPI:             yt,
		}
	}

	return playList, nil
}

func (yt *Youtube) runYtDlp(args ...string) (string, error) {
	resultChannel, errorChannel := yt.executor.RunCommandWithTimeout(yt.ytDlpPath, yt.streamUrlTimeout, args...)

	select {
	case result := <-resultChannel:
		return *result, nil
	case err := <-errorChannel:
		return "", err
	}
}

func (yt *Youtube) getMediaFromJsonAndStreamURL(videoJson string, videoStreamURL string) (*YoutubeMedia, error) {
	var ytDlpVideo YtDlpVideo
	if err := json.Unmarshal([]byte(videoJson), &ytDlpVideo); err != nil {
		return nil, err
	}

	media := &YoutubeMedia{
		VideoID:           ytDlpVideo.ID,
		VideoTitle:        CleanTitle(ytDlpVideo.Title),
		VideoThumbnail:    ytDlpVideo.Thumbnail,
		VideoIsLiveStream: ytDlpVideo.IsLiveStream,
		VideoDuration:     time.Duration(ytDlpVideo.Duration) * time.Second,
		StreamURL:         videoStreamURL,
		StreamExpiresAt:   yt.parseStreamExpiration(videoStreamURL),
		ytAPI:             yt,
	}

	return media, nil
}

func (yt *Youtube) parseStreamExpiration(videoStreamURL string) *time.Time {
	streamExpireUnixSecondsMatch := yt.streamUrlExpireRegex.FindStringSubmatch(videoStreamURL)

	if len(streamExpireUnixSecondsMatch) < 4 {
		return nil
	}

	unixSeconds, err := strconv.ParseInt(streamExpireUnixSecondsMatch[3], 10, 64)

	if err != nil || unixSeconds <= 0 {
		return nil
	}

	expirationTime := time.Unix(unixSeconds, 0)
	return &expirationTime
}

func getYoutubeUrlVideoId(urlString string) string {
	parsedUrl, err := url.Parse(urlString)

	if err != nil {
		return ""
	}

	if !strings.Contains(parsedUrl.Hostname(), "youtube") && !strings.Contains(parsedUrl.Hostname(), "youtu.be") {
		return ""
	}

	rx := regexp.MustCompile("^.*(?:(?:youtu\\.be\\/|v\\/|vi\\/|u\\/\\w\\/|embed\\/|shorts\\/)|(?:(?:watch)?\\?v(?:i)?=|\\&v(?:i)?=))([^#\\&\\?]*).*")

	results := rx.FindStringSubmatch(urlString)

	if len(results) >= 2 {
		return results[1]
	}

	return ""
}
