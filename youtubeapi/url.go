package youtubeapi

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type RequestKind int

const (
	RequestSearch RequestKind = iota
	RequestVideo
	RequestPlaylist
	RequestInvalidYoutubeURL
	RequestInvalidSource
)

// PlaylistIndexAfterCurrent starts a playlist right after the video it was opened from.
const PlaylistIndexAfterCurrent = -1

var youtubeHostnames = map[string]struct{}{
	"youtu.be":          {},
	"youtube.com":       {},
	"www.youtube.com":   {},
	"music.youtube.com": {},
}

var markdownEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"~", "\\~",
	"|", "\\|",
)

// Request is a play request resolved from user input.
type Request struct {
	Kind  RequestKind
	Query string

	VideoID    string
	PlaylistID string
	// PlaylistIndex is the playlist position to start loading from, or
	// PlaylistIndexAfterCurrent.
	PlaylistIndex int
}

// ParseRequest classifies user input as a search, a YouTube video or playlist
// link, or an unsupported link. Only input starting with http:// or https:// is
// treated as a link.
func ParseRequest(input string) (*Request, error) {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return &Request{Kind: RequestSearch, Query: input}, nil
	}

	parsedUrl, err := url.Parse(input)

	if err != nil {
		return nil, errors.Wrap(err, "invalid url")
	}

	hostname := strings.ToLower(parsedUrl.Hostname())

	if _, ok := youtubeHostnames[hostname]; !ok {
		return &Request{Kind: RequestInvalidSource, Query: input}, nil
	}

	query := parsedUrl.Query()

	switch {
	case hostname == "youtu.be":
		videoID := strings.TrimPrefix(parsedUrl.Path, "/")

		if videoID == "" {
			return &Request{Kind: RequestInvalidYoutubeURL, Query: input}, nil
		}

		return &Request{Kind: RequestVideo, Query: input, VideoID: videoID}, nil
	case parsedUrl.Path == "/watch" && query.Get("v") != "":
		request := &Request{
			Kind:          RequestVideo,
			Query:         input,
			VideoID:       query.Get("v"),
			PlaylistID:    query.Get("list"),
			PlaylistIndex: PlaylistIndexAfterCurrent,
		}

		if index, err := strconv.Atoi(query.Get("index")); err == nil && index >= 0 {
			request.PlaylistIndex = index
		}

		return request, nil
	case parsedUrl.Path == "/playlist" && query.Get("list") != "":
		return &Request{
			Kind:          RequestPlaylist,
			Query:         input,
			PlaylistID:    query.Get("list"),
			PlaylistIndex: 1,
		}, nil
	default:
		return &Request{Kind: RequestInvalidYoutubeURL, Query: input}, nil
	}
}

func VideoURL(videoID string) string {
	return "https://youtube.com/watch?v=" + videoID
}

func PlaylistURL(playlistID string) string {
	return "https://youtube.com/playlist?list=" + playlistID
}

// CleanTitle decodes HTML entities and escapes Discord markdown.
func CleanTitle(title string) string {
	return EscapeMarkdown(html.UnescapeString(title))
}

func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
