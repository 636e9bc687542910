package youtubeapi

import (
	"strings"

	"github.com/fakelag/jukebox/entities"
)

type YoutubePlaylist struct {
	PlaylistID    string
	PlaylistTitle string
	PlaylistLink  string

	mix       bool
	mediaList []*YoutubeMedia
}

func (ypl *YoutubePlaylist) ID() string {
	return ypl.PlaylistID
}

func (ypl *YoutubePlaylist) Title() string {
	return ypl.PlaylistTitle
}

func (ypl *YoutubePlaylist) Link() string {
	return ypl.PlaylistLink
}

// Thumbnail is the thumbnail of the first entry.
func (ypl *YoutubePlaylist) Thumbnail() string {
	if len(ypl.mediaList) == 0 {
		return ""
	}

	return ypl.mediaList[0].Thumbnail()
}

func (ypl *YoutubePlaylist) IsMix() bool {
	return ypl.mix
}

func (ypl *YoutubePlaylist) Medias() []entities.Media {
	medias := make([]entities.Media, len(ypl.mediaList))

	for index, media := range ypl.mediaList {
		medias[index] = media
	}

	return medias
}

func isMixPlaylistID(playlistID string) bool {
	return strings.HasPrefix(playlistID, "RD")
}

// Verify implements entities.Playlist
var _ entities.Playlist = (*YoutubePlaylist)(nil)
