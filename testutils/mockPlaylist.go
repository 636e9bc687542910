package testutils

import (
	"github.com/fakelag/jukebox/entities"
)

type MockPlaylist struct {
	PlaylistID    string
	PlaylistTitle string
	Mix           bool
	MediaList     []*MockMedia
}

// NewMockPlaylist returns a playlist with one MockMedia per id.
func NewMockPlaylist(id string, mediaIDs ...string) *MockPlaylist {
	medias := make([]*MockMedia, len(mediaIDs))

	for index, mediaID := range mediaIDs {
		medias[index] = NewMockMedia(mediaID)
	}

	return &MockPlaylist{
		PlaylistID:    id,
		PlaylistTitle: "Mock Playlist " + id,
		MediaList:     medias,
	}
}

func (mp *MockPlaylist) ID() string {
	return mp.PlaylistID
}

func (mp *MockPlaylist) Title() string {
	return mp.PlaylistTitle
}

func (mp *MockPlaylist) Link() string {
	return "https://youtube.com/playlist?list=" + mp.PlaylistID
}

func (mp *MockPlaylist) Thumbnail() string {
	if len(mp.MediaList) == 0 {
		return ""
	}

	return mp.MediaList[0].Thumbnail()
}

func (mp *MockPlaylist) IsMix() bool {
	return mp.Mix
}

func (mp *MockPlaylist) Medias() []entities.Media {
	medias := make([]entities.Media, len(mp.MediaList))

	for index, media := range mp.MediaList {
		medias[index] = media
	}

	return medias
}

var _ entities.Playlist = (*MockPlaylist)(nil)
