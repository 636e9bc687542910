package commands

import (
	"context"

	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/youtubeapi"
)

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

// MediaSource resolves play requests into media.
type MediaSource interface {
	GetVideo(ctx context.Context, videoID string) (entities.Media, error)
	GetPlaylist(ctx context.Context, playlistID string) (entities.Playlist, error)
	Search(ctx context.Context, term string, limit int) ([]entities.Media, error)
}

type youtubeSource struct {
	yt *youtubeapi.Youtube
}

func NewYoutubeSource(yt *youtubeapi.Youtube) MediaSource {
	return &youtubeSource{yt: yt}
}

func (ys *youtubeSource) GetVideo(ctx context.Context, videoID string) (entities.Media, error) {
	media, err := ys.yt.GetVideo(ctx, videoID)

	if err != nil {
		return nil, err
	}

	return media, nil
}

func (ys *youtubeSource) GetPlaylist(ctx context.Context, playlistID string) (entities.Playlist, error) {
	playlist, err := ys.yt.GetPlaylist(ctx, playlistID)

	if err != nil {
		return nil, err
	}

	return playlist, nil
}

func (ys *youtubeSource) Search(_ context.Context, term string, limit int) ([]entities.Media, error) {
	results, err := ys.yt.SearchYoutubeMedia(limit, term)

	if err != nil {
		return nil, err
	}

	medias := make([]entities.Media, len(results))

	for index, media := range results {
		medias[index] = media
	}

	return medias, nil
}
