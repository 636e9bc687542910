package testutils

import (
	"time"

	"github.com/fakelag/jukebox/entities"
)

type MockMedia struct {
	MediaID        string
	MediaTitle     string
	MediaThumbnail string
	MediaDuration  time.Duration
	MediaFileURL   string
	LiveStream     bool
	LoadError      error
}

func NewMockMedia(id string) *MockMedia {
	return &MockMedia{
		MediaID:       id,
		MediaTitle:    "Mock Media " + id,
		MediaDuration: time.Minute,
		MediaFileURL:  "mockurl-" + id,
	}
}

func (mm *MockMedia) ID() string {
	return mm.MediaID
}

func (mm *MockMedia) Title() string {
	return mm.MediaTitle
}

func (mm *MockMedia) Link() string {
	return "https://youtube.com/watch?v=" + mm.MediaID
}

func (mm *MockMedia) Thumbnail() string {
	return mm.MediaThumbnail
}

func (mm *MockMedia) Duration() *time.Duration {
	if mm.LiveStream {
		return nil
	}

	return &mm.MediaDuration
}

func (mm *MockMedia) IsLiveStream() bool {
	return mm.LiveStream
}

func (mm *MockMedia) FileURL() string {
	return mm.MediaFileURL
}

func (mm *MockMedia) FileURLExpiresAt() *time.Time {
	return nil
}

func (mm *MockMedia) EnsureLoaded() error {
	return mm.LoadError
}

func (mm *MockMedia) CanJumpToTimeStamp() bool {
	return !mm.LiveStream
}

// Verify implements entities.Media
var _ entities.Media = (*MockMedia)(nil)
