package youtubeapi

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/entities"
)

// Stream URLs are refreshed when they expire within this window.
const streamUrlExpiryMargin = 10 * time.Second

var ErrorMediaNotLoadable = errors.New("media has no source to load from")

type YoutubeMedia struct {
	mutex sync.RWMutex

	VideoID           string
	VideoTitle        string
	VideoThumbnail    string
	VideoIsLiveStream bool
	VideoDuration     time.Duration
	StreamURL         string
	StreamExpiresAt   *time.Time

	ytAPI *Youtube
}

func (ytm *YoutubeMedia) ID() string {
	return ytm.VideoID
}

func (ytm *YoutubeMedia) Title() string {
	return ytm.VideoTitle
}

func (ytm *YoutubeMedia) Link() string {
	return VideoURL(ytm.VideoID)
}

func (ytm *YoutubeMedia) Thumbnail() string {
	return ytm.VideoThumbnail
}

func (ytm *YoutubeMedia) IsLiveStream() bool {
	ytm.mutex.RLock()
	defer ytm.mutex.RUnlock()
	return ytm.VideoIsLiveStream
}

func (ytm *YoutubeMedia) Duration() *time.Duration {
	ytm.mutex.RLock()
	defer ytm.mutex.RUnlock()

	if ytm.VideoIsLiveStream || ytm.VideoDuration <= 0 {
		return nil
	}

	duration := ytm.VideoDuration
	return &duration
}

func (ytm *YoutubeMedia) FileURL() string {
	ytm.mutex.RLock()
	defer ytm.mutex.RUnlock()
	return ytm.StreamURL
}

func (ytm *YoutubeMedia) FileURLExpiresAt() *time.Time {
	ytm.mutex.RLock()
	defer ytm.mutex.RUnlock()
	return ytm.StreamExpiresAt
}

func (ytm *YoutubeMedia) CanJumpToTimeStamp() bool {
	return !ytm.IsLiveStream()
}

// EnsureLoaded resolves a playable stream URL when none is known or the known one
// is about to expire.
func (ytm *YoutubeMedia) EnsureLoaded() error {
	ytm.mutex.RLock()
	loaded := ytm.StreamURL != "" &&
		(ytm.StreamExpiresAt == nil || time.Until(*ytm.StreamExpiresAt) > streamUrlExpiryMargin)
	ytAPI := ytm.ytAPI
	ytm.mutex.RUnlock()

	if loaded {
		return nil
	}

	if ytAPI == nil {
		return ErrorMediaNotLoadable
	}

	reloaded, err := ytAPI.GetYoutubeMedia(ytm.Link())

	if err != nil {
		return errors.Wrapf(err, "load stream url for %s", ytm.VideoID)
	}

	ytm.mutex.Lock()
	defer ytm.mutex.Unlock()

	ytm.StreamURL = reloaded.StreamURL
	ytm.StreamExpiresAt = reloaded.StreamExpiresAt
	ytm.VideoIsLiveStream = reloaded.VideoIsLiveStream

	if ytm.VideoDuration <= 0 {
		ytm.VideoDuration = reloaded.VideoDuration
	}

	return nil
}

// Verify implements entities.Media
var _ entities.Media = (*YoutubeMedia)(nil)
