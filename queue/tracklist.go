package queue

import (
	"math/rand"
	"sync"

	"github.com/fakelag/jukebox/entities"
)

// TrackList is an ordered list of tracks. The first track is the one being played.
type TrackList struct {
	mutex   sync.RWMutex
	tracks  []entities.Media
	maxSize int
}

func NewTrackList(maxSize int) *TrackList {
	return &TrackList{
		tracks:  make([]entities.Media, 0),
		maxSize: maxSize,
	}
}

func (tl *TrackList) Add(media entities.Media) error {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if tl.maxSize > 0 && len(tl.tracks) >= tl.maxSize {
		return ErrQueueFull
	}

	tl.tracks = append(tl.tracks, media)
	return nil
}

// addUnique appends media unless a track with the same id is already listed.
func (tl *TrackList) addUnique(media entities.Media) error {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	for _, track := range tl.tracks {
		if track.ID() == media.ID() {
			return ErrTrackAlreadyQueued
		}
	}

	if tl.maxSize > 0 && len(tl.tracks) >= tl.maxSize {
		return ErrQueueFull
	}

	tl.tracks = append(tl.tracks, media)
	return nil
}

func (tl *TrackList) First() entities.Media {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()

	if len(tl.tracks) == 0 {
		return nil
	}

	return tl.tracks[0]
}

func (tl *TrackList) Find(id string) entities.Media {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()

	for _, track := range tl.tracks {
		if track.ID() == id {
			return track
		}
	}

	return nil
}

func (tl *TrackList) Has(id string) bool {
	return tl.Find(id) != nil
}

func (tl *TrackList) Len() int {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()
	return len(tl.tracks)
}

// Items returns a copy of the listed tracks.
func (tl *TrackList) Items() []entities.Media {
	tl.mutex.RLock()
	defer tl.mutex.RUnlock()

	items := make([]entities.Media, len(tl.tracks))
	copy(items, tl.tracks)
	return items
}

func (tl *TrackList) RemoveFirst() entities.Media {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if len(tl.tracks) == 0 {
		return nil
	}

	var first entities.Media

	// List is resized when removing media
	first, tl.tracks = tl.tracks[0], tl.tracks[1:]

	return first
}

// Rotate moves the first track to the end of the list.
func (tl *TrackList) Rotate() {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if len(tl.tracks) < 2 {
		return
	}

	tl.tracks = append(tl.tracks[1:], tl.tracks[0])
}

// Shuffle reorders every track after the first one.
func (tl *TrackList) Shuffle(rng *rand.Rand) {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if len(tl.tracks) < 3 {
		return
	}

	upcoming := tl.tracks[1:]
	rng.Shuffle(len(upcoming), func(i, j int) {
		upcoming[i], upcoming[j] = upcoming[j], upcoming[i]
	})
}

func (tl *TrackList) Clear() bool {
	tl.mutex.Lock()
	defer tl.mutex.Unlock()

	if len(tl.tracks) == 0 {
		return false
	}

	tl.tracks = make([]entities.Media, 0)
	return true
}
