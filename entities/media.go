package entities

import "time"

type Media interface {
	ID() string
	Title() string
	Link() string
	Thumbnail() string
	Duration() *time.Duration
	IsLiveStream() bool
	FileURL() string
	FileURLExpiresAt() *time.Time
	EnsureLoaded() error
	CanJumpToTimeStamp() bool
}
