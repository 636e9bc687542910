package entities

type Playlist interface {
	ID() string
	Title() string
	Link() string
	Thumbnail() string
	// IsMix reports an auto-generated radio playlist, which cannot be enumerated.
	IsMix() bool
	Medias() []Media
}
