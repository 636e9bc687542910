package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/lang"
)

const (
	BackendDca      = "dca"
	BackendLavalink = "lavalink"
)

var ErrInvalidConfig = errors.New("invalid config")

type LavalinkConfig struct {
	Name     string `env:"NAME" envDefault:"main"`
	Address  string `env:"ADDRESS" envDefault:"localhost:2333"`
	Password string `env:"PASSWORD" envDefault:"youshallnotpass"`
	Secure   bool   `env:"SECURE" envDefault:"false"`
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`
	Prefix       string `env:"PREFIX" envDefault:"!"`

	DeleteQueueTimeout time.Duration `env:"DELETE_QUEUE_TIMEOUT" envDefault:"3m"`
	AllowDuplicate     bool          `env:"ALLOW_DUPLICATE" envDefault:"false"`
	MaxQueueSize       int           `env:"MAX_QUEUE_SIZE" envDefault:"500"`
	SearchResults      int           `env:"SEARCH_RESULTS" envDefault:"5"`

	YtDlpPath          string        `env:"YTDLP_PATH" envDefault:"yt-dlp"`
	YtDlpTimeout       time.Duration `env:"YTDLP_TIMEOUT" envDefault:"30s"`
	YoutubeHTTPTimeout time.Duration `env:"YOUTUBE_HTTP_TIMEOUT" envDefault:"15s"`

	PlayerBackend string         `env:"PLAYER_BACKEND" envDefault:"dca"`
	Lavalink      LavalinkConfig `envPrefix:"LAVALINK_"`

	CommandRate  float64 `env:"COMMAND_RATE" envDefault:"1"`
	CommandBurst int     `env:"COMMAND_BURST" envDefault:"3"`

	Language string `env:"LANGUAGE" envDefault:"en"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment, and a .env file in the working directory if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	return Parse(env.Options{})
}

// Parse reads the config with the given env options and validates it.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.PlayerBackend {
	case BackendDca, BackendLavalink:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown PLAYER_BACKEND %q", cfg.PlayerBackend)
	}

	if cfg.DeleteQueueTimeout <= 0 {
		return errors.Wrap(ErrInvalidConfig, "DELETE_QUEUE_TIMEOUT must be positive")
	}

	if cfg.MaxQueueSize <= 0 {
		return errors.Wrap(ErrInvalidConfig, "MAX_QUEUE_SIZE must be positive")
	}

	if cfg.SearchResults <= 0 {
		return errors.Wrap(ErrInvalidConfig, "SEARCH_RESULTS must be positive")
	}

	if cfg.CommandRate <= 0 || cfg.CommandBurst <= 0 {
		return errors.Wrap(ErrInvalidConfig, "COMMAND_RATE and COMMAND_BURST must be positive")
	}

	if cfg.Prefix == "" {
		return errors.Wrap(ErrInvalidConfig, "PREFIX must not be empty")
	}

	if !lang.Supported(cfg.Language) {
		return errors.Wrapf(ErrInvalidConfig, "unsupported LANGUAGE %q", cfg.Language)
	}

	return nil
}
