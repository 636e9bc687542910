package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/fakelag/jukebox/bot"
	"github.com/fakelag/jukebox/commands"
	"github.com/fakelag/jukebox/config"
	"github.com/fakelag/jukebox/discordplayer"
	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	"github.com/fakelag/jukebox/lang"
	"github.com/fakelag/jukebox/lavalinkplayer"
	"github.com/fakelag/jukebox/listeners"
	"github.com/fakelag/jukebox/logging"
	"github.com/fakelag/jukebox/queue"
	"github.com/fakelag/jukebox/youtubeapi"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger, err := logging.New(cfg.LogLevel)

	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}

	discord, err := discordgo.New("Bot " + cfg.DiscordToken)

	if err != nil {
		logger.Fatal("failed to create discord session", "err", err)
	}

	discord.Identify.Intents = bot.Intents

	session := discordinterface.NewDiscordSession(discord)
	registry := queue.NewRegistry()
	printer := lang.New(cfg.Language)

	var connector queue.Connector

	switch cfg.PlayerBackend {
	case config.BackendLavalink:
		connector = lavalinkplayer.NewConnector(discord, cfg.Lavalink, logger)
	default:
		connector = discordplayer.NewConnector(session, logger)
	}

	yt := youtubeapi.NewYoutubeAPIEx(&youtubeapi.YoutubeOptions{
		YtDlpPath:        cfg.YtDlpPath,
		StreamURLTimeout: cfg.YtDlpTimeout,
		HTTPTimeout:      cfg.YoutubeHTTPTimeout,
	})

	manager := commands.NewManager(&commands.Env{
		Session:   session,
		Registry:  registry,
		Connector: connector,
		Source:    commands.NewYoutubeSource(yt),
		Config:    cfg,
		Lang:      printer,
		Logger:    logger.WithPrefix("commands"),
	})

	b := bot.New(&bot.Options{
		Gateway:   discord,
		Session:   session,
		Registry:  registry,
		Connector: connector,
		Manager:   manager,
		Voice:     listeners.NewVoiceStateListener(session, registry, cfg.DeleteQueueTimeout, printer, logger.WithPrefix("voice")),
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", cfg.PlayerBackend, "prefix", cfg.Prefix)

	if err := b.Run(ctx); err != nil {
		logger.Error("bot stopped", "err", err)
		stop()
		os.Exit(1)
	}

	logger.Info("exiting")
}
