package bot_test

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"

	"github.com/fakelag/jukebox/bot"
	botmocks "github.com/fakelag/jukebox/bot/mocks"
	"github.com/fakelag/jukebox/commands"
	commandmocks "github.com/fakelag/jukebox/commands/mocks"
	"github.com/fakelag/jukebox/config"
	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	discordmocks "github.com/fakelag/jukebox/discordplayer/mocks"
	"github.com/fakelag/jukebox/lang"
	"github.com/fakelag/jukebox/listeners"
	"github.com/fakelag/jukebox/queue"
	queuemocks "github.com/fakelag/jukebox/queue/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	guildID     = "100000000000000001"
	botID       = "900000000000000001"
	textChannel = "300000000000000001"
	voiceID     = "400000000000000001"
)

// lavalinkLike is a connector that also needs starting and voice events.
type lavalinkLike struct {
	*queuemocks.MockConnector
	*botmocks.MockBackendStarter
	*botmocks.MockVoiceEventForwarder
}

type fixture struct {
	ctrl      *gomock.Controller
	gateway   *botmocks.MockGateway
	session   *discordmocks.MockDiscordSession
	connector queue.Connector
	registry  *queue.Registry
	options   *bot.Options

	mutex    sync.Mutex
	handlers []interface{}
	opened   bool
}

func newFixture(connector queue.Connector) *fixture {
	ctrl := gomock.NewController(GinkgoT())

	f := &fixture{
		ctrl:      ctrl,
		gateway:   botmocks.NewMockGateway(ctrl),
		session:   discordmocks.NewMockDiscordSession(ctrl),
		connector: connector,
		registry:  queue.NewRegistry(),
	}

	printer := lang.New("en")
	logger := log.Default()

	env := &commands.Env{
		Session:   f.session,
		Registry:  f.registry,
		Connector: connector,
		Source:    commandmocks.NewMockMediaSource(ctrl),
		Config:    &config.Config{Prefix: "!", MaxQueueSize: 10, SearchResults: 3, CommandRate: 100, CommandBurst: 100},
		Lang:      printer,
		Logger:    logger,
	}

	f.options = &bot.Options{
		Gateway:   f.gateway,
		Session:   f.session,
		Registry:  f.registry,
		Connector: connector,
		Manager:   commands.NewManager(env),
		Voice:     listeners.NewVoiceStateListener(f.session, f.registry, time.Minute, printer, logger),
		Logger:    logger,
	}

	f.gateway.EXPECT().AddHandler(gomock.Any()).DoAndReturn(func(handler interface{}) func() {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		f.handlers = append(f.handlers, handler)
		return func() {}
	}).AnyTimes()

	f.session.EXPECT().BotUserID().Return(botID).AnyTimes()
	f.session.EXPECT().Guild(gomock.Any()).DoAndReturn(func(gID string) (discordinterface.DiscordGuild, error) {
		return discordinterface.NewDiscordGuild(&discordgo.Guild{ID: gID}), nil
	}).AnyTimes()

	return f
}

func (f *fixture) expectOpen() {
	f.gateway.EXPECT().Open().DoAndReturn(func() error {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		f.opened = true
		return nil
	})
}

func (f *fixture) Opened() bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.opened
}

func (f *fixture) Handlers() []interface{} {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return append([]interface{}{}, f.handlers...)
}

// queueWith registers an empty started queue for the test guild.
func (f *fixture) queueWith(conn queue.Connection) *queue.ServerQueue {
	q := queue.NewServerQueue(&queue.ServerQueueOptions{GuildID: guildID, TextChannelID: textChannel, VoiceChannelID: voiceID})
	Expect(q.Start(conn)).To(Succeed())
	_, created, err := f.registry.GetOrCreate(guildID, func() *queue.ServerQueue { return q })
	Expect(err).NotTo(HaveOccurred())
	Expect(created).To(BeTrue())
	return q
}

var _ = Describe("Bot", func() {
	It("Serves commands until cancelled and deletes every queue on shutdown", func() {
		f := newFixture(queuemocks.NewMockConnector(gomock.NewController(GinkgoT())))

		conn := queuemocks.NewMockConnection(f.ctrl)
		conn.EXPECT().Disconnect().Return(nil).Times(1)
		q := f.queueWith(conn)

		f.expectOpen()
		f.gateway.EXPECT().Close().Return(nil)

		sent := make(chan *discordgo.MessageEmbed, 1)
		f.session.EXPECT().ChannelMessageSendEmbed(textChannel, gomock.Any()).
			DoAndReturn(func(cID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
				sent <- embed
				return &discordgo.Message{ID: "1"}, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			done <- bot.New(f.options).Run(ctx)
		}()

		Eventually(f.Opened).Should(BeTrue())
		Expect(f.Handlers()).To(HaveLen(3))

		for _, handler := range f.Handlers() {
			if onMessage, ok := handler.(func(*discordgo.Session, *discordgo.MessageCreate)); ok {
				onMessage(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
					GuildID:   guildID,
					ChannelID: textChannel,
					Content:   "!help",
					Author:    &discordgo.User{ID: "200000000000000001"},
				}})
			}
		}

		var embed *discordgo.MessageEmbed
		Eventually(sent).Should(Receive(&embed))
		Expect(embed.Title).To(Equal("Command list"))

		cancel()

		Eventually(done).Should(Receive(BeNil()))
		Expect(q.Destroyed()).To(BeTrue())
		Expect(f.registry.Len()).To(Equal(0))
	})

	It("Starts and closes voice backends that need it", func() {
		ctrl := gomock.NewController(GinkgoT())
		connector := &lavalinkLike{
			MockConnector:           queuemocks.NewMockConnector(ctrl),
			MockBackendStarter:      botmocks.NewMockBackendStarter(ctrl),
			MockVoiceEventForwarder: botmocks.NewMockVoiceEventForwarder(ctrl),
		}
		f := newFixture(connector)

		ctx, cancel := context.WithCancel(context.Background())

		f.expectOpen()
		connector.MockBackendStarter.EXPECT().Start(ctx, botID).Return(nil)
		connector.MockBackendStarter.EXPECT().Close()
		f.gateway.EXPECT().Close().Return(nil)

		done := make(chan error, 1)

		go func() {
			done <- bot.New(f.options).Run(ctx)
		}()

		Eventually(f.Opened).Should(BeTrue())
		Expect(f.Handlers()).To(HaveLen(5))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("Closes the session when the voice backend cannot start", func() {
		ctrl := gomock.NewController(GinkgoT())
		connector := &lavalinkLike{
			MockConnector:           queuemocks.NewMockConnector(ctrl),
			MockBackendStarter:      botmocks.NewMockBackendStarter(ctrl),
			MockVoiceEventForwarder: botmocks.NewMockVoiceEventForwarder(ctrl),
		}
		f := newFixture(connector)

		f.expectOpen()
		connector.MockBackendStarter.EXPECT().Start(gomock.Any(), botID).Return(errors.New("node unreachable"))
		f.gateway.EXPECT().Close().Return(nil)

		err := bot.New(f.options).Run(context.Background())

		Expect(err).To(MatchError(ContainSubstring("node unreachable")))
	})

	It("Fails when discord cannot be reached", func() {
		f := newFixture(queuemocks.NewMockConnector(gomock.NewController(GinkgoT())))

		f.gateway.EXPECT().Open().Return(errors.New("invalid token"))

		err := bot.New(f.options).Run(context.Background())

		Expect(err).To(MatchError("open discord session: invalid token"))
	})
})
