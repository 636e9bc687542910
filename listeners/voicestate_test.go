package listeners_test

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	discordinterface "github.com/fakelag/jukebox/discordplayer/interfaces"
	discordmocks "github.com/fakelag/jukebox/discordplayer/mocks"
	"github.com/fakelag/jukebox/embeds"
	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/lang"
	"github.com/fakelag/jukebox/listeners"
	"github.com/fakelag/jukebox/queue"
	queuemocks "github.com/fakelag/jukebox/queue/mocks"
	"github.com/fakelag/jukebox/testutils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	guildID      = "100000000000000001"
	otherGuildID = "100000000000000002"
	botID        = "900000000000000001"
	humanID      = "200000000000000001"
	otherHumanID = "200000000000000002"
	otherBotID   = "900000000000000002"
	textChannel  = "300000000000000001"
	queueVC      = "400000000000000001"
	otherVC      = "400000000000000002"
)

func voiceState(userID string, channelID string, bot bool) *discordgo.VoiceState {
	return &discordgo.VoiceState{
		GuildID:   guildID,
		UserID:    userID,
		ChannelID: channelID,
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID, Bot: bot}},
	}
}

// movingConnection records the channels the bot was moved to.
type movingConnection struct {
	*queuemocks.MockConnection
	moved chan string
}

func (mc *movingConnection) SetVoiceChannelID(channelID string) {
	mc.moved <- channelID
}

func update(before *discordgo.VoiceState, after *discordgo.VoiceState) *discordgo.VoiceStateUpdate {
	return &discordgo.VoiceStateUpdate{VoiceState: after, BeforeUpdate: before}
}

var _ = Describe("Voice state updates", func() {
	var (
		ctrl     *gomock.Controller
		session  *discordmocks.MockDiscordSession
		conn     *queuemocks.MockConnection
		registry *queue.Registry
		q        *queue.ServerQueue
		listener *listeners.VoiceStateListener
		sent     chan *discordgo.MessageEmbed

		guildMutex sync.Mutex
		states     []*discordgo.VoiceState
	)

	setVoiceStates := func(vs ...*discordgo.VoiceState) {
		guildMutex.Lock()
		defer guildMutex.Unlock()
		states = vs
	}

	newListener := func(timeout time.Duration) *listeners.VoiceStateListener {
		return listeners.NewVoiceStateListener(session, registry, timeout, lang.New("en"), log.Default())
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		session = discordmocks.NewMockDiscordSession(ctrl)
		conn = queuemocks.NewMockConnection(ctrl)
		registry = queue.NewRegistry()
		sent = make(chan *discordgo.MessageEmbed, 10)

		session.EXPECT().BotUserID().Return(botID).AnyTimes()
		session.EXPECT().Guild(guildID).DoAndReturn(func(gID string) (discordinterface.DiscordGuild, error) {
			guildMutex.Lock()
			defer guildMutex.Unlock()
			return discordinterface.NewDiscordGuild(&discordgo.Guild{ID: guildID, VoiceStates: states}), nil
		}).AnyTimes()
		session.EXPECT().ChannelMessageSendEmbed(textChannel, gomock.Any()).
			DoAndReturn(func(cID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
				sent <- embed
				return &discordgo.Message{}, nil
			}).AnyTimes()

		conn.EXPECT().Play(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, media entities.Media) error {
			<-ctx.Done()
			return ctx.Err()
		}).AnyTimes()
		conn.EXPECT().Disconnect().Return(nil).AnyTimes()

		q = queue.NewServerQueue(&queue.ServerQueueOptions{
			GuildID:        guildID,
			TextChannelID:  textChannel,
			VoiceChannelID: queueVC,
			MaxSize:        10,
		})

		media := testutils.NewMockMedia("a")
		media.MediaThumbnail = "https://i.ytimg.com/vi/a/hq.jpg"
		Expect(q.Add(media, false)).To(Succeed())
		Expect(q.Start(conn)).To(Succeed())
		_, created, err := registry.GetOrCreate(guildID, func() *queue.ServerQueue { return q })
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())

		setVoiceStates(voiceState(botID, queueVC, true), voiceState(humanID, queueVC, false))
		listener = newListener(time.Minute)

		DeferCleanup(func() {
			registry.Remove(q)
		})
	})

	It("Ignores guilds without a queue", func() {
		event := update(voiceState(humanID, queueVC, false), voiceState(humanID, "", false))
		event.GuildID = otherGuildID
		event.BeforeUpdate.GuildID = otherGuildID

		listener.Handle(event)
		Expect(sent).NotTo(Receive())
		Expect(q.HasTimeout()).To(BeFalse())
	})

	It("Deletes the queue when the bot is disconnected", func() {
		listener.Handle(update(voiceState(botID, queueVC, true), voiceState(botID, "", true)))

		var embed *discordgo.MessageEmbed
		Expect(sent).To(Receive(&embed))
		Expect(embed.Color).To(Equal(embeds.ColorWarn))
		Expect(embed.Description).To(Equal("I'm disconnected from the voice channel, the queue will be deleted"))

		Expect(registry.Get(guildID)).To(BeNil())
		Expect(q.Destroyed()).To(BeTrue())
	})

	When("The last listener leaves", func() {
		BeforeEach(func() {
			setVoiceStates(voiceState(botID, queueVC, true))
			conn.EXPECT().SetPaused(true)
			listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, "", false)))
		})

		It("Pauses the queue and arms the timeout", func() {
			var embed *discordgo.MessageEmbed
			Expect(sent).To(Receive(&embed))
			Expect(embed.Title).To(Equal("⏸ Queue paused."))
			Expect(embed.Description).To(ContainSubstring("in the next 1 minute, the queue will be deleted."))

			Expect(q.Playing()).To(BeFalse())
			Expect(q.HasTimeout()).To(BeTrue())
		})

		It("Does not arm a second timeout", func() {
			Expect(sent).To(Receive())
			listener.Handle(update(voiceState(otherHumanID, queueVC, false), voiceState(otherHumanID, "", false)))
			Expect(sent).NotTo(Receive())
		})

		It("Resumes when someone joins", func() {
			Expect(sent).To(Receive())

			conn.EXPECT().SetPaused(false)
			setVoiceStates(voiceState(botID, queueVC, true), voiceState(humanID, queueVC, false))
			listener.Handle(update(voiceState(humanID, "", false), voiceState(humanID, queueVC, false)))

			var embed *discordgo.MessageEmbed
			Expect(sent).To(Receive(&embed))
			Expect(embed.Title).To(Equal("▶ Queue resumed"))
			Expect(embed.Description).To(ContainSubstring("Now Playing: **[Mock Media a](https://youtube.com/watch?v=a)**"))
			Expect(embed.Thumbnail.URL).To(Equal("https://i.ytimg.com/vi/a/hq.jpg"))

			Expect(q.HasTimeout()).To(BeFalse())
			Expect(q.Playing()).To(BeTrue())
		})
	})

	It("Deletes the queue when nobody returns before the timeout", func() {
		listener = newListener(50 * time.Millisecond)
		setVoiceStates(voiceState(botID, queueVC, true))
		conn.EXPECT().SetPaused(true)

		listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, "", false)))
		Expect(sent).To(Receive())

		var embed *discordgo.MessageEmbed
		Eventually(sent).Should(Receive(&embed))
		Expect(embed.Title).To(Equal("⏹ Queue deleted."))
		Expect(embed.Color).To(Equal(embeds.ColorError))
		Expect(registry.Get(guildID)).To(BeNil())
		Eventually(q.Done()).Should(BeClosed())
	})

	It("Keeps playing while listeners remain", func() {
		setVoiceStates(voiceState(botID, queueVC, true), voiceState(otherHumanID, queueVC, false))
		listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, otherVC, false)))

		Expect(sent).NotTo(Receive())
		Expect(q.HasTimeout()).To(BeFalse())
		Expect(q.Playing()).To(BeTrue())
	})

	It("Does not count other bots as listeners", func() {
		setVoiceStates(voiceState(botID, queueVC, true), voiceState(otherBotID, queueVC, true))
		conn.EXPECT().SetPaused(true)

		listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, "", false)))
		Expect(q.HasTimeout()).To(BeTrue())
	})

	It("Looks up members that the gateway did not include", func() {
		stranger := &discordgo.VoiceState{GuildID: guildID, UserID: otherBotID, ChannelID: queueVC}
		setVoiceStates(voiceState(botID, queueVC, true), stranger)
		session.EXPECT().Member(guildID, otherBotID).
			Return(discordinterface.NewDiscordUser(&discordgo.User{ID: otherBotID, Bot: true}), nil).
			MinTimes(1)
		conn.EXPECT().SetPaused(true)

		listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, "", false)))
		Expect(q.HasTimeout()).To(BeTrue())
	})

	It("Ignores listeners deafening themselves", func() {
		before := voiceState(humanID, queueVC, false)
		after := voiceState(humanID, queueVC, false)
		after.SelfDeaf = true

		listener.Handle(update(before, after))
		Expect(sent).NotTo(Receive())
		Expect(q.HasTimeout()).To(BeFalse())
	})

	When("The bot is server muted", func() {
		It("Pauses even though listeners remain, and resumes when unmuted", func() {
			before := voiceState(botID, queueVC, true)
			muted := voiceState(botID, queueVC, true)
			muted.Mute = true

			conn.EXPECT().SetPaused(true)
			listener.Handle(update(before, muted))

			var embed *discordgo.MessageEmbed
			Expect(sent).To(Receive(&embed))
			Expect(embed.Title).To(Equal("⏸ Queue paused."))
			Expect(q.Playing()).To(BeFalse())

			conn.EXPECT().SetPaused(false)
			listener.Handle(update(muted, voiceState(botID, queueVC, true)))

			Expect(sent).To(Receive(&embed))
			Expect(embed.Title).To(Equal("▶ Queue resumed"))
			Expect(q.Playing()).To(BeTrue())
			Expect(q.HasTimeout()).To(BeFalse())
		})
	})

	When("The bot is moved to another channel", func() {
		It("Pauses when the new channel is empty", func() {
			setVoiceStates(voiceState(botID, otherVC, true), voiceState(humanID, queueVC, false))
			conn.EXPECT().SetPaused(true)

			listener.Handle(update(voiceState(botID, queueVC, true), voiceState(botID, otherVC, true)))

			Expect(q.VoiceChannelID()).To(Equal(otherVC))
			Expect(q.HasTimeout()).To(BeTrue())
		})

		It("Passes the new channel on to the voice connection", func() {
			registry.Remove(q)

			moving := &movingConnection{MockConnection: conn, moved: make(chan string, 1)}
			q = queue.NewServerQueue(&queue.ServerQueueOptions{
				GuildID:        guildID,
				TextChannelID:  textChannel,
				VoiceChannelID: queueVC,
				MaxSize:        10,
			})
			Expect(q.Add(testutils.NewMockMedia("a"), false)).To(Succeed())
			Expect(q.Start(moving)).To(Succeed())
			_, created, err := registry.GetOrCreate(guildID, func() *queue.ServerQueue { return q })
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			setVoiceStates(voiceState(botID, otherVC, true), voiceState(humanID, otherVC, false))
			listener.Handle(update(voiceState(botID, queueVC, true), voiceState(botID, otherVC, true)))

			Expect(moving.moved).To(Receive(Equal(otherVC)))
			Expect(q.VoiceChannelID()).To(Equal(otherVC))
		})

		It("Resumes when the new channel has listeners", func() {
			setVoiceStates(voiceState(botID, queueVC, true))
			conn.EXPECT().SetPaused(true)
			listener.Handle(update(voiceState(humanID, queueVC, false), voiceState(humanID, otherVC, false)))
			Expect(q.HasTimeout()).To(BeTrue())

			setVoiceStates(voiceState(botID, otherVC, true), voiceState(humanID, otherVC, false))
			conn.EXPECT().SetPaused(false)
			listener.Handle(update(voiceState(botID, queueVC, true), voiceState(botID, otherVC, true)))

			Expect(q.VoiceChannelID()).To(Equal(otherVC))
			Expect(q.HasTimeout()).To(BeFalse())
			Expect(q.Playing()).To(BeTrue())
		})
	})
})
