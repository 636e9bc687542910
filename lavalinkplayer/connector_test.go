package lavalinkplayer

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"

	"github.com/fakelag/jukebox/config"
	"github.com/fakelag/jukebox/testutils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	testGuild   = "100000000000000001"
	testBot     = "900000000000000001"
	testUser    = "200000000000000001"
	testChannel = "400000000000000001"
	testMoved   = "400000000000000002"
)

type voiceStateCall struct {
	guildID   snowflake.ID
	channelID *snowflake.ID
	sessionID string
}

type voiceServerCall struct {
	guildID  snowflake.ID
	token    string
	endpoint string
}

// fakeLink records the voice events handed to lavalink.
type fakeLink struct {
	disgolink.Client

	mutex   sync.Mutex
	states  []voiceStateCall
	servers []voiceServerCall
}

func (fl *fakeLink) OnVoiceStateUpdate(ctx context.Context, guildID snowflake.ID, channelID *snowflake.ID, sessionID string) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.states = append(fl.states, voiceStateCall{guildID: guildID, channelID: channelID, sessionID: sessionID})
}

func (fl *fakeLink) OnVoiceServerUpdate(ctx context.Context, guildID snowflake.ID, token string, endpoint string) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.servers = append(fl.servers, voiceServerCall{guildID: guildID, token: token, endpoint: endpoint})
}

func (fl *fakeLink) Player(guildID snowflake.ID) disgolink.Player {
	return &fakeLinkPlayer{guildID: guildID}
}

func (fl *fakeLink) BestNode() disgolink.Node {
	return nil
}

func (fl *fakeLink) States() []voiceStateCall {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	return append([]voiceStateCall{}, fl.states...)
}

func (fl *fakeLink) Servers() []voiceServerCall {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	return append([]voiceServerCall{}, fl.servers...)
}

type fakeLinkPlayer struct {
	disgolink.Player
	guildID snowflake.ID
}

func (flp *fakeLinkPlayer) GuildID() snowflake.ID {
	return flp.guildID
}

// fakeJoiner answers voice joins by calling onJoin.
type fakeJoiner struct {
	mutex  sync.Mutex
	joins  []string
	onJoin func(guildID string, channelID string)
	err    error
}

func (fj *fakeJoiner) ChannelVoiceJoinManual(gID string, cID string, mute bool, deaf bool) error {
	fj.mutex.Lock()
	fj.joins = append(fj.joins, cID)
	onJoin := fj.onJoin
	fj.mutex.Unlock()

	if fj.err != nil {
		return fj.err
	}

	if onJoin != nil {
		onJoin(gID, cID)
	}

	return nil
}

func (fj *fakeJoiner) Joins() []string {
	fj.mutex.Lock()
	defer fj.mutex.Unlock()
	return append([]string{}, fj.joins...)
}

func botVoiceState(channelID string, sessionID string) *discordgo.VoiceStateUpdate {
	return &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID:   testGuild,
		UserID:    testBot,
		ChannelID: channelID,
		SessionID: sessionID,
	}}
}

func voiceServer(token string) *discordgo.VoiceServerUpdate {
	return &discordgo.VoiceServerUpdate{GuildID: testGuild, Token: token, Endpoint: "voice.discord.media"}
}

func channelPtr(channelID string) *snowflake.ID {
	id := snowflake.MustParse(channelID)
	return &id
}

var _ = Describe("Lavalink connector", func() {
	var (
		joiner    *fakeJoiner
		link      *fakeLink
		connector *Connector
	)

	BeforeEach(func() {
		joiner = &fakeJoiner{}
		link = &fakeLink{}
		connector = NewConnector(joiner, config.LavalinkConfig{Name: "test"}, log.Default())
		connector.link = link
		connector.botID = snowflake.MustParse(testBot)
	})

	It("Refuses to connect before it was started", func() {
		connector = NewConnector(joiner, config.LavalinkConfig{}, log.Default())

		_, err := connector.Connect(context.Background(), testGuild, testChannel)
		Expect(err).To(MatchError(ErrNotStarted))
		Expect(joiner.Joins()).To(BeEmpty())
	})

	When("Joining a voice channel", func() {
		It("Connects once both voice events have arrived", func() {
			joiner.onJoin = func(guildID string, channelID string) {
				connector.OnVoiceStateUpdate(nil, botVoiceState(channelID, "session"))
				connector.OnVoiceServerUpdate(nil, voiceServer("token"))
			}

			conn, err := connector.Connect(context.Background(), testGuild, testChannel)

			Expect(err).NotTo(HaveOccurred())
			Expect(conn).NotTo(BeNil())
			Expect(joiner.Joins()).To(Equal([]string{testChannel}))
			Expect(connector.connection(snowflake.MustParse(testGuild))).To(BeIdenticalTo(conn))

			Expect(link.States()).To(Equal([]voiceStateCall{
				{guildID: snowflake.MustParse(testGuild), channelID: channelPtr(testChannel), sessionID: "session"},
			}))
			Expect(link.Servers()).To(Equal([]voiceServerCall{
				{guildID: snowflake.MustParse(testGuild), token: "token", endpoint: "voice.discord.media"},
			}))
			Expect(connector.pending).To(BeEmpty())
		})

		It("Gives up when the voice server never arrives", func() {
			joiner.onJoin = func(guildID string, channelID string) {
				connector.OnVoiceStateUpdate(nil, botVoiceState(channelID, "session"))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			conn, err := connector.Connect(ctx, testGuild, testChannel)

			Expect(conn).To(BeNil())
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(link.States()).To(BeEmpty())
			Expect(connector.pending).To(BeEmpty())
		})

		It("Returns gateway errors", func() {
			joiner.err = errors.New("not connected")

			_, err := connector.Connect(context.Background(), testGuild, testChannel)
			Expect(err).To(MatchError(ContainSubstring("not connected")))
		})

		It("Leaves the channel when the connection is closed", func() {
			joiner.onJoin = func(guildID string, channelID string) {
				if channelID != "" {
					connector.OnVoiceStateUpdate(nil, botVoiceState(channelID, "session"))
					connector.OnVoiceServerUpdate(nil, voiceServer("token"))
				}
			}

			conn, err := connector.Connect(context.Background(), testGuild, testChannel)
			Expect(err).NotTo(HaveOccurred())

			lavalinkConn := conn.(*Connection)
			lavalinkConn.player = &fakePlayer{}

			Expect(conn.Disconnect()).To(Succeed())
			Expect(joiner.Joins()).To(Equal([]string{testChannel, ""}))
			Expect(connector.connection(snowflake.MustParse(testGuild))).To(BeNil())
		})
	})

	When("Receiving voice events", func() {
		It("Ignores the voice states of other users", func() {
			event := botVoiceState(testChannel, "session")
			event.UserID = testUser

			connector.OnVoiceStateUpdate(nil, event)
			connector.OnVoiceServerUpdate(nil, voiceServer("token"))

			Expect(link.States()).To(BeEmpty())
			Expect(link.Servers()).To(BeEmpty())
		})

		It("Forwards the credentials in order once both halves are known", func() {
			connector.OnVoiceServerUpdate(nil, voiceServer("token"))
			Expect(link.Servers()).To(BeEmpty())

			connector.OnVoiceStateUpdate(nil, botVoiceState(testChannel, "session"))

			Expect(link.States()).To(HaveLen(1))
			Expect(link.Servers()).To(HaveLen(1))
		})

		It("Forwards moves of the bot without a new voice server", func() {
			connector.OnVoiceStateUpdate(nil, botVoiceState(testChannel, "session"))
			connector.OnVoiceServerUpdate(nil, voiceServer("token"))

			connector.OnVoiceStateUpdate(nil, botVoiceState(testMoved, "session"))

			states := link.States()
			Expect(states).To(HaveLen(2))
			Expect(states[1].channelID).To(Equal(channelPtr(testMoved)))
			Expect(link.Servers()).To(HaveLen(1))

			connector.OnVoiceServerUpdate(nil, voiceServer("new-token"))

			states = link.States()
			Expect(states).To(HaveLen(3))
			Expect(states[2].channelID).To(Equal(channelPtr(testMoved)))
			Expect(link.Servers()[1].token).To(Equal("new-token"))
		})

		It("Clears the credentials when the bot leaves", func() {
			connector.OnVoiceStateUpdate(nil, botVoiceState(testChannel, "session"))
			connector.OnVoiceServerUpdate(nil, voiceServer("token"))

			connector.OnVoiceStateUpdate(nil, botVoiceState("", "session"))

			states := link.States()
			Expect(states).To(HaveLen(2))
			Expect(states[1].channelID).To(BeNil())
			Expect(connector.credentials).To(BeEmpty())

			connector.OnVoiceStateUpdate(nil, botVoiceState(testChannel, "session-2"))
			Expect(link.States()).To(HaveLen(2))
		})
	})

	When("Lavalink reports track events", func() {
		var (
			player *fakePlayer
			conn   *Connection
			result chan error
		)

		BeforeEach(func() {
			guildID := snowflake.MustParse(testGuild)
			player = &fakePlayer{}
			conn = newConnection(
				guildID,
				player,
				func() trackLoader { return &fakeLoader{result: trackResult("enc-a")} },
				nil,
				log.Default(),
			)
			connector.connections[guildID] = conn

			result = make(chan error, 1)
			go func() {
				result <- conn.Play(context.Background(), testutils.NewMockMedia("a"))
			}()

			Eventually(player.Updates).Should(Equal(1))
		})

		linkPlayer := func() disgolink.Player {
			return &fakeLinkPlayer{guildID: snowflake.MustParse(testGuild)}
		}

		It("Ends the track of the guild's connection", func() {
			connector.onTrackEnd(linkPlayer(), lavalink.TrackEndEvent{Track: lavalink.Track{Encoded: "enc-other"}})
			Consistently(result, "100ms").ShouldNot(Receive())

			connector.onTrackEnd(linkPlayer(), lavalink.TrackEndEvent{Track: lavalink.Track{Encoded: "enc-a"}})
			Eventually(result).Should(Receive(BeNil()))
		})

		It("Reports track exceptions", func() {
			connector.onTrackException(linkPlayer(), lavalink.TrackExceptionEvent{
				Track:     lavalink.Track{Encoded: "enc-a"},
				Exception: lavalink.Exception{Message: "video unavailable"},
			})

			Eventually(result).Should(Receive(MatchError("lavalink: video unavailable")))
		})

		It("Reports stuck tracks", func() {
			connector.onTrackStuck(linkPlayer(), lavalink.TrackStuckEvent{
				Track:     lavalink.Track{Encoded: "enc-a"},
				Threshold: 10000,
			})

			Eventually(result).Should(Receive(MatchError("lavalink: track stuck for 10000ms")))
		})

		It("Ignores events of guilds without a connection", func() {
			other := &fakeLinkPlayer{guildID: snowflake.MustParse("100000000000000002")}
			connector.onTrackEnd(other, lavalink.TrackEndEvent{Track: lavalink.Track{Encoded: "enc-a"}})

			Consistently(result, "100ms").ShouldNot(Receive())

			connector.onTrackEnd(linkPlayer(), lavalink.TrackEndEvent{Track: lavalink.Track{Encoded: "enc-a"}})
			Eventually(result).Should(Receive(BeNil()))
		})
	})
})
