package commands_test

import (
	"time"

	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/queue"
	"github.com/fakelag/jukebox/testutils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Player controls", func() {
	var f *fixture
	var q *queue.ServerQueue

	BeforeEach(func() {
		f = newFixture()
		q = f.startQueue(testutils.NewMockMedia("a"), testutils.NewMockMedia("b"))
	})

	It("Skips the current track", func() {
		f.conn.EXPECT().Skip().Return(true)

		f.run("!s")

		Expect(f.Descriptions()).To(Equal([]string{"⏭ Skipped **[Mock Media a](https://youtube.com/watch?v=a)**"}))
	})

	It("Reports when there is nothing to skip", func() {
		f.conn.EXPECT().Skip().Return(false)

		f.run("!skip")

		Expect(f.Descriptions()).To(Equal([]string{"There is nothing playing"}))
	})

	It("Stops and deletes the queue", func() {
		f.run("!leave")

		Expect(f.registry.Len()).To(Equal(0))
		Expect(q.Destroyed()).To(BeTrue())
		Expect(f.Descriptions()).To(Equal([]string{"⏹ Queue stopped."}))
	})

	It("Pauses and resumes", func() {
		f.conn.EXPECT().SetPaused(true)
		f.conn.EXPECT().SetPaused(false)

		f.run("!pause")
		Expect(q.Playing()).To(BeFalse())

		f.run("!pause")

		f.run("!unpause")
		Expect(q.Playing()).To(BeTrue())

		f.run("!resume")

		Expect(f.Descriptions()).To(Equal([]string{
			"⏸ Paused the music player",
			"The music player is already paused",
			"▶ Resumed the music player",
			"The music player is not paused",
		}))
	})

	It("Clears the idle timeout when resumed", func() {
		f.conn.EXPECT().SetPaused(true)
		f.conn.EXPECT().SetPaused(false)

		f.run("!pause")
		Expect(q.StartTimeout(time.Hour, func() {})).To(BeTrue())

		f.run("!resume")

		Expect(q.HasTimeout()).To(BeFalse())
	})

	It("Toggles shuffle mode", func() {
		f.run("!shuffle")
		Expect(q.ShuffleMode()).To(BeTrue())

		f.run("!shuffle")
		Expect(q.ShuffleMode()).To(BeFalse())

		Expect(f.Descriptions()).To(Equal([]string{
			"🔀 Shuffle mode is now **on**",
			"🔀 Shuffle mode is now **off**",
		}))
	})

	It("Shuffles the upcoming tracks when shuffle mode is turned on", func() {
		ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
		f.config.MaxQueueSize = 20
		f.registry.Remove(q)

		medias := make([]entities.Media, len(ids))
		for index, id := range ids {
			medias[index] = testutils.NewMockMedia(id)
		}

		q = f.startQueue(medias...)

		f.run("!shuffle")

		shuffled := trackIDs(q)
		Expect(shuffled[0]).To(Equal("a"))
		Expect(shuffled).To(ConsistOf(ids))
		Expect(shuffled).NotTo(Equal(ids))
	})

	It("Sets the repeat mode", func() {
		f.run("!loop track")
		Expect(q.LoopMode()).To(Equal(queue.LoopModeTrack))

		f.run("!repeat ALL")
		Expect(q.LoopMode()).To(Equal(queue.LoopModeQueue))

		Expect(f.Descriptions()).To(Equal([]string{
			"🔁 Repeat mode is now **one**",
			"🔁 Repeat mode is now **all**",
		}))
	})

	It("Rejects unknown repeat modes", func() {
		f.run("!repeat")
		f.run("!repeat forever")

		Expect(q.LoopMode()).To(Equal(queue.LoopModeOff))
		Expect(f.Descriptions()).To(Equal([]string{
			"Invalid argument, type **`!help repeat`** for more info",
			"Invalid argument, type **`!help repeat`** for more info",
		}))
	})
})

var _ = Describe("Queue commands", func() {
	var f *fixture

	BeforeEach(func() {
		f = newFixture()
	})

	It("Lists the queued tracks", func() {
		f.startQueue(testutils.NewMockMedia("a"), testutils.NewMockMedia("b"))

		f.run("!q")

		Expect(f.Titles()).To(Equal([]string{"🎶 Music Queue"}))
		Expect(f.Descriptions()).To(Equal([]string{
			"**1.** **[Mock Media a](https://youtube.com/watch?v=a)**\n**2.** **[Mock Media b](https://youtube.com/watch?v=b)**",
		}))
		Expect(f.Embeds()[0].Footer.Text).To(Equal("Page 1 of 1"))
	})

	It("Clamps the requested page", func() {
		ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		f.config.MaxQueueSize = 20

		medias := make([]entities.Media, len(ids))
		for index, id := range ids {
			medias[index] = testutils.NewMockMedia(id)
		}

		f.startQueue(medias...)

		f.run("!queue 7")

		Expect(f.Embeds()[0].Footer.Text).To(Equal("Page 2 of 2"))
		Expect(f.Descriptions()[0]).To(Equal("**11.** **[Mock Media k](https://youtube.com/watch?v=k)**"))
	})

	It("Shows the playback progress", func() {
		media := testutils.NewMockMedia("a")
		media.MediaDuration = 3 * time.Minute
		f.startQueue(media)

		f.conn.EXPECT().PlaybackPosition().Return(75 * time.Second)

		f.run("!np")

		Expect(f.Descriptions()).To(Equal([]string{
			"▶ Now playing: **[Mock Media a](https://youtube.com/watch?v=a)**\n`1:15 / 3:00`",
		}))
	})

	It("Shows live streams without a duration", func() {
		media := testutils.NewMockMedia("a")
		media.LiveStream = true
		f.startQueue(media)

		f.conn.EXPECT().PlaybackPosition().Return(5 * time.Second)

		f.run("!nowplaying")

		Expect(f.Descriptions()).To(Equal([]string{
			"▶ Now playing: **[Mock Media a](https://youtube.com/watch?v=a)**\n`0:05 / LIVE`",
		}))
	})

	It("Requires a queue", func() {
		f.run("!queue")

		Expect(f.Descriptions()).To(Equal([]string{"There is nothing playing"}))
	})
})
