package lang_test

import (
	"github.com/fakelag/jukebox/lang"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message catalog", func() {
	DescribeTable("Supported languages",
		func(code string, supported bool) {
			Expect(lang.Supported(code)).To(Equal(supported))
		},
		Entry("english", "en", true),
		Entry("american english", "en-US", true),
		Entry("german", "de", false),
		Entry("garbage", "not a language", false),
	)

	It("Formats messages with their arguments", func() {
		l := lang.New("en")

		Expect(l.CommandPingInitialMessage()).To(Equal("🏓 Pinging..."))
		Expect(l.CommandInvalidArgs("!", "play")).To(Equal("Invalid argument, type **`!help play`** for more info"))
		Expect(l.VoiceQueueDeleted("3 minutes")).To(Equal(
			"3 minutes have passed and there is no one who joins my voice channel, the queue was deleted.",
		))
		Expect(l.VoiceQueueResumed("Title", "https://youtube.com/watch?v=id")).To(Equal(
			"Someones joins the voice channel. Enjoy the music 🎶\nNow Playing: **[Title](https://youtube.com/watch?v=id)**",
		))
		Expect(l.CommandShuffleMessage(true)).To(Equal("🔀 Shuffle mode is now **on**"))
	})

	It("Falls back to english", func() {
		Expect(lang.New("de").VoiceQueuePausedTitle()).To(Equal("⏸ Queue paused."))
	})
})
