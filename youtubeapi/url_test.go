package youtubeapi_test

import (
	"github.com/fakelag/jukebox/youtubeapi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Play request parsing", func() {
	DescribeTable("classifies input",
		func(input string, kind youtubeapi.RequestKind, videoID string, playlistID string, index int) {
			request, err := youtubeapi.ParseRequest(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Kind).To(Equal(kind))
			Expect(request.VideoID).To(Equal(videoID))
			Expect(request.PlaylistID).To(Equal(playlistID))
			Expect(request.PlaylistIndex).To(Equal(index))
		},
		Entry("plain search", "never gonna give you up", youtubeapi.RequestSearch, "", "", 0),
		Entry("short link", "https://youtu.be/dQw4w9WgXcQ", youtubeapi.RequestVideo, "dQw4w9WgXcQ", "", 0),
		Entry("watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", youtubeapi.RequestVideo, "dQw4w9WgXcQ", "", -1),
		Entry("music link", "https://music.youtube.com/watch?v=abc", youtubeapi.RequestVideo, "abc", "", -1),
		Entry("watch link with playlist", "https://youtube.com/watch?v=abc&list=PL1", youtubeapi.RequestVideo, "abc", "PL1", -1),
		Entry("watch link with playlist index", "https://youtube.com/watch?v=abc&list=PL1&index=4", youtubeapi.RequestVideo, "abc", "PL1", 4),
		Entry("watch link with bad index", "https://youtube.com/watch?v=abc&list=PL1&index=x", youtubeapi.RequestVideo, "abc", "PL1", -1),
		Entry("playlist link", "https://www.youtube.com/playlist?list=PL1", youtubeapi.RequestPlaylist, "", "PL1", 1),
		Entry("channel link", "https://www.youtube.com/channel/xyz", youtubeapi.RequestInvalidYoutubeURL, "", "", 0),
		Entry("watch link without video", "https://www.youtube.com/watch?list=PL1", youtubeapi.RequestInvalidYoutubeURL, "", "", 0),
		Entry("empty short link", "https://youtu.be/", youtubeapi.RequestInvalidYoutubeURL, "", "", 0),
		Entry("other source", "https://soundcloud.com/artist/track", youtubeapi.RequestInvalidSource, "", "", 0),
		Entry("lookalike host", "https://notyoutube.com/watch?v=abc", youtubeapi.RequestInvalidSource, "", "", 0),
	)

	It("Fails on malformed links", func() {
		_, err := youtubeapi.ParseRequest("https://exa mple.com/%zz")
		Expect(err).To(HaveOccurred())
	})

	It("Builds canonical links", func() {
		Expect(youtubeapi.VideoURL("abc")).To(Equal("https://youtube.com/watch?v=abc"))
		Expect(youtubeapi.PlaylistURL("PL1")).To(Equal("https://youtube.com/playlist?list=PL1"))
	})

	It("Cleans titles for markdown", func() {
		Expect(youtubeapi.CleanTitle("Rock &amp; Roll __live__ ~~x~~ || `y`")).
			To(Equal("Rock & Roll \\_\\_live\\_\\_ \\~\\~x\\~\\~ \\|\\| \\`y\\`"))
	})
})
