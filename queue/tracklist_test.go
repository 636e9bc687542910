package queue_test

import (
	"math/rand"

	"github.com/fakelag/jukebox/entities"
	"github.com/fakelag/jukebox/queue"
	"github.com/fakelag/jukebox/testutils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mediaIDs(medias []entities.Media) []string {
	ids := make([]string, len(medias))
	for index, media := range medias {
		ids[index] = media.ID()
	}
	return ids
}

var _ = Describe("Track list", func() {
	It("Keeps tracks in order with the current track first", func() {
		tl := queue.NewTrackList(0)
		Expect(tl.First()).To(BeNil())
		Expect(tl.RemoveFirst()).To(BeNil())

		Expect(tl.Add(testutils.NewMockMedia("a"))).To(Succeed())
		Expect(tl.Add(testutils.NewMockMedia("b"))).To(Succeed())
		Expect(tl.Add(testutils.NewMockMedia("c"))).To(Succeed())

		Expect(tl.Len()).To(Equal(3))
		Expect(tl.First().ID()).To(Equal("a"))
		Expect(tl.Has("b")).To(BeTrue())
		Expect(tl.Find("z")).To(BeNil())

		Expect(tl.RemoveFirst().ID()).To(Equal("a"))
		Expect(mediaIDs(tl.Items())).To(Equal([]string{"b", "c"}))
	})

	It("Rotates the current track to the end", func() {
		tl := queue.NewTrackList(0)
		for _, id := range []string{"a", "b", "c"} {
			Expect(tl.Add(testutils.NewMockMedia(id))).To(Succeed())
		}

		tl.Rotate()
		Expect(mediaIDs(tl.Items())).To(Equal([]string{"b", "c", "a"}))
	})

	It("Shuffles only upcoming tracks", func() {
		tl := queue.NewTrackList(0)
		for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
			Expect(tl.Add(testutils.NewMockMedia(id))).To(Succeed())
		}

		tl.Shuffle(rand.New(rand.NewSource(1)))

		ids := mediaIDs(tl.Items())
		Expect(ids[0]).To(Equal("a"))
		Expect(ids).To(ConsistOf("a", "b", "c", "d", "e", "f"))
	})

	It("Refuses tracks past the max size", func() {
		tl := queue.NewTrackList(2)
		Expect(tl.Add(testutils.NewMockMedia("a"))).To(Succeed())
		Expect(tl.Add(testutils.NewMockMedia("b"))).To(Succeed())
		Expect(tl.Add(testutils.NewMockMedia("c"))).To(MatchError(queue.ErrQueueFull))
	})

	It("Clears the list", func() {
		tl := queue.NewTrackList(0)
		Expect(tl.Clear()).To(BeFalse())
		Expect(tl.Add(testutils.NewMockMedia("a"))).To(Succeed())
		Expect(tl.Clear()).To(BeTrue())
		Expect(tl.Len()).To(Equal(0))
	})
})
