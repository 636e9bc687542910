package queue_test

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/fakelag/jukebox/queue"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	guildID      = "100000000000000001"
	otherGuildID = "100000000000000002"
)

func newQueue(gID string) *queue.ServerQueue {
	return queue.NewServerQueue(&queue.ServerQueueOptions{
		GuildID:        gID,
		TextChannelID:  "text",
		VoiceChannelID: "voice",
		MaxSize:        10,
	})
}

func register(registry *queue.Registry, q *queue.ServerQueue) {
	_, created, err := registry.GetOrCreate(q.GuildID(), func() *queue.ServerQueue { return q })
	Expect(err).NotTo(HaveOccurred())
	Expect(created).To(BeTrue())
}

var _ = Describe("Queue registry", func() {
	It("Associates at most one queue with a guild", func() {
		registry := queue.NewRegistry()
		Expect(registry.Get(guildID)).To(BeNil())

		q := newQueue(guildID)
		register(registry, q)
		Expect(registry.Get(guildID)).To(BeIdenticalTo(q))
		Expect(registry.Get(otherGuildID)).To(BeNil())
		Expect(registry.Len()).To(Equal(1))

		Expect(registry.Remove(q)).To(BeTrue())
		Expect(registry.Get(guildID)).To(BeNil())
		Expect(registry.Len()).To(Equal(0))

		replacement := newQueue(guildID)
		register(registry, replacement)
		Expect(registry.Get(guildID)).To(BeIdenticalTo(replacement))
		Expect(registry.Len()).To(Equal(1))
	})

	It("Creates a queue only when the guild has none", func() {
		registry := queue.NewRegistry()
		calls := 0
		create := func() *queue.ServerQueue {
			calls++
			return newQueue(guildID)
		}

		first, created, err := registry.GetOrCreate(guildID, create)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())

		second, created, err := registry.GetOrCreate(guildID, create)
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeFalse())
		Expect(second).To(BeIdenticalTo(first))
		Expect(calls).To(Equal(1))
	})

	It("Removes a queue only while it is the registered one", func() {
		registry := queue.NewRegistry()
		stale := newQueue(guildID)
		current := newQueue(guildID)
		register(registry, current)

		Expect(registry.Remove(stale)).To(BeFalse())
		Expect(stale.Destroyed()).To(BeTrue())
		Expect(registry.Get(guildID)).To(BeIdenticalTo(current))

		Expect(registry.Remove(current)).To(BeTrue())
		Expect(registry.Get(guildID)).To(BeNil())
	})

	It("Rejects guild ids that are not snowflakes", func() {
		registry := queue.NewRegistry()
		Expect(registry.Get("not-a-guild")).To(BeNil())
		Expect(registry.Remove(newQueue("not-a-guild"))).To(BeFalse())

		_, _, err := registry.GetOrCreate("not-a-guild", func() *queue.ServerQueue { return nil })
		Expect(err).To(HaveOccurred())
	})

	It("Ranges over every queue", func() {
		registry := queue.NewRegistry()
		register(registry, newQueue(guildID))
		register(registry, newQueue(otherGuildID))

		seen := make([]snowflake.ID, 0)
		registry.Range(func(id snowflake.ID, q *queue.ServerQueue) bool {
			seen = append(seen, id)
			return true
		})

		Expect(seen).To(ConsistOf(snowflake.MustParse(guildID), snowflake.MustParse(otherGuildID)))
	})
})
