package queue

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"
)

// Registry holds at most one ServerQueue per guild.
type Registry struct {
	mutex  sync.RWMutex
	queues map[snowflake.ID]*ServerQueue
}

func NewRegistry() *Registry {
	return &Registry{
		queues: make(map[snowflake.ID]*ServerQueue),
	}
}

func parseGuildID(guildID string) (snowflake.ID, error) {
	id, err := snowflake.Parse(guildID)

	if err != nil {
		return 0, errors.Wrapf(err, "invalid guild id %q", guildID)
	}

	return id, nil
}

// Get returns the queue of a guild or nil when the guild has none.
func (r *Registry) Get(guildID string) *ServerQueue {
	id, err := parseGuildID(guildID)

	if err != nil {
		return nil
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.queues[id]
}

// GetOrCreate returns the queue of a guild, creating it with create when the
// guild has none. created reports whether create was called.
func (r *Registry) GetOrCreate(guildID string, create func() *ServerQueue) (q *ServerQueue, created bool, err error) {
	id, err := parseGuildID(guildID)

	if err != nil {
		return nil, false, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.queues[id]; ok {
		return existing, false, nil
	}

	q = create()
	r.queues[id] = q
	return q, true, nil
}

// Remove destroys q and deletes it from the registry if it is still the queue of its guild.
func (r *Registry) Remove(q *ServerQueue) bool {
	if q == nil {
		return false
	}

	q.Destroy()

	id, err := parseGuildID(q.GuildID())

	if err != nil {
		return false
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.queues[id] != q {
		return false
	}

	delete(r.queues, id)
	return true
}

func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.queues)
}

// Range calls fn for every queue until fn returns false.
func (r *Registry) Range(fn func(guildID snowflake.ID, q *ServerQueue) bool) {
	r.mutex.RLock()
	queues := make(map[snowflake.ID]*ServerQueue, len(r.queues))
	for id, q := range r.queues {
		queues[id] = q
	}
	r.mutex.RUnlock()

	for id, q := range queues {
		if !fn(id, q) {
			return
		}
	}
}
