package queueing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// after three arrivals (1, 2, 3) pushed to the front in order, the queue
// reads newest-first: [3, 2, 1].
func arrivalOrderQueue() []Job {
	return []Job{{ID: 3}, {ID: 2}, {ID: 1}}
}

func TestServiceDiscipline_FCFSPopsOldestFromTheBack(t *testing.T) {
	queue := arrivalOrderQueue()
	rng := rand.New(rand.NewSource(1))

	rest, job := FCFS.pick(queue, rng)
	assert.Equal(t, 1, job.ID)
	assert.Equal(t, []Job{{ID: 3}, {ID: 2}}, rest)
}

func TestServiceDiscipline_LCFSPopsNewestFromTheFront(t *testing.T) {
	queue := arrivalOrderQueue()
	rng := rand.New(rand.NewSource(1))

	rest, job := LCFS.pick(queue, rng)
	assert.Equal(t, 3, job.ID)
	assert.Equal(t, []Job{{ID: 2}, {ID: 1}}, rest)
}

func TestServiceDiscipline_SIROPicksSomeEntryAndShrinksByOne(t *testing.T) {
	queue := arrivalOrderQueue()
	rng := rand.New(rand.NewSource(1))

	rest, job := SIRO.pick(queue, rng)
	assert.Len(t, rest, 2)
	assert.Contains(t, []int{1, 2, 3}, job.ID)
	for _, r := range rest {
		assert.NotEqual(t, job.ID, r.ID)
	}
}

func TestServiceDiscipline_Valid(t *testing.T) {
	assert.True(t, FCFS.valid())
	assert.True(t, LCFS.valid())
	assert.True(t, SIRO.valid())
	assert.False(t, ServiceDiscipline("bogus").valid())
}
