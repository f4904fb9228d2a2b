package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityManager_SpawnAssignsGenerationOne(t *testing.T) {
	w := New(nil)
	e := w.Spawn()
	assert.True(t, w.IsAlive(e))
	assert.Equal(t, uint32(1), e.gen)
}

func TestEntityManager_KillInvalidatesHandle(t *testing.T) {
	w := New(nil)
	e := w.Spawn()
	require.True(t, w.IsAlive(e))
	require.True(t, w.Kill(e))
	assert.False(t, w.IsAlive(e))
}

func TestEntityManager_RecycledIDBumpsGeneration(t *testing.T) {
	w := New(nil)
	a := w.Spawn()
	w.Kill(a)
	b := w.Spawn()

	assert.Equal(t, a.id, b.id, "freed id should be recycled")
	assert.Greater(t, b.gen, a.gen, "recycled id must carry a new generation")
	assert.False(t, w.IsAlive(a), "stale handle to the old generation must stay dead")
	assert.True(t, w.IsAlive(b))
}

func TestEntityManager_KillDeadHandleIsNoOp(t *testing.T) {
	w := New(nil)
	e := w.Spawn()
	w.Kill(e)
	assert.False(t, w.Kill(e))
}

func TestEntityManager_LivingAndCount(t *testing.T) {
	w := New(nil)
	a := w.Spawn()
	b := w.Spawn()
	w.Spawn()
	w.Kill(b)

	assert.Equal(t, 2, w.EntityCount())
	living := w.LivingEntities()
	assert.Len(t, living, 2)

	ids := map[uint64]bool{}
	for _, e := range living {
		ids[e.id] = true
	}
	assert.True(t, ids[a.id])
	assert.False(t, ids[b.id])
}
