package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameClock struct{ Tick int }

func TestResource_SetGet(t *testing.T) {
	w := New(nil)
	assert.False(t, HasResource[gameClock](w))

	SetResource(w, gameClock{Tick: 1})
	assert.True(t, HasResource[gameClock](w))

	c, err := GetResource[gameClock](w)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Tick)
}

func TestResource_MissingReturnsResourceNotFound(t *testing.T) {
	w := New(nil)
	_, err := GetResource[gameClock](w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: CodeResourceNotFound}))
}

func TestResource_ResMutWritesVisibleToLaterGet(t *testing.T) {
	w := New(nil)
	SetResource(w, gameClock{Tick: 0})

	ptr, ok := getResourcePtr[gameClock](w.resources)
	require.True(t, ok)
	ptr.Tick = 7

	c, err := GetResource[gameClock](w)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Tick)
}

func TestResource_GetResourceReturnsCopyNotAlias(t *testing.T) {
	w := New(nil)
	SetResource(w, gameClock{Tick: 1})

	c, err := GetResource[gameClock](w)
	require.NoError(t, err)
	c.Tick = 999

	c2, err := GetResource[gameClock](w)
	require.NoError(t, err)
	assert.Equal(t, 1, c2.Tick)
}
