package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcticwabbit/pongexe/internal/game"
)

func TestPointerHub_SubscribeAndCancel(t *testing.T) {
	hub := NewPointerHub()
	var got []float64

	cancel := hub.Subscribe(func(x, y float64, host game.Bounds) {
		got = append(got, y)
	})
	assert.Equal(t, 1, hub.Listeners())

	hub.Move(1, 42, game.Bounds{Width: 10, Height: 10})
	cancel()
	cancel()
	hub.Move(1, 43, game.Bounds{Width: 10, Height: 10})

	assert.Equal(t, []float64{42}, got)
	assert.Equal(t, 0, hub.Listeners())
}

func TestPointerSlot_KeepsLatest(t *testing.T) {
	var slot pointerSlot

	_, _, _, ok := slot.take()
	assert.False(t, ok)

	host := game.Bounds{Width: 80, Height: 22}
	slot.store(1, 2, host)
	slot.store(3, 4, host)

	x, y, gotHost, ok := slot.take()
	assert.True(t, ok)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	assert.Equal(t, host, gotHost)

	_, _, _, ok = slot.take()
	assert.False(t, ok, "a position is consumed by one tick")
}
