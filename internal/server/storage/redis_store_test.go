package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/game/room"
	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/testutil"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRedisStore(client, 2*time.Hour), mr
}

func TestRedisStore_RoomRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	r := &room.Room{
		ID:          "room-1",
		Status:      room.StatusActive,
		Round:       1,
		CurrentTurn: "p1",
		Scores:      map[int]int{0: 2, 1: 1},
		Started:     true,
	}

	require.NoError(t, store.PutRoom(ctx, r))

	loaded, err := store.GetRoom(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, loaded)

	require.NoError(t, store.DeleteRoom(ctx, r.ID))

	_, err = store.GetRoom(ctx, r.ID)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestRedisStore_RoomNotFound(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, err := store.GetRoom(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestRedisStore_PlayerRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	p, err := store.CreatePlayer(ctx, "room-1", "Alice", 0)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	p.Hand = []card.Card{"Joker", "Joker", "7 of Hearts"}
	require.NoError(t, store.PutPlayer(ctx, p))

	loaded, err := store.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	_, err = store.GetPlayer(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
}

func TestRedisStore_ListPlayersOrder(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.CreatePlayer(ctx, "room-1", fmt.Sprintf("P%d", i), i%2)
		require.NoError(t, err)
	}

	players, err := store.ListPlayers(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, players, 3)
	for i, p := range players {
		assert.Equal(t, fmt.Sprintf("P%d", i), p.Name)
	}

	// Other rooms are untouched
	players, err = store.ListPlayers(ctx, "room-2")
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutRoom(ctx, &room.Room{ID: "room-1", Status: room.StatusSetup, Scores: map[int]int{}}))
	_, err := store.CreatePlayer(ctx, "room-1", "Alice", 0)
	require.NoError(t, err)

	mr.FastForward(3 * time.Hour)

	_, err = store.GetRoom(ctx, "room-1")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	players, err := store.ListPlayers(ctx, "room-1")
	require.NoError(t, err)
	assert.Empty(t, players)
}

// Full game flow against the Redis-backed repository: six joins trigger
// the deal, a missed ask passes the turn and a hit moves the card back.
func TestRedisStore_GameFlow(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	bc := &testutil.RecordingBroadcaster{}
	rng := rand.New(rand.NewPCG(42, 42))
	m := room.NewManager(store, bc, rng, log.New(io.Discard))

	roomID, _, err := m.CreateRoom(ctx, "P0")
	require.NoError(t, err)
	for i := 1; i < room.Capacity; i++ {
		_, _, err := m.JoinRoom(ctx, roomID, fmt.Sprintf("P%d", i))
		require.NoError(t, err)
	}

	r, err := store.GetRoom(ctx, roomID)
	require.NoError(t, err)
	require.True(t, r.Started)
	players, err := store.ListPlayers(ctx, roomID)
	require.NoError(t, err)
	require.Len(t, players, room.Capacity)

	var asker, asked *room.Player
	for _, p := range players {
		if p.ID == r.CurrentTurn {
			asker = p
			break
		}
	}
	require.NotNil(t, asker)
	for _, p := range players {
		if p.ID != asker.ID {
			asked = p
			break
		}
	}

	// Pick a card the asker may legally ask for: same set as one of
	// their cards, but not in their own hand.
	var want card.Card
	for _, held := range asker.Hand {
		set, err := card.SetOf(held)
		require.NoError(t, err)
		for _, candidate := range card.Universe() {
			if s, _ := card.SetOf(candidate); s == set && !asker.HasCard(candidate) {
				want = candidate
				break
			}
		}
		if want != "" {
			break
		}
	}
	require.NotEmpty(t, want)

	err = m.AskCard(ctx, &room.AskRequest{
		RoomID:         roomID,
		AskingPlayerID: asker.ID,
		AskedPlayerID:  asked.ID,
		Card:           want,
	})
	require.NoError(t, err)

	r, err = store.GetRoom(ctx, roomID)
	require.NoError(t, err)
	if asked.HasCard(want) {
		// Hit: card changed hands, turn stays with the asker
		assert.Equal(t, asker.ID, r.CurrentTurn)
		reloaded, err := store.GetPlayer(ctx, asker.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.HasCard(want))
		assert.Len(t, bc.RoomEvents(roomID, protocol.MsgCardTransferred), 1)
	} else {
		// Miss: hands unchanged, turn passes to the asked player
		assert.Equal(t, asked.ID, r.CurrentTurn)
		assert.Empty(t, bc.RoomEvents(roomID, protocol.MsgCardTransferred))
	}
	assert.Len(t, bc.RoomEvents(roomID, protocol.MsgTurnChanged), 1)
}
