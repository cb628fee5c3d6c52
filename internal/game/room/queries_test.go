package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/protocol"
)

func TestQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAskFixture(t, []card.Card{"2 of Hearts"}, []card.Card{"7 of Hearts"})

	hand, err := f.m.GetHand(ctx, f.asker.ID)
	require.NoError(t, err)
	assert.Equal(t, []card.Card{"2 of Hearts"}, hand)

	players, err := f.m.GetRoomPlayers(ctx, f.room.ID)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Bob", players[1].Name)

	team, err := f.m.GetPlayerTeam(ctx, f.asked.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, team)

	turn, err := f.m.GetCurrentTurn(ctx, f.room.ID)
	require.NoError(t, err)
	assert.True(t, turn.Started)
	assert.Equal(t, f.asker.ID, turn.CurrentTurn)
}

func TestQueries_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, _, _ := newTestManager(t, 1)

	_, err := m.GetHand(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
	_, err = m.GetRoomPlayers(ctx, "nowhere")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	_, err = m.GetPlayerTeam(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrPlayerNotFound)
	_, err = m.GetCurrentTurn(ctx, "nowhere")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestAnnouncePlayers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAskFixture(t, []card.Card{"2 of Hearts"}, []card.Card{"7 of Hearts"})

	require.NoError(t, f.m.AnnouncePlayers(ctx, f.room.ID))

	lists := f.bc.RoomEvents(f.room.ID, protocol.MsgUpdatePlayers)
	require.Len(t, lists, 1)
	payload, err := protocol.ParsePayload[protocol.UpdatePlayersPayload](lists[0])
	require.NoError(t, err)
	require.Len(t, payload.Players, 2)
	assert.Equal(t, f.asker.ID, payload.Players[0].ID)
	assert.Equal(t, 0, payload.Players[0].Team)
}

func TestResendHand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAskFixture(t, []card.Card{"2 of Hearts"}, []card.Card{"7 of Hearts"})

	require.NoError(t, f.m.ResendHand(ctx, f.asker.ID))
	hands := f.bc.PlayerEvents(f.asker.ID, protocol.MsgHandUpdated)
	require.Len(t, hands, 1)
	payload, err := protocol.ParsePayload[protocol.HandUpdatedPayload](hands[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"2 of Hearts"}, payload.Hand)
}

func TestResendHand_Unavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, repo, _ := newTestManager(t, 1)

	// Unknown player
	assert.ErrorIs(t, m.ResendHand(ctx, "nobody"), apperrors.ErrHandUnavailable)

	// Known player before the deal
	roomID, playerID, err := m.CreateRoom(ctx, "Alice")
	require.NoError(t, err)
	assert.ErrorIs(t, m.ResendHand(ctx, playerID), apperrors.ErrHandUnavailable)
	_, err = repo.GetRoom(ctx, roomID)
	require.NoError(t, err)
}
