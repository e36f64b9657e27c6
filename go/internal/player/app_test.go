package player

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

type teamNames map[string]string

func (t teamNames) TeamNames(context.Context) map[string]string { return t }

func ptr(s string) *string { return &s }

func newTestApp(t *testing.T) *App {
	t.Helper()
	players := collection.New[models.Player](collection.Players, kvstore.NewMemory(), idgen.NewSequence("np"))
	require.NoError(t, players.Put(context.Background(), []models.Player{
		{ID: "p1", FirstName: "John", LastName: "Doe", DateOfBirth: "1995-05-12", TeamID: ptr("1"), Position: "Forward", Email: "john@example.com", Phone: "0811234567"},
		{ID: "p2", FirstName: "Maria", LastName: "Shikongo", DateOfBirth: "1998-09-23", TeamID: ptr("2"), Position: "Midfielder"},
		{ID: "p3", FirstName: "Free", LastName: "Agent", DateOfBirth: "not a date"},
		{ID: "p4", FirstName: "Lost", LastName: "Soul", DateOfBirth: "2000-01-01", TeamID: ptr("99"), Position: "Goalkeeper"},
	}))
	clock := clockwork.NewFakeClockAt(time.Date(2025, 5, 11, 12, 0, 0, 0, time.UTC))
	return NewApp(NewRepository(players), teamNames{"1": "Windhoek Hockey Club", "2": "Coastal Hockey Club"}, clock)
}

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	created, err := app.CreatePlayer(ctx, CreatePlayerRequest{FirstName: "Anna", LastName: "Nghipondoka", TeamID: ptr("2")})
	require.NoError(t, err)
	assert.Equal(t, "np1", created.ID)
	assert.Len(t, app.ListPlayers(ctx), 5)

	_, err = app.CreatePlayer(ctx, CreatePlayerRequest{FirstName: "Anna"})
	assert.ErrorIs(t, err, ErrInvalidPlayer)
	_, err = app.CreatePlayer(ctx, CreatePlayerRequest{FirstName: "A", LastName: "B", Email: "nope"})
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestUpdatePlayerMerges(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	ok, err := app.UpdatePlayer(ctx, "p1", PlayerPatch{Phone: ptr("000")})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := app.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "000", got.Phone)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "john@example.com", got.Email)
	require.NotNil(t, got.TeamID)
	assert.Equal(t, "1", *got.TeamID)

	ok, err = app.UpdatePlayer(ctx, "p1", PlayerPatch{TeamID: ptr("")})
	require.NoError(t, err)
	require.True(t, ok)
	got, err = app.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got.TeamID)
}

func TestUpdatePlayerUnknownID(t *testing.T) {
	app := newTestApp(t)
	ok, err := app.UpdatePlayer(context.Background(), "missing", PlayerPatch{Phone: ptr("1")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdatePlayerValidation(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.UpdatePlayer(ctx, "p1", PlayerPatch{Email: ptr("bad")})
	assert.ErrorIs(t, err, ErrInvalidPlayer)
	_, err = app.UpdatePlayer(ctx, "p1", PlayerPatch{FirstName: ptr("")})
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestReplaceAndSavePlayer(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.ReplacePlayer(ctx, models.Player{ID: "p2", FirstName: "Maria", LastName: "S"})
	require.NoError(t, err)
	got, err := app.GetPlayer(ctx, "p2")
	require.NoError(t, err)
	assert.Nil(t, got.TeamID, "replace is wholesale")

	_, err = app.SavePlayer(ctx, models.Player{ID: "ghost", FirstName: "G", LastName: "H"})
	assert.ErrorIs(t, err, collection.ErrNotFound)

	saved, err := app.SavePlayer(ctx, models.Player{FirstName: "New", LastName: "Player"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestDeletePlayer(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	require.NoError(t, app.DeletePlayer(ctx, "p3"))
	require.NoError(t, app.DeletePlayer(ctx, "p3"))
	_, err := app.GetPlayer(ctx, "p3")
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestListPlayersWithTeams(t *testing.T) {
	rows := newTestApp(t).ListPlayersWithTeams(context.Background())
	require.Len(t, rows, 4)

	assert.Equal(t, "Windhoek Hockey Club", rows[0].TeamName)
	require.NotNil(t, rows[0].Age)
	assert.Equal(t, 29, *rows[0].Age, "birthday tomorrow")

	assert.Equal(t, models.UnknownTeam, rows[2].TeamName, "no team")
	assert.Nil(t, rows[2].Age, "unparseable date of birth")
	assert.Equal(t, models.UnknownTeam, rows[3].TeamName, "dangling team id")
}

func TestListPlayersByTeamAndSearch(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	byTeam := app.ListPlayersByTeam(ctx, "2")
	require.Len(t, byTeam, 1)
	assert.Equal(t, "p2", byTeam[0].ID)

	found := app.SearchPlayers(ctx, "GOAL")
	require.Len(t, found, 1)
	assert.Equal(t, "p4", found[0].ID)

	found = app.SearchPlayers(ctx, "john doe")
	require.Len(t, found, 1)
	assert.Equal(t, "p1", found[0].ID)

	found = app.SearchPlayers(ctx, "coastal")
	require.Len(t, found, 1)
	assert.Equal(t, "p2", found[0].ID)

	assert.Len(t, app.SearchPlayers(ctx, "  "), 4)
}
