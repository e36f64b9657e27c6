package events

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

func validRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:                "National Indoor Championship",
		Date:                 "2025-06-15",
		RegistrationDeadline: "2025-05-30",
		Location:             "Windhoek Sports Complex",
		RegistrationFee:      "N$500",
		Category:             "Tournament",
		HockeyType:           models.HockeyTypeIndoor,
		MinPlayers:           6,
	}
}

func newTestApp(t *testing.T, now time.Time) *App {
	t.Helper()
	events := collection.New[models.Event](collection.Events, kvstore.NewMemory(), idgen.NewSequence("e"))
	return NewApp(NewRepository(events), clockwork.NewFakeClockAt(now))
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, time.Now())

	created, err := app.CreateEvent(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "e1", created.ID)

	got, err := app.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateEventRequest)
	}{
		{"missing title", func(r *CreateEventRequest) { r.Title = "" }},
		{"missing location", func(r *CreateEventRequest) { r.Location = "" }},
		{"missing fee", func(r *CreateEventRequest) { r.RegistrationFee = "" }},
		{"unknown hockey type", func(r *CreateEventRequest) { r.HockeyType = "Ice" }},
		{"missing hockey type", func(r *CreateEventRequest) { r.HockeyType = "" }},
		{"zero min players", func(r *CreateEventRequest) { r.MinPlayers = 0 }},
		{"negative min players", func(r *CreateEventRequest) { r.MinPlayers = -3 }},
		{"deadline after date", func(r *CreateEventRequest) { r.RegistrationDeadline = "2025-07-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, time.Now())
			req := validRequest()
			tt.mutate(&req)
			_, err := app.CreateEvent(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.Empty(t, app.ListEvents(context.Background()))
		})
	}
}

func TestCreateEventAcceptsTimestamps(t *testing.T) {
	app := newTestApp(t, time.Now())
	req := validRequest()
	req.Date = "2025-06-15T08:00:00.000Z"
	req.RegistrationDeadline = "2025-05-30T22:00:00.000Z"
	_, err := app.CreateEvent(context.Background(), req)
	require.NoError(t, err)
}

func TestIsRegistrationOpen(t *testing.T) {
	event := models.Event{RegistrationDeadline: "2025-05-30"}

	assert.True(t, IsRegistrationOpen(event, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsRegistrationOpen(event, time.Date(2025, 5, 30, 23, 59, 0, 0, time.UTC)), "deadline day is inclusive")
	assert.False(t, IsRegistrationOpen(event, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsRegistrationOpen(models.Event{RegistrationDeadline: "soon"}, time.Now()))
}

func TestOpenEventsAndReplace(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	_, err := app.CreateEvent(ctx, validRequest())
	require.NoError(t, err)
	later := validRequest()
	later.Title = "Coastal Outdoor Tournament"
	later.Date = "2025-07-10"
	later.RegistrationDeadline = "2025-06-25"
	later.HockeyType = models.HockeyTypeOutdoor
	_, err = app.CreateEvent(ctx, later)
	require.NoError(t, err)

	open := app.OpenEvents(ctx)
	require.Len(t, open, 1)
	assert.Equal(t, "Coastal Outdoor Tournament", open[0].Title)

	replacement := open[0]
	replacement.MinPlayers = 0
	_, err = app.ReplaceEvent(ctx, replacement)
	assert.ErrorIs(t, err, ErrInvalidEvent)

	_, err = app.SaveEvent(ctx, models.Event{ID: "nope", Title: "x", Location: "y", RegistrationFee: "z", HockeyType: models.HockeyTypeIndoor, MinPlayers: 1})
	assert.ErrorIs(t, err, collection.ErrNotFound)

	require.NoError(t, app.DeleteEvent(ctx, "e1"))
	assert.Len(t, app.ListEvents(ctx), 1)
}
