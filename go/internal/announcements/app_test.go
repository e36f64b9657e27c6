package announcements

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/hockeyfed/go/internal/auth"
	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore/kvstoretest"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

var (
	admin  = &models.PublicUser{ID: "1", Username: "admin123", IsAdmin: true}
	member = &models.PublicUser{ID: "2", Username: "sam"}
)

func newTestApp(t *testing.T) (*App, *kvstoretest.Faulty, *clockwork.FakeClock) {
	t.Helper()
	store := kvstoretest.NewFaulty(kvstore.NewMemory())
	coll := collection.New[models.Announcement](collection.Announcements, store, idgen.NewSequence("a"), collection.NewestFirst())
	clock := clockwork.NewFakeClockAt(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	return NewApp(NewRepository(coll), clock), store, clock
}

func TestCreateAnnouncementNewestFirst(t *testing.T) {
	ctx := context.Background()
	app, _, clock := newTestApp(t)

	first, err := app.CreateAnnouncement(ctx, CreateAnnouncementRequest{Title: "Welcome", Content: "Hello"}, admin)
	require.NoError(t, err)
	assert.Equal(t, "admin123", first.CreatedBy)
	assert.Equal(t, clock.Now(), first.CreatedAt)
	assert.False(t, first.Important)

	clock.Advance(time.Hour)
	_, err = app.CreateAnnouncement(ctx, CreateAnnouncementRequest{Title: "Pitch closed", Content: "Rain", Important: true}, admin)
	require.NoError(t, err)

	list := app.ListAnnouncements(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "Pitch closed", list[0].Title)
	assert.Equal(t, "Welcome", list[1].Title)
}

func TestNonAdminIsRejectedBeforeStoreAccess(t *testing.T) {
	ctx := context.Background()
	app, store, _ := newTestApp(t)

	for _, actor := range []*models.PublicUser{nil, member} {
		_, err := app.CreateAnnouncement(ctx, CreateAnnouncementRequest{Title: "x", Content: "y"}, actor)
		assert.ErrorIs(t, err, auth.ErrForbidden)
		assert.EqualError(t, err, "only administrators can create announcements")

		err = app.DeleteAnnouncement(ctx, "a1", actor)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	}
	assert.Zero(t, store.Sets())
}

func TestDeleteAnnouncement(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newTestApp(t)

	created, err := app.CreateAnnouncement(ctx, CreateAnnouncementRequest{Title: "Welcome", Content: "Hello"}, admin)
	require.NoError(t, err)

	err = app.DeleteAnnouncement(ctx, created.ID, member)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Len(t, app.ListAnnouncements(ctx), 1)

	require.NoError(t, app.DeleteAnnouncement(ctx, created.ID, admin))
	assert.Empty(t, app.ListAnnouncements(ctx))
}

func TestCreateAnnouncementValidation(t *testing.T) {
	app, _, _ := newTestApp(t)
	_, err := app.CreateAnnouncement(context.Background(), CreateAnnouncementRequest{Content: "no title"}, admin)
	assert.ErrorIs(t, err, ErrInvalidAnnouncement)
}
