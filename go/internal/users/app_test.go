package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcdev12/hockeyfed/go/internal/auth"
	"github.com/mcdev12/hockeyfed/go/internal/collection"
	"github.com/mcdev12/hockeyfed/go/internal/idgen"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore/kvstoretest"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

var testNow = time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)

type fixture struct {
	app   *App
	store *kvstoretest.Faulty
	users *collection.Repository[models.User]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kvstoretest.NewFaulty(kvstore.NewMemory())
	users := collection.New[models.User](collection.Users, store, idgen.NewSequence("u"))
	app := NewApp(NewRepository(users), NewSessionStore(store), clockwork.NewFakeClockAt(testNow), bcrypt.MinCost)
	return fixture{app: app, store: store, users: users}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{ID: "u1", Username: "sam", Email: "sam@x.org", CreatedAt: testNow}, *user)

	stored := f.users.List(ctx)
	require.Len(t, stored, 1)
	assert.NotEqual(t, "hunter2", stored[0].Password, "password is not stored in plaintext")
	assert.False(t, stored[0].IsAdmin)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.app.Register(ctx, RegisterRequest{Username: "admin123", Email: "a@b.co", Password: "12345"})
	require.NoError(t, err)
	_, err = f.app.Register(ctx, RegisterRequest{Username: "admin123", Email: "other@b.co", Password: "abcdef"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = f.app.Register(ctx, RegisterRequest{Username: "Admin123", Email: "c@b.co", Password: "abcdef"})
	assert.NoError(t, err, "usernames are case-sensitive")
	assert.Len(t, f.app.ListUsers(ctx), 2)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.co", Password: "12345"}},
		{"blank username", RegisterRequest{Username: "   ", Email: "a@b.co", Password: "12345"}},
		{"bad email", RegisterRequest{Username: "sam", Email: "a@b", Password: "12345"}},
		{"short password", RegisterRequest{Username: "sam", Email: "a@b.co", Password: "1234"}},
		{"blank password", RegisterRequest{Username: "sam", Email: "a@b.co", Password: "      "}},
		{"password over 72 bytes", RegisterRequest{Username: "sam", Email: "a@b.co", Password: strings.Repeat("x", 80)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.app.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidUser)
			assert.Empty(t, f.app.ListUsers(context.Background()))
		})
	}
}

func TestLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)
	assert.Nil(t, f.app.CurrentSession(ctx))

	_, err = f.app.Login(ctx, "sam", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.app.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, f.app.CurrentSession(ctx))

	user, err := f.app.Login(ctx, "sam", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, *user, *f.app.CurrentSession(ctx))

	require.NoError(t, f.app.Logout(ctx))
	assert.Nil(t, f.app.CurrentSession(ctx))
	require.NoError(t, f.app.Logout(ctx), "logging out twice succeeds")
}

func TestLoginLegacyPlaintext(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.users.Put(ctx, []models.User{
		{ID: "1", Username: "admin123", Password: "12345", Email: "admin@hockey.na", IsAdmin: true},
	}))

	user, err := f.app.Login(ctx, "admin123", "12345")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	_, err = f.app.Login(ctx, "admin123", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionReadFailureIsNoSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)
	_, err = f.app.Login(ctx, "sam", "hunter2")
	require.NoError(t, err)

	f.store.FailGet(true)
	assert.Nil(t, f.app.CurrentSession(ctx))
}

func TestLoginPropagatesSessionWriteFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)

	f.store.FailSet(true)
	_, err = f.app.Login(ctx, "sam", "hunter2")
	assert.ErrorIs(t, err, kvstore.ErrStorage)

	f.store.FailRemove(true)
	assert.ErrorIs(t, f.app.Logout(ctx), kvstore.ErrStorage)
}

func TestListUsersHidesPasswords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)

	list := f.app.ListUsers(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "sam", list[0].Username)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, isBcryptHash(hash))
	assert.True(t, checkPassword(hash, "secret"))
	assert.False(t, checkPassword(hash, "Secret"))
	assert.True(t, checkPassword("plain", "plain"))
	assert.False(t, checkPassword("plain", "plain "))
}

func TestRegisterAcceptsPasswordAtBcryptLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	password := strings.Repeat("x", 72)

	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: password})
	require.NoError(t, err)
	_, err = f.app.Login(ctx, "sam", password)
	assert.NoError(t, err)
}

func TestLoginWithUnreadableUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Register(ctx, RegisterRequest{Username: "sam", Email: "sam@x.org", Password: "hunter2"})
	require.NoError(t, err)
	sets := f.store.Sets()

	f.store.FailGet(true)
	_, err = f.app.Login(ctx, "sam", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, sets, f.store.Sets(), "no session is written")
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.users.Put(ctx, []models.User{
		{ID: "1", Username: "admin123", Password: "12345", IsAdmin: true},
		{ID: "2", Username: "sam", Password: "hunter2"},
		{ID: "3", Username: "kim", Password: "hunter3"},
	}))
	sam, err := f.app.Login(ctx, "sam", "hunter2")
	require.NoError(t, err)

	err = f.app.DeleteUser(ctx, "3", sam)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	err = f.app.DeleteUser(ctx, "3", nil)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Len(t, f.app.ListUsers(ctx), 3)

	admin := &models.PublicUser{ID: "1", Username: "admin123", IsAdmin: true}
	require.NoError(t, f.app.DeleteUser(ctx, "3", admin))
	assert.Len(t, f.app.ListUsers(ctx), 2)
	assert.NotNil(t, f.app.CurrentSession(ctx), "deleting another user keeps the session")

	require.NoError(t, f.app.DeleteUser(ctx, "2", admin))
	assert.Nil(t, f.app.CurrentSession(ctx), "deleting the signed-in user ends the session")
	_, err = f.app.Login(ctx, "sam", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, f.app.DeleteUser(ctx, "missing", admin))
}
