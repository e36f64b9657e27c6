package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/auth"
	"github.com/mcdev12/hockeyfed/go/internal/models"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) *models.User
	ListUsers(ctx context.Context) []models.User
	DeleteUser(ctx context.Context, id string) error
}

// Sessions defines how the app tracks the signed-in user
type Sessions interface {
	Current(ctx context.Context) *models.PublicUser
	Begin(ctx context.Context, user models.PublicUser) error
	End(ctx context.Context) error
}

// App handles account business logic
type App struct {
	repo     UsersRepository
	sessions Sessions
	clock    clockwork.Clock
	hashCost int
}

// NewApp creates a new users App. hashCost is the bcrypt cost for new
// passwords; zero selects the bcrypt default.
func NewApp(repo UsersRepository, sessions Sessions, clock clockwork.Clock, hashCost int) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:     repo,
		sessions: sessions,
		clock:    clock,
		hashCost: hashCost,
	}
}

// Register creates a non-admin account and returns its public view
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.PublicUser, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}
	// CreateUser repeats this check inside its write cycle.
	if a.repo.GetUserByUsername(ctx, req.Username) != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := HashPassword(req.Password, a.hashCost)
	if err != nil {
		return nil, err
	}

	user, err := a.repo.CreateUser(ctx, models.User{
		Username:  req.Username,
		Password:  hash,
		Email:     req.Email,
		IsAdmin:   false,
		CreatedAt: a.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("registered user")
	public := user.Public()
	return &public, nil
}

// Login checks the credentials and, on success, records the user as the
// current session. Users are read through the soft-fail list, so an
// unreadable users collection is reported as ErrInvalidCredentials; the read
// failure itself is logged at warn level by the collection.
func (a *App) Login(ctx context.Context, username, password string) (*models.PublicUser, error) {
	user := a.repo.GetUserByUsername(ctx, username)
	if user == nil || !checkPassword(user.Password, password) {
		log.Debug().Str("username", username).Msg("login rejected")
		return nil, ErrInvalidCredentials
	}

	public := user.Public()
	if err := a.sessions.Begin(ctx, public); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return &public, nil
}

// CurrentSession returns the signed-in user or nil
func (a *App) CurrentSession(ctx context.Context) *models.PublicUser {
	return a.sessions.Current(ctx)
}

// Logout ends the current session; it succeeds when nobody is signed in
func (a *App) Logout(ctx context.Context) error {
	return a.sessions.End(ctx)
}

// ListUsers retrieves every account without passwords
func (a *App) ListUsers(ctx context.Context) []models.PublicUser {
	users := a.repo.ListUsers(ctx)
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// DeleteUser removes an account. Only administrators may do so. Deleting
// the signed-in user also ends the session.
func (a *App) DeleteUser(ctx context.Context, id string, actor *models.PublicUser) error {
	if err := auth.RequireAdmin(actor, "delete users"); err != nil {
		return err
	}
	if err := a.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	if current := a.sessions.Current(ctx); current != nil && current.ID == id {
		if err := a.sessions.End(ctx); err != nil {
			return err
		}
	}

	log.Info().Str("user_id", id).Str("deleted_by", actor.Username).Msg("deleted user")
	return nil
}

func validateRegisterRequest(req RegisterRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Email, validation.Required, validation.Match(emailPattern).Error("must be a valid email address")),
		validation.Field(&req.Password, validation.Required, validation.By(notBlank), validation.RuneLength(5, 0).Error("must be at least 5 characters long"), validation.By(maxPasswordBytes)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}
	return nil
}

// bcrypt only accepts passwords up to 72 bytes.
func maxPasswordBytes(value interface{}) error {
	if s, _ := value.(string); len(s) > 72 {
		return errors.New("must be at most 72 bytes long")
	}
	return nil
}

func notBlank(value interface{}) error {
	if s, _ := value.(string); strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
