package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/hockeyfed/go/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixtures mirrors fixtures.yaml
type Fixtures struct {
	Teams   []teamFixture   `yaml:"teams"`
	Players []playerFixture `yaml:"players"`
	Events  []eventFixture  `yaml:"events"`
	Admin   adminFixture    `yaml:"admin"`
	Welcome welcomeFixture  `yaml:"welcome"`
}

type teamFixture struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Division     string `yaml:"division"`
	ContactName  string `yaml:"contactName"`
	ContactEmail string `yaml:"contactEmail"`
	ContactPhone string `yaml:"contactPhone"`
}

type playerFixture struct {
	ID          string `yaml:"id"`
	FirstName   string `yaml:"firstName"`
	LastName    string `yaml:"lastName"`
	DateOfBirth string `yaml:"dateOfBirth"`
	Gender      string `yaml:"gender"`
	TeamID      string `yaml:"teamId"`
	Position    string `yaml:"position"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
}

type eventFixture struct {
	ID                   string `yaml:"id"`
	Title                string `yaml:"title"`
	Date                 string `yaml:"date"`
	RegistrationDeadline string `yaml:"registrationDeadline"`
	Location             string `yaml:"location"`
	RegistrationFee      string `yaml:"registrationFee"`
	Description          string `yaml:"description"`
	Category             string `yaml:"category"`
	HockeyType           string `yaml:"hockeyType"`
	MinPlayers           int    `yaml:"minPlayers"`
}

type adminFixture struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

type welcomeFixture struct {
	Title     string `yaml:"title"`
	Content   string `yaml:"content"`
	Important bool   `yaml:"important"`
}

// LoadFixtures parses the embedded dataset
func LoadFixtures() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

func (f *Fixtures) teams() []models.Team {
	out := make([]models.Team, 0, len(f.Teams))
	for _, t := range f.Teams {
		out = append(out, models.Team{
			ID:           t.ID,
			Name:         t.Name,
			Category:     t.Category,
			Division:     t.Division,
			ContactName:  t.ContactName,
			ContactEmail: t.ContactEmail,
			ContactPhone: t.ContactPhone,
		})
	}
	return out
}

func (f *Fixtures) players() []models.Player {
	out := make([]models.Player, 0, len(f.Players))
	for _, p := range f.Players {
		player := models.Player{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			DateOfBirth: p.DateOfBirth,
			Gender:      p.Gender,
			Position:    p.Position,
			Email:       p.Email,
			Phone:       p.Phone,
		}
		if p.TeamID != "" {
			teamID := p.TeamID
			player.TeamID = &teamID
		}
		out = append(out, player)
	}
	return out
}

func (f *Fixtures) events() []models.Event {
	out := make([]models.Event, 0, len(f.Events))
	for _, e := range f.Events {
		out = append(out, models.Event{
			ID:                   e.ID,
			Title:                e.Title,
			Date:                 e.Date,
			RegistrationDeadline: e.RegistrationDeadline,
			Location:             e.Location,
			RegistrationFee:      e.RegistrationFee,
			Description:          e.Description,
			Category:             e.Category,
			HockeyType:           models.HockeyType(e.HockeyType),
			MinPlayers:           e.MinPlayers,
		})
	}
	return out
}
