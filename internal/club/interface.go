package club

import "github.com/vilacaiz/clubhouse/internal/models"

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	ListSeasons() []models.Season
	ActiveSeason() models.Season
	CreateSeason(in SeasonInput) (models.Season, error)
	SetActive(label string) (models.Season, error)
	UpdateSeason(label string, patch SeasonPatch) (models.Season, error)
	DeleteSeason(label string) error
	Active() Scope
	Season(label string) (Scope, error)
	Reload() error
}

var _ ClubStore = (*Club)(nil)
