package http

import (
	"net/http"

	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/models"
)

type Server struct {
	Club           club.ClubStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// treatmentView exposes the availability computed on read.
type treatmentView struct {
	models.Treatment
	Available bool `json:"available"`
}

type activeSeasonRequest struct {
	Label string `json:"label"`
}

type assignPlayerRequest struct {
	PlayerID int `json:"player_id"`
}
