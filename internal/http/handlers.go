package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListSeasonsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Club.ListSeasons())
	}
}

func (s *Server) ActiveSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Club.ActiveSeason())
	}
}

func (s *Server) CreateSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in club.SeasonInput
		if !decode(w, r, &in) {
			return
		}
		season, err := s.Club.CreateSeason(in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, season)
	}
}

func (s *Server) SetActiveSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req activeSeasonRequest
		if !decode(w, r, &req) {
			return
		}
		season, err := s.Club.SetActive(req.Label)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, season)
	}
}

func (s *Server) UpdateSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch club.SeasonPatch
		if !decode(w, r, &patch) {
			return
		}
		season, err := s.Club.UpdateSeason(r.PathValue("label"), patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, season)
	}
}

func (s *Server) DeleteSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Club.DeleteSeason(r.PathValue("label")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ReloadHandler rereads the club data from storage, picking up changes
// written by another process such as the seeder or the CLI.
func (s *Server) ReloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Club.Reload(); err != nil {
			writeError(w, r, err)
			return
		}
		active := s.Club.ActiveSeason()
		log.Info("Club data reloaded", "active_season", active.Label)
		writeJSON(w, http.StatusOK, active)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return list(s, func(sc club.Scope, r *http.Request) (any, error) {
		q := r.URL.Query()
		return sc.Players().List(club.PlayerFilter{
			Squad:    models.Squad(q.Get("squad")),
			Position: q.Get("position"),
		})
	})
}

func (s *Server) ListMembersHandler() http.HandlerFunc {
	return list(s, func(sc club.Scope, r *http.Request) (any, error) {
		return sc.Members().List(club.MemberFilter{DuesStatus: models.DuesStatus(r.URL.Query().Get("dues_status"))})
	})
}

func (s *Server) ListMatchPlansHandler() http.HandlerFunc {
	return list(s, func(sc club.Scope, r *http.Request) (any, error) {
		return sc.MatchPlans().List(club.MatchPlanFilter{Squad: models.Squad(r.URL.Query().Get("squad"))})
	})
}

func (s *Server) ListTreatmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		var f club.TreatmentFilter
		if v := q.Get("player_id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				badRequest(w, "invalid player_id %q", v)
				return
			}
			f.PlayerID = id
		}
		if v := q.Get("available"); v != "" {
			available, err := strconv.ParseBool(v)
			if err != nil {
				badRequest(w, "invalid available %q", v)
				return
			}
			f.Available = &available
		}
		treatments, err := sc.Treatments().List(f)
		if err != nil {
			writeError(w, r, err)
			return
		}
		views := make([]treatmentView, len(treatments))
		for i, t := range treatments {
			views[i] = treatmentView{Treatment: t, Available: t.Available}
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func viewTreatment(t models.Treatment, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return treatmentView{Treatment: t, Available: t.Available}, nil
}

func (s *Server) ListFinanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		from, err := models.ParseDate(q.Get("from"))
		if err != nil {
			badRequest(w, "invalid from: %v", err)
			return
		}
		to, err := models.ParseDate(q.Get("to"))
		if err != nil {
			badRequest(w, "invalid to: %v", err)
			return
		}
		records, err := sc.Finance().List(club.FinanceFilter{
			Type:     models.RecordType(q.Get("type")),
			Category: q.Get("category"),
			From:     from,
			To:       to,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func (s *Server) AssignPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		squadID, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		var req assignPlayerRequest
		if !decode(w, r, &req) {
			return
		}
		squad, err := sc.YouthSquads().AssignPlayer(squadID, req.PlayerID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, squad)
	}
}

func (s *Server) UnassignPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		squadID, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		playerID, ok := pathInt(w, r, "playerID")
		if !ok {
			return
		}
		squad, err := sc.YouthSquads().UnassignPlayer(squadID, playerID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, squad)
	}
}

// RegisterPaymentHandler books a dues payment for the member in the path.
func (s *Server) RegisterPaymentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := s.scope(w, r)
		if !ok {
			return
		}
		memberID, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		var in club.PaymentInput
		if !decode(w, r, &in) {
			return
		}
		in.MemberID = memberID
		payment, err := sc.Members().RegisterPayment(in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Membership payment registered", "member_id", memberID, "period", payment.Period, "amount", payment.Amount)
		writeJSON(w, http.StatusCreated, payment)
	}
}
