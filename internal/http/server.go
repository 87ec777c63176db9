package http

import (
	"net/http"

	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/config"
)

func NewServer(c club.ClubStore, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Club:           c,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), requestIDMiddleware, paramsMiddleware, authMiddleware)
	handle := func(pattern string, h http.Handler) {
		s.Router.Handle(pattern, Chain(h, requestIDMiddleware, paramsMiddleware))
	}

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	handle("GET /health", s.HealthCheckHandler())

	handle("GET /api/seasons", s.ListSeasonsHandler())
	handle("POST /api/seasons", s.CreateSeasonHandler())
	handle("GET /api/seasons/active", s.ActiveSeasonHandler())
	handle("PUT /api/seasons/active", s.SetActiveSeasonHandler())
	handle("PATCH /api/seasons/{label}", s.UpdateSeasonHandler())
	handle("DELETE /api/seasons/{label}", s.DeleteSeasonHandler())
	handle("POST /api/reload", s.ReloadHandler())

	handle("GET /api/players", s.ListPlayersHandler())
	handle("POST /api/players", create(s, func(sc club.Scope, in club.PlayerInput) (any, error) { return sc.Players().Add(in) }))
	handle("GET /api/players/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Players().Get(id) }))
	handle("PATCH /api/players/{id}", update(s, func(sc club.Scope, id int, p club.PlayerPatch) (any, error) { return sc.Players().Update(id, p) }))
	handle("DELETE /api/players/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Players().Delete(id) }))

	handle("GET /api/coaches", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.Coaches().List() }))
	handle("POST /api/coaches", create(s, func(sc club.Scope, in club.CoachInput) (any, error) { return sc.Coaches().Add(in) }))
	handle("GET /api/coaches/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Coaches().Get(id) }))
	handle("PATCH /api/coaches/{id}", update(s, func(sc club.Scope, id int, p club.CoachPatch) (any, error) { return sc.Coaches().Update(id, p) }))
	handle("DELETE /api/coaches/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Coaches().Delete(id) }))

	handle("GET /api/physiotherapists", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.Physiotherapists().List() }))
	handle("POST /api/physiotherapists", create(s, func(sc club.Scope, in club.PhysioInput) (any, error) { return sc.Physiotherapists().Add(in) }))
	handle("GET /api/physiotherapists/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Physiotherapists().Get(id) }))
	handle("PATCH /api/physiotherapists/{id}", update(s, func(sc club.Scope, id int, p club.PhysioPatch) (any, error) {
		return sc.Physiotherapists().Update(id, p)
	}))
	handle("DELETE /api/physiotherapists/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Physiotherapists().Delete(id) }))

	handle("GET /api/youth-squads", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.YouthSquads().List() }))
	handle("POST /api/youth-squads", create(s, func(sc club.Scope, in club.YouthSquadInput) (any, error) { return sc.YouthSquads().Add(in) }))
	handle("GET /api/youth-squads/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.YouthSquads().Get(id) }))
	handle("PATCH /api/youth-squads/{id}", update(s, func(sc club.Scope, id int, p club.YouthSquadPatch) (any, error) {
		return sc.YouthSquads().Update(id, p)
	}))
	handle("DELETE /api/youth-squads/{id}", remove(s, func(sc club.Scope, id int) error { return sc.YouthSquads().Delete(id) }))
	handle("POST /api/youth-squads/{id}/players", s.AssignPlayerHandler())
	handle("DELETE /api/youth-squads/{id}/players/{playerID}", s.UnassignPlayerHandler())

	handle("GET /api/membership-types", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.MembershipTypes().List() }))
	handle("POST /api/membership-types", create(s, func(sc club.Scope, in club.MembershipTypeInput) (any, error) {
		return sc.MembershipTypes().Add(in)
	}))
	handle("GET /api/membership-types/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.MembershipTypes().Get(id) }))
	handle("PATCH /api/membership-types/{id}", update(s, func(sc club.Scope, id int, p club.MembershipTypePatch) (any, error) {
		return sc.MembershipTypes().Update(id, p)
	}))
	handle("DELETE /api/membership-types/{id}", remove(s, func(sc club.Scope, id int) error { return sc.MembershipTypes().Delete(id) }))

	handle("GET /api/members", s.ListMembersHandler())
	handle("POST /api/members", create(s, func(sc club.Scope, in club.MemberInput) (any, error) { return sc.Members().Add(in) }))
	handle("GET /api/members/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Members().Get(id) }))
	handle("PATCH /api/members/{id}", update(s, func(sc club.Scope, id int, p club.MemberPatch) (any, error) { return sc.Members().Update(id, p) }))
	handle("DELETE /api/members/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Members().Delete(id) }))
	handle("GET /api/members/{id}/payments", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Members().ListPayments(id) }))
	handle("POST /api/members/{id}/payments", s.RegisterPaymentHandler())
	handle("GET /api/payments", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.Members().ListPayments(0) }))
	handle("DELETE /api/payments/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Members().RemovePayment(id) }))

	handle("GET /api/treatments", s.ListTreatmentsHandler())
	handle("POST /api/treatments", create(s, func(sc club.Scope, in club.TreatmentInput) (any, error) {
		return viewTreatment(sc.Treatments().Add(in))
	}))
	handle("GET /api/treatments/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return viewTreatment(sc.Treatments().Get(id)) }))
	handle("PATCH /api/treatments/{id}", update(s, func(sc club.Scope, id int, p club.TreatmentPatch) (any, error) {
		return viewTreatment(sc.Treatments().Update(id, p))
	}))
	handle("DELETE /api/treatments/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Treatments().Delete(id) }))

	handle("GET /api/match-plans", s.ListMatchPlansHandler())
	handle("POST /api/match-plans", create(s, func(sc club.Scope, in club.MatchPlanInput) (any, error) { return sc.MatchPlans().Add(in) }))
	handle("GET /api/match-plans/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.MatchPlans().Get(id) }))
	handle("PATCH /api/match-plans/{id}", update(s, func(sc club.Scope, id int, p club.MatchPlanPatch) (any, error) {
		return sc.MatchPlans().Update(id, p)
	}))
	handle("DELETE /api/match-plans/{id}", remove(s, func(sc club.Scope, id int) error { return sc.MatchPlans().Delete(id) }))

	handle("GET /api/finance", s.ListFinanceHandler())
	handle("POST /api/finance", create(s, func(sc club.Scope, in club.FinanceInput) (any, error) { return sc.Finance().Add(in) }))
	handle("GET /api/finance/{id}", byID(s, func(sc club.Scope, id int) (any, error) { return sc.Finance().Get(id) }))
	handle("PATCH /api/finance/{id}", update(s, func(sc club.Scope, id int, p club.FinancePatch) (any, error) { return sc.Finance().Update(id, p) }))
	handle("DELETE /api/finance/{id}", remove(s, func(sc club.Scope, id int) error { return sc.Finance().Delete(id) }))

	handle("GET /api/summary", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.Summary() }))
	handle("GET /api/summary/finance", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.FinanceSummary() }))
	handle("GET /api/summary/dues", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.DuesSummary() }))
	handle("GET /api/summary/availability", list(s, func(sc club.Scope, _ *http.Request) (any, error) { return sc.Availability() }))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
