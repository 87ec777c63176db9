package club

import (
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const entityTreatment = "treatment"

type TreatmentInput struct {
	PlayerID       int         `json:"player_id"`
	PhysioID       *int        `json:"physio_id"`
	Diagnosis      string      `json:"diagnosis"`
	Plan           string      `json:"treatment_plan"`
	StartDate      models.Date `json:"start_date"`
	ExpectedReturn models.Date `json:"expected_return"`
	Notes          string      `json:"notes"`
}

type TreatmentPatch struct {
	PlayerID       *int         `json:"player_id"`
	PhysioID       *int         `json:"physio_id"`
	ClearPhysio    bool         `json:"clear_physio"`
	Diagnosis      *string      `json:"diagnosis"`
	Plan           *string      `json:"treatment_plan"`
	StartDate      *models.Date `json:"start_date"`
	ExpectedReturn *models.Date `json:"expected_return"`
	Notes          *string      `json:"notes"`
}

// TreatmentFilter narrows List. Available filters on the availability as of
// the time of the call.
type TreatmentFilter struct {
	PlayerID  int
	Available *bool
}

func (f TreatmentFilter) match(t models.Treatment) bool {
	if f.PlayerID != 0 && t.PlayerID != f.PlayerID {
		return false
	}
	if f.Available != nil && t.Available != *f.Available {
		return false
	}
	return true
}

// Treatments is the clinical record of one season.
type Treatments struct {
	scope Scope
}

// available reports whether a player under treatment can play on day. A
// treatment without an expected return keeps the player out.
func available(t models.Treatment, day models.Date) bool {
	if t.ExpectedReturn.IsZero() {
		return false
	}
	return !day.Before(t.ExpectedReturn)
}

func (r *Treatments) withAvailability(t models.Treatment) models.Treatment {
	t.PhysioID = copyInt(t.PhysioID)
	t.Available = available(t, r.scope.club.Today())
	return t
}

func (r *Treatments) Add(in TreatmentInput) (models.Treatment, error) {
	treatment := normalizeTreatment(models.Treatment{
		PlayerID:       in.PlayerID,
		PhysioID:       copyInt(in.PhysioID),
		Diagnosis:      in.Diagnosis,
		Plan:           in.Plan,
		StartDate:      in.StartDate,
		ExpectedReturn: in.ExpectedReturn,
		Notes:          in.Notes,
	})
	err := r.scope.mutate(entityTreatment, "add", func(sd *models.SeasonData) error {
		if err := checkTreatment(sd, treatment); err != nil {
			return err
		}
		treatment.ID = nextID(sd.Treatments, treatmentID)
		sd.Treatments = append(sd.Treatments, treatment)
		return nil
	})
	if err != nil {
		return models.Treatment{}, err
	}
	return r.withAvailability(treatment), nil
}

func (r *Treatments) List(f TreatmentFilter) ([]models.Treatment, error) {
	var out []models.Treatment
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = make([]models.Treatment, 0, len(sd.Treatments))
		for _, t := range sd.Treatments {
			t = r.withAvailability(t)
			if f.match(t) {
				out = append(out, t)
			}
		}
		return nil
	})
	return out, err
}

func (r *Treatments) Get(id int) (models.Treatment, error) {
	var out models.Treatment
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Treatments, id, treatmentID)
		if !ok {
			return &NotFoundError{Entity: entityTreatment, ID: id}
		}
		out = r.withAvailability(sd.Treatments[i])
		return nil
	})
	return out, err
}

func (r *Treatments) Update(id int, patch TreatmentPatch) (models.Treatment, error) {
	var out models.Treatment
	err := r.scope.mutate(entityTreatment, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Treatments, id, treatmentID)
		if !ok {
			return &NotFoundError{Entity: entityTreatment, ID: id}
		}
		merged := sd.Treatments[i]
		merged.PhysioID = copyInt(merged.PhysioID)
		if patch.PlayerID != nil {
			merged.PlayerID = *patch.PlayerID
		}
		if patch.ClearPhysio {
			merged.PhysioID = nil
		}
		if patch.PhysioID != nil {
			merged.PhysioID = copyInt(patch.PhysioID)
		}
		if patch.Diagnosis != nil {
			merged.Diagnosis = *patch.Diagnosis
		}
		if patch.Plan != nil {
			merged.Plan = *patch.Plan
		}
		if patch.StartDate != nil {
			merged.StartDate = *patch.StartDate
		}
		if patch.ExpectedReturn != nil {
			merged.ExpectedReturn = *patch.ExpectedReturn
		}
		if patch.Notes != nil {
			merged.Notes = *patch.Notes
		}
		merged = normalizeTreatment(merged)
		if err := checkTreatment(sd, merged); err != nil {
			return err
		}
		sd.Treatments[i] = merged
		out = merged
		return nil
	})
	if err != nil {
		return models.Treatment{}, err
	}
	return r.withAvailability(out), nil
}

func (r *Treatments) Delete(id int) error {
	return r.scope.mutate(entityTreatment, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Treatments, id, treatmentID)
		if !ok {
			return &NotFoundError{Entity: entityTreatment, ID: id}
		}
		sd.Treatments = remove(sd.Treatments, i)
		return nil
	})
}

func normalizeTreatment(t models.Treatment) models.Treatment {
	t.Diagnosis = strings.TrimSpace(t.Diagnosis)
	t.Plan = strings.TrimSpace(t.Plan)
	t.Notes = strings.TrimSpace(t.Notes)
	t.Available = false
	return t
}

func checkTreatment(sd *models.SeasonData, t models.Treatment) error {
	if err := treatmentRules.validate(entityTreatment, t); err != nil {
		return err
	}
	if _, ok := index(sd.Players, playerID)[t.PlayerID]; !ok {
		return &ReferenceError{Entity: entityTreatment, Field: "player_id", ID: t.PlayerID}
	}
	if t.PhysioID != nil {
		if _, ok := index(sd.Physiotherapists, physioID)[*t.PhysioID]; !ok {
			return &ReferenceError{Entity: entityTreatment, Field: "physio_id", ID: *t.PhysioID}
		}
	}
	return nil
}
