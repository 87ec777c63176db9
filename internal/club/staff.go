package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const (
	entityCoach  = "coach"
	entityPhysio = "physiotherapist"
)

type CoachInput struct {
	Name         string      `json:"name"`
	Role         string      `json:"role"`
	LicenseLevel string      `json:"license_level"`
	Birthdate    models.Date `json:"birthdate"`
	Contact      string      `json:"contact"`
	PhotoRef     string      `json:"photo_ref"`
}

type CoachPatch struct {
	Name         *string      `json:"name"`
	Role         *string      `json:"role"`
	LicenseLevel *string      `json:"license_level"`
	Birthdate    *models.Date `json:"birthdate"`
	Contact      *string      `json:"contact"`
	PhotoRef     *string      `json:"photo_ref"`
}

// Coaches is the coaching staff of one season.
type Coaches struct {
	scope Scope
}

func (r *Coaches) Add(in CoachInput) (models.Coach, error) {
	coach := normalizeCoach(models.Coach{
		Name:         in.Name,
		Role:         in.Role,
		LicenseLevel: in.LicenseLevel,
		Birthdate:    in.Birthdate,
		Contact:      in.Contact,
		PhotoRef:     in.PhotoRef,
	})
	err := r.scope.mutate(entityCoach, "add", func(sd *models.SeasonData) error {
		if err := coachRules.validate(entityCoach, coach); err != nil {
			return err
		}
		coach.ID = nextID(sd.Coaches, coachID)
		sd.Coaches = append(sd.Coaches, coach)
		return nil
	})
	if err != nil {
		return models.Coach{}, err
	}
	return coach, nil
}

func (r *Coaches) List() ([]models.Coach, error) {
	var out []models.Coach
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = append(make([]models.Coach, 0, len(sd.Coaches)), sd.Coaches...)
		return nil
	})
	return out, err
}

func (r *Coaches) Get(id int) (models.Coach, error) {
	var out models.Coach
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Coaches, id, coachID)
		if !ok {
			return &NotFoundError{Entity: entityCoach, ID: id}
		}
		out = sd.Coaches[i]
		return nil
	})
	return out, err
}

func (r *Coaches) Update(id int, patch CoachPatch) (models.Coach, error) {
	var out models.Coach
	err := r.scope.mutate(entityCoach, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Coaches, id, coachID)
		if !ok {
			return &NotFoundError{Entity: entityCoach, ID: id}
		}
		merged := sd.Coaches[i]
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.Role != nil {
			merged.Role = *patch.Role
		}
		if patch.LicenseLevel != nil {
			merged.LicenseLevel = *patch.LicenseLevel
		}
		if patch.Birthdate != nil {
			merged.Birthdate = *patch.Birthdate
		}
		if patch.Contact != nil {
			merged.Contact = *patch.Contact
		}
		if patch.PhotoRef != nil {
			merged.PhotoRef = *patch.PhotoRef
		}
		merged = normalizeCoach(merged)
		if err := coachRules.validate(entityCoach, merged); err != nil {
			return err
		}
		sd.Coaches[i] = merged
		out = merged
		return nil
	})
	return out, err
}

// Delete removes a coach that owns no youth squad. Squads must be handed to
// another coach first.
func (r *Coaches) Delete(id int) error {
	return r.scope.mutate(entityCoach, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Coaches, id, coachID)
		if !ok {
			return &NotFoundError{Entity: entityCoach, ID: id}
		}
		var deps []string
		for _, y := range sd.YouthSquads {
			if y.CoachID == id {
				deps = append(deps, dependent(entityYouthSquad, y.ID))
			}
		}
		if len(deps) > 0 {
			return &ConflictError{Entity: entityCoach, Key: fmt.Sprint(id), Dependents: deps}
		}
		sd.Coaches = remove(sd.Coaches, i)
		return nil
	})
}

func normalizeCoach(c models.Coach) models.Coach {
	c.Name = strings.TrimSpace(c.Name)
	c.Role = strings.TrimSpace(c.Role)
	c.LicenseLevel = strings.TrimSpace(c.LicenseLevel)
	c.Contact = strings.TrimSpace(c.Contact)
	c.PhotoRef = strings.TrimSpace(c.PhotoRef)
	return c
}

type PhysioInput struct {
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	Birthdate models.Date `json:"birthdate"`
	Contact   string      `json:"contact"`
	PhotoRef  string      `json:"photo_ref"`
}

type PhysioPatch struct {
	Name      *string      `json:"name"`
	Role      *string      `json:"role"`
	Birthdate *models.Date `json:"birthdate"`
	Contact   *string      `json:"contact"`
	PhotoRef  *string      `json:"photo_ref"`
}

// Physiotherapists is the medical staff of one season.
type Physiotherapists struct {
	scope Scope
}

func (r *Physiotherapists) Add(in PhysioInput) (models.Physiotherapist, error) {
	physio := normalizePhysio(models.Physiotherapist{
		Name:      in.Name,
		Role:      in.Role,
		Birthdate: in.Birthdate,
		Contact:   in.Contact,
		PhotoRef:  in.PhotoRef,
	})
	err := r.scope.mutate(entityPhysio, "add", func(sd *models.SeasonData) error {
		if err := physioRules.validate(entityPhysio, physio); err != nil {
			return err
		}
		physio.ID = nextID(sd.Physiotherapists, physioID)
		sd.Physiotherapists = append(sd.Physiotherapists, physio)
		return nil
	})
	if err != nil {
		return models.Physiotherapist{}, err
	}
	return physio, nil
}

func (r *Physiotherapists) List() ([]models.Physiotherapist, error) {
	var out []models.Physiotherapist
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = append(make([]models.Physiotherapist, 0, len(sd.Physiotherapists)), sd.Physiotherapists...)
		return nil
	})
	return out, err
}

func (r *Physiotherapists) Get(id int) (models.Physiotherapist, error) {
	var out models.Physiotherapist
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Physiotherapists, id, physioID)
		if !ok {
			return &NotFoundError{Entity: entityPhysio, ID: id}
		}
		out = sd.Physiotherapists[i]
		return nil
	})
	return out, err
}

func (r *Physiotherapists) Update(id int, patch PhysioPatch) (models.Physiotherapist, error) {
	var out models.Physiotherapist
	err := r.scope.mutate(entityPhysio, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Physiotherapists, id, physioID)
		if !ok {
			return &NotFoundError{Entity: entityPhysio, ID: id}
		}
		merged := sd.Physiotherapists[i]
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.Role != nil {
			merged.Role = *patch.Role
		}
		if patch.Birthdate != nil {
			merged.Birthdate = *patch.Birthdate
		}
		if patch.Contact != nil {
			merged.Contact = *patch.Contact
		}
		if patch.PhotoRef != nil {
			merged.PhotoRef = *patch.PhotoRef
		}
		merged = normalizePhysio(merged)
		if err := physioRules.validate(entityPhysio, merged); err != nil {
			return err
		}
		sd.Physiotherapists[i] = merged
		out = merged
		return nil
	})
	return out, err
}

// Delete removes a physiotherapist no treatment is assigned to.
func (r *Physiotherapists) Delete(id int) error {
	return r.scope.mutate(entityPhysio, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Physiotherapists, id, physioID)
		if !ok {
			return &NotFoundError{Entity: entityPhysio, ID: id}
		}
		var deps []string
		for _, t := range sd.Treatments {
			if t.PhysioID != nil && *t.PhysioID == id {
				deps = append(deps, dependent(entityTreatment, t.ID))
			}
		}
		if len(deps) > 0 {
			return &ConflictError{Entity: entityPhysio, Key: fmt.Sprint(id), Dependents: deps}
		}
		sd.Physiotherapists = remove(sd.Physiotherapists, i)
		return nil
	})
}

func normalizePhysio(p models.Physiotherapist) models.Physiotherapist {
	p.Name = strings.TrimSpace(p.Name)
	p.Role = strings.TrimSpace(p.Role)
	p.Contact = strings.TrimSpace(p.Contact)
	p.PhotoRef = strings.TrimSpace(p.PhotoRef)
	return p
}
