package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const (
	entityMembershipType = "membership_type"

	defaultFrequency = "Mensal"
)

// MembershipTypeInput describes a new membership type. An empty frequency
// means monthly.
type MembershipTypeInput struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description"`
}

type MembershipTypePatch struct {
	Name        *string  `json:"name"`
	Amount      *float64 `json:"amount"`
	Frequency   *string  `json:"frequency"`
	Description *string  `json:"description"`
}

// MembershipTypes is the dues table of one season.
type MembershipTypes struct {
	scope Scope
}

func (r *MembershipTypes) Add(in MembershipTypeInput) (models.MembershipType, error) {
	mt := normalizeMembershipType(models.MembershipType{
		Name:        in.Name,
		Amount:      in.Amount,
		Frequency:   in.Frequency,
		Description: in.Description,
	})
	err := r.scope.mutate(entityMembershipType, "add", func(sd *models.SeasonData) error {
		mt.ID = nextID(sd.MembershipTypes, membershipTypeID)
		if err := checkMembershipType(sd, mt); err != nil {
			return err
		}
		sd.MembershipTypes = append(sd.MembershipTypes, mt)
		return nil
	})
	if err != nil {
		return models.MembershipType{}, err
	}
	return mt, nil
}

func (r *MembershipTypes) List() ([]models.MembershipType, error) {
	var out []models.MembershipType
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = append([]models.MembershipType{}, sd.MembershipTypes...)
		return nil
	})
	return out, err
}

func (r *MembershipTypes) Get(id int) (models.MembershipType, error) {
	var out models.MembershipType
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MembershipTypes, id, membershipTypeID)
		if !ok {
			return &NotFoundError{Entity: entityMembershipType, ID: id}
		}
		out = sd.MembershipTypes[i]
		return nil
	})
	return out, err
}

// Update edits a membership type. A new name is carried over to the
// members of that type.
func (r *MembershipTypes) Update(id int, patch MembershipTypePatch) (models.MembershipType, error) {
	var out models.MembershipType
	err := r.scope.mutate(entityMembershipType, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MembershipTypes, id, membershipTypeID)
		if !ok {
			return &NotFoundError{Entity: entityMembershipType, ID: id}
		}
		merged := sd.MembershipTypes[i]
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.Amount != nil {
			merged.Amount = *patch.Amount
		}
		if patch.Frequency != nil {
			merged.Frequency = *patch.Frequency
		}
		if patch.Description != nil {
			merged.Description = *patch.Description
		}
		merged = normalizeMembershipType(merged)
		if err := checkMembershipType(sd, merged); err != nil {
			return err
		}
		sd.MembershipTypes[i] = merged
		for j := range sd.Members {
			if m := &sd.Members[j]; m.MembershipTypeID != nil && *m.MembershipTypeID == id {
				m.MembershipType = merged.Name
			}
		}
		out = merged
		return nil
	})
	return out, err
}

// Delete removes a membership type no member belongs to.
func (r *MembershipTypes) Delete(id int) error {
	return r.scope.mutate(entityMembershipType, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MembershipTypes, id, membershipTypeID)
		if !ok {
			return &NotFoundError{Entity: entityMembershipType, ID: id}
		}
		var deps []string
		for _, m := range sd.Members {
			if m.MembershipTypeID != nil && *m.MembershipTypeID == id {
				deps = append(deps, dependent(entityMember, m.ID))
			}
		}
		if len(deps) > 0 {
			return &ConflictError{Entity: entityMembershipType, Key: fmt.Sprint(id), Dependents: deps}
		}
		sd.MembershipTypes = remove(sd.MembershipTypes, i)
		return nil
	})
}

func normalizeMembershipType(mt models.MembershipType) models.MembershipType {
	mt.Name = strings.TrimSpace(mt.Name)
	mt.Frequency = strings.TrimSpace(mt.Frequency)
	if mt.Frequency == "" {
		mt.Frequency = defaultFrequency
	}
	mt.Description = strings.TrimSpace(mt.Description)
	return mt
}

// checkMembershipType validates the fields; names are unique ignoring case.
func checkMembershipType(sd *models.SeasonData, mt models.MembershipType) error {
	if err := membershipTypeRules.validate(entityMembershipType, mt); err != nil {
		return err
	}
	for _, other := range sd.MembershipTypes {
		if other.ID != mt.ID && strings.EqualFold(other.Name, mt.Name) {
			return &ValidationError{
				Entity: entityMembershipType,
				Field:  "name",
				Reason: fmt.Sprintf("%q is already used by membership type %d", mt.Name, other.ID),
			}
		}
	}
	return nil
}
