package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const entityYouthSquad = "youth_squad"

type YouthSquadInput struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	CoachID   int    `json:"coach_id"`
	PlayerIDs []int  `json:"player_ids"`
}

type YouthSquadPatch struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	CoachID   *int    `json:"coach_id"`
	PlayerIDs *[]int  `json:"player_ids"`
}

// YouthSquads groups youth players under a responsible coach.
type YouthSquads struct {
	scope Scope
}

func (r *YouthSquads) Add(in YouthSquadInput) (models.YouthSquad, error) {
	squad := normalizeYouthSquad(models.YouthSquad{
		Name:      in.Name,
		Category:  in.Category,
		CoachID:   in.CoachID,
		PlayerIDs: append([]int{}, in.PlayerIDs...),
	})
	err := r.scope.mutate(entityYouthSquad, "add", func(sd *models.SeasonData) error {
		if err := checkYouthSquad(sd, squad); err != nil {
			return err
		}
		squad.ID = nextID(sd.YouthSquads, youthSquadID)
		sd.YouthSquads = append(sd.YouthSquads, squad)
		return nil
	})
	if err != nil {
		return models.YouthSquad{}, err
	}
	return cloneYouthSquad(squad), nil
}

func (r *YouthSquads) List() ([]models.YouthSquad, error) {
	var out []models.YouthSquad
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = make([]models.YouthSquad, 0, len(sd.YouthSquads))
		for _, y := range sd.YouthSquads {
			out = append(out, cloneYouthSquad(y))
		}
		return nil
	})
	return out, err
}

func (r *YouthSquads) Get(id int) (models.YouthSquad, error) {
	var out models.YouthSquad
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.YouthSquads, id, youthSquadID)
		if !ok {
			return &NotFoundError{Entity: entityYouthSquad, ID: id}
		}
		out = cloneYouthSquad(sd.YouthSquads[i])
		return nil
	})
	return out, err
}

func (r *YouthSquads) Update(id int, patch YouthSquadPatch) (models.YouthSquad, error) {
	return r.change(id, "update", func(y *models.YouthSquad) error {
		if patch.Name != nil {
			y.Name = *patch.Name
		}
		if patch.Category != nil {
			y.Category = *patch.Category
		}
		if patch.CoachID != nil {
			y.CoachID = *patch.CoachID
		}
		if patch.PlayerIDs != nil {
			y.PlayerIDs = append([]int{}, (*patch.PlayerIDs)...)
		}
		return nil
	})
}

// AssignPlayer appends a player to the squad's ordered player list.
func (r *YouthSquads) AssignPlayer(squadID, playerID int) (models.YouthSquad, error) {
	return r.change(squadID, "assign", func(y *models.YouthSquad) error {
		for _, id := range y.PlayerIDs {
			if id == playerID {
				return &ValidationError{Entity: entityYouthSquad, Field: "player_ids", Reason: fmt.Sprintf("already include player %d", playerID)}
			}
		}
		y.PlayerIDs = append(y.PlayerIDs, playerID)
		return nil
	})
}

// UnassignPlayer removes a player from the squad, keeping the order of the
// others.
func (r *YouthSquads) UnassignPlayer(squadID, playerID int) (models.YouthSquad, error) {
	return r.change(squadID, "unassign", func(y *models.YouthSquad) error {
		i, ok := indexOf(y.PlayerIDs, playerID, func(id int) int { return id })
		if !ok {
			return &ValidationError{Entity: entityYouthSquad, Field: "player_ids", Reason: fmt.Sprintf("do not include player %d", playerID)}
		}
		y.PlayerIDs = remove(y.PlayerIDs, i)
		return nil
	})
}

// change applies edit to a copy of the squad and re-validates the result.
func (r *YouthSquads) change(id int, op string, edit func(y *models.YouthSquad) error) (models.YouthSquad, error) {
	var out models.YouthSquad
	err := r.scope.mutate(entityYouthSquad, op, func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.YouthSquads, id, youthSquadID)
		if !ok {
			return &NotFoundError{Entity: entityYouthSquad, ID: id}
		}
		merged := cloneYouthSquad(sd.YouthSquads[i])
		if err := edit(&merged); err != nil {
			return err
		}
		merged = normalizeYouthSquad(merged)
		if err := checkYouthSquad(sd, merged); err != nil {
			return err
		}
		sd.YouthSquads[i] = merged
		out = cloneYouthSquad(merged)
		return nil
	})
	return out, err
}

// Delete removes a squad. Nothing refers to squads, so this never conflicts.
func (r *YouthSquads) Delete(id int) error {
	return r.scope.mutate(entityYouthSquad, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.YouthSquads, id, youthSquadID)
		if !ok {
			return &NotFoundError{Entity: entityYouthSquad, ID: id}
		}
		sd.YouthSquads = remove(sd.YouthSquads, i)
		return nil
	})
}

func normalizeYouthSquad(y models.YouthSquad) models.YouthSquad {
	y.Name = strings.TrimSpace(y.Name)
	y.Category = strings.TrimSpace(y.Category)
	if y.PlayerIDs == nil {
		y.PlayerIDs = []int{}
	}
	return y
}

// checkYouthSquad validates the fields and resolves the coach and every
// player against the season's indexes.
func checkYouthSquad(sd *models.SeasonData, y models.YouthSquad) error {
	if err := youthSquadRules.validate(entityYouthSquad, y); err != nil {
		return err
	}
	if _, ok := index(sd.Coaches, coachID)[y.CoachID]; !ok {
		return &ReferenceError{Entity: entityYouthSquad, Field: "coach_id", ID: y.CoachID}
	}
	players := index(sd.Players, playerID)
	for _, id := range y.PlayerIDs {
		if _, ok := players[id]; !ok {
			return &ReferenceError{Entity: entityYouthSquad, Field: "player_ids", ID: id}
		}
	}
	return nil
}

func cloneYouthSquad(y models.YouthSquad) models.YouthSquad {
	y.PlayerIDs = append([]int{}, y.PlayerIDs...)
	return y
}
