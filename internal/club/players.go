package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const (
	entityPlayer = "player"

	// YouthFeeCategory is the finance category paid youth fees are booked in.
	YouthFeeCategory   = "Camadas Jovens"
	youthMonthlySource = "Mensalidade Formação"
	youthKitSource     = "Kit de Treino Formação"
)

// PlayerInput describes a new player. An empty squad means senior. The
// monthly and kit fees only apply to the youth squad.
type PlayerInput struct {
	Name            string       `json:"name"`
	Position        string       `json:"position"`
	Squad           models.Squad `json:"squad"`
	Birthdate       models.Date  `json:"birthdate"`
	ShirtNumber     *int         `json:"shirt_number"`
	PhotoRef        string       `json:"photo_ref"`
	MembershipSince models.Date  `json:"membership_since"`
	Contact         string       `json:"contact"`
	FederationID    string       `json:"federation_id"`
	MonthlyFee      *float64     `json:"youth_monthly_fee"`
	MonthlyFeePaid  bool         `json:"youth_monthly_paid"`
	KitFee          *float64     `json:"youth_kit_fee"`
	KitFeePaid      bool         `json:"youth_kit_paid"`
}

// PlayerPatch lists the fields to change; nil fields keep their value.
type PlayerPatch struct {
	Name             *string       `json:"name"`
	Position         *string       `json:"position"`
	Squad            *models.Squad `json:"squad"`
	Birthdate        *models.Date  `json:"birthdate"`
	ShirtNumber      *int          `json:"shirt_number"`
	ClearShirtNumber bool          `json:"clear_shirt_number"`
	PhotoRef         *string       `json:"photo_ref"`
	MembershipSince  *models.Date  `json:"membership_since"`
	Contact          *string       `json:"contact"`
	FederationID     *string       `json:"federation_id"`
	MonthlyFee       *float64      `json:"youth_monthly_fee"`
	MonthlyFeePaid   *bool         `json:"youth_monthly_paid"`
	KitFee           *float64      `json:"youth_kit_fee"`
	KitFeePaid       *bool         `json:"youth_kit_paid"`
}

// PlayerFilter narrows List. Zero fields match everything.
type PlayerFilter struct {
	Squad    models.Squad
	Position string
}

func (f PlayerFilter) match(p models.Player) bool {
	if f.Squad != "" && p.Squad != f.Squad {
		return false
	}
	if f.Position != "" && !strings.EqualFold(p.Position, f.Position) {
		return false
	}
	return true
}

// Players is the roster of one season.
type Players struct {
	scope Scope
}

// Add registers a player. Paid youth fees are booked as revenue.
func (r *Players) Add(in PlayerInput) (models.Player, error) {
	today := r.scope.club.Today()
	player := normalizePlayer(models.Player{
		Name:            in.Name,
		Position:        in.Position,
		Squad:           in.Squad,
		Birthdate:       in.Birthdate,
		ShirtNumber:     copyInt(in.ShirtNumber),
		PhotoRef:        in.PhotoRef,
		MembershipSince: in.MembershipSince,
		Contact:         in.Contact,
		FederationID:    in.FederationID,
		MonthlyFee:      newFee(in.MonthlyFee, in.MonthlyFeePaid),
		KitFee:          newFee(in.KitFee, in.KitFeePaid),
	})
	err := r.scope.mutate(entityPlayer, "add", func(sd *models.SeasonData) error {
		player.ID = nextID(sd.Players, playerID)
		if err := checkPlayer(sd, player); err != nil {
			return err
		}
		bookYouthFees(sd, today, models.Player{}, &player)
		sd.Players = append(sd.Players, player)
		return nil
	})
	if err != nil {
		return models.Player{}, err
	}
	return clonePlayer(player), nil
}

func (r *Players) List(f PlayerFilter) ([]models.Player, error) {
	var out []models.Player
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = make([]models.Player, 0, len(sd.Players))
		for _, p := range sd.Players {
			if f.match(p) {
				out = append(out, clonePlayer(p))
			}
		}
		return nil
	})
	return out, err
}

func (r *Players) Get(id int) (models.Player, error) {
	var out models.Player
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Players, id, playerID)
		if !ok {
			return &NotFoundError{Entity: entityPlayer, ID: id}
		}
		out = clonePlayer(sd.Players[i])
		return nil
	})
	return out, err
}

// Update edits a player and keeps the booked youth fee revenue in step:
// a fee that is no longer paid, or a player leaving the youth squad,
// removes its revenue record.
func (r *Players) Update(id int, patch PlayerPatch) (models.Player, error) {
	today := r.scope.club.Today()
	var out models.Player
	err := r.scope.mutate(entityPlayer, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Players, id, playerID)
		if !ok {
			return &NotFoundError{Entity: entityPlayer, ID: id}
		}
		prev := sd.Players[i]
		merged := clonePlayer(prev)
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.Position != nil {
			merged.Position = *patch.Position
		}
		if patch.Squad != nil {
			merged.Squad = *patch.Squad
		}
		if patch.Birthdate != nil {
			merged.Birthdate = *patch.Birthdate
		}
		if patch.ClearShirtNumber {
			merged.ShirtNumber = nil
		}
		if patch.ShirtNumber != nil {
			merged.ShirtNumber = copyInt(patch.ShirtNumber)
		}
		if patch.PhotoRef != nil {
			merged.PhotoRef = *patch.PhotoRef
		}
		if patch.MembershipSince != nil {
			merged.MembershipSince = *patch.MembershipSince
		}
		if patch.Contact != nil {
			merged.Contact = *patch.Contact
		}
		if patch.FederationID != nil {
			merged.FederationID = *patch.FederationID
		}
		merged.MonthlyFee = patchFee(merged.MonthlyFee, patch.MonthlyFee, patch.MonthlyFeePaid)
		merged.KitFee = patchFee(merged.KitFee, patch.KitFee, patch.KitFeePaid)
		merged = normalizePlayer(merged)
		if err := checkPlayer(sd, merged); err != nil {
			return err
		}
		bookYouthFees(sd, today, prev, &merged)
		sd.Players[i] = merged
		out = clonePlayer(merged)
		return nil
	})
	return out, err
}

// Delete removes a player that no youth squad, treatment or match plan
// refers to, together with the player's youth fee revenue.
func (r *Players) Delete(id int) error {
	return r.scope.mutate(entityPlayer, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Players, id, playerID)
		if !ok {
			return &NotFoundError{Entity: entityPlayer, ID: id}
		}
		var deps []string
		for _, y := range sd.YouthSquads {
			for _, pid := range y.PlayerIDs {
				if pid == id {
					deps = append(deps, dependent(entityYouthSquad, y.ID))
				}
			}
		}
		for _, t := range sd.Treatments {
			if t.PlayerID == id {
				deps = append(deps, dependent(entityTreatment, t.ID))
			}
		}
		for _, mp := range sd.MatchPlans {
			if containsID(mp.Starters, id) || containsID(mp.Substitutes, id) {
				deps = append(deps, dependent(entityMatchPlan, mp.ID))
			}
		}
		if len(deps) > 0 {
			return &ConflictError{Entity: entityPlayer, Key: fmt.Sprint(id), Dependents: deps}
		}
		bookYouthFees(sd, models.Date{}, sd.Players[i], &models.Player{})
		sd.Players = remove(sd.Players, i)
		return nil
	})
}

func normalizePlayer(p models.Player) models.Player {
	p.Name = strings.TrimSpace(p.Name)
	p.Position = strings.TrimSpace(p.Position)
	p.Squad = models.Squad(strings.ToLower(strings.TrimSpace(string(p.Squad))))
	if p.Squad == "" {
		p.Squad = models.SquadSenior
	}
	p.PhotoRef = strings.TrimSpace(p.PhotoRef)
	p.Contact = strings.TrimSpace(p.Contact)
	p.FederationID = strings.TrimSpace(p.FederationID)
	if p.Squad != models.SquadYouth {
		p.MonthlyFee, p.KitFee = nil, nil
	}
	p.MonthlyFee = dropEmptyFee(p.MonthlyFee)
	p.KitFee = dropEmptyFee(p.KitFee)
	return p
}

// checkPlayer validates the fields and the shirt number, which is unique
// within the player's squad for the season.
func checkPlayer(sd *models.SeasonData, p models.Player) error {
	if err := playerRules.validate(entityPlayer, p); err != nil {
		return err
	}
	if p.ShirtNumber == nil {
		return nil
	}
	for _, other := range sd.Players {
		if other.ID != p.ID && other.Squad == p.Squad && other.ShirtNumber != nil && *other.ShirtNumber == *p.ShirtNumber {
			return &ValidationError{
				Entity: entityPlayer,
				Field:  "shirt_number",
				Reason: fmt.Sprintf("%d is already worn by player %d in the %s squad", *p.ShirtNumber, other.ID, p.Squad),
			}
		}
	}
	return nil
}

func clonePlayer(p models.Player) models.Player {
	p.ShirtNumber = copyInt(p.ShirtNumber)
	p.MonthlyFee = cloneFee(p.MonthlyFee)
	p.KitFee = cloneFee(p.KitFee)
	return p
}

func newFee(amount *float64, paid bool) *models.YouthFee {
	if amount == nil && !paid {
		return nil
	}
	fee := &models.YouthFee{Paid: paid}
	if amount != nil {
		fee.Amount = *amount
	}
	return fee
}

func patchFee(fee *models.YouthFee, amount *float64, paid *bool) *models.YouthFee {
	if amount == nil && paid == nil {
		return fee
	}
	var out models.YouthFee
	if fee != nil {
		out = *fee
	}
	if amount != nil {
		out.Amount = *amount
	}
	if paid != nil {
		out.Paid = *paid
	}
	return &out
}

func dropEmptyFee(fee *models.YouthFee) *models.YouthFee {
	if fee != nil && fee.Amount == 0 && !fee.Paid {
		return nil
	}
	return fee
}

func cloneFee(fee *models.YouthFee) *models.YouthFee {
	if fee == nil {
		return nil
	}
	out := *fee
	return &out
}

// bookYouthFees brings the revenue records of p's fees in line with the
// fees: a paid fee has exactly one record, anything else has none. prev
// holds the records booked so far.
func bookYouthFees(sd *models.SeasonData, today models.Date, prev models.Player, p *models.Player) {
	p.MonthlyFee = bookFee(sd, today, p.Name, youthMonthlySource, p.MonthlyFee, feeRevenue(prev.MonthlyFee))
	p.KitFee = bookFee(sd, today, p.Name, youthKitSource, p.KitFee, feeRevenue(prev.KitFee))
}

func feeRevenue(fee *models.YouthFee) int {
	if fee == nil {
		return 0
	}
	return fee.RevenueID
}

func bookFee(sd *models.SeasonData, today models.Date, name, label string, fee *models.YouthFee, revenueID int) *models.YouthFee {
	j, booked := indexOf(sd.Finance, revenueID, financeID)
	booked = booked && revenueID != 0
	if fee == nil || !fee.Paid {
		if booked {
			sd.Finance = remove(sd.Finance, j)
		}
		if fee != nil {
			fee.RevenueID = 0
		}
		return fee
	}

	record := models.FinanceRecord{
		Type:         models.Revenue,
		Description:  fmt.Sprintf("%s - %s", label, name),
		Amount:       fee.Amount,
		Category:     YouthFeeCategory,
		Date:         today,
		Counterparty: label,
	}
	switch {
	case !booked:
		record.ID = nextID(sd.Finance, financeID)
		sd.Finance = append(sd.Finance, record)
	case sd.Finance[j].Amount != record.Amount || sd.Finance[j].Description != record.Description:
		record.ID = revenueID
		sd.Finance[j] = record
	default:
		record.ID = revenueID
	}
	fee.RevenueID = record.ID
	return fee
}
