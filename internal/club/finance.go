package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const entityFinance = "finance_record"

type FinanceInput struct {
	Type         models.RecordType `json:"type"`
	Description  string            `json:"description"`
	Amount       float64           `json:"amount"`
	Category     string            `json:"category"`
	Date         models.Date       `json:"date"`
	Counterparty string            `json:"counterparty"`
}

type FinancePatch struct {
	Type         *models.RecordType `json:"type"`
	Description  *string            `json:"description"`
	Amount       *float64           `json:"amount"`
	Category     *string            `json:"category"`
	Date         *models.Date       `json:"date"`
	Counterparty *string            `json:"counterparty"`
}

// FinanceFilter narrows List. From and To are inclusive; zero dates leave
// the range open.
type FinanceFilter struct {
	Type     models.RecordType
	Category string
	From     models.Date
	To       models.Date
}

func (f FinanceFilter) match(r models.FinanceRecord) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Category != "" && !strings.EqualFold(r.Category, f.Category) {
		return false
	}
	if !f.From.IsZero() && r.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.Date.After(f.To) {
		return false
	}
	return true
}

// Finance is the ledger of one season.
type Finance struct {
	scope Scope
}

func (r *Finance) Add(in FinanceInput) (models.FinanceRecord, error) {
	record := normalizeFinance(models.FinanceRecord{
		Type:         in.Type,
		Description:  in.Description,
		Amount:       in.Amount,
		Category:     in.Category,
		Date:         in.Date,
		Counterparty: in.Counterparty,
	})
	err := r.scope.mutate(entityFinance, "add", func(sd *models.SeasonData) error {
		if err := financeRules.validate(entityFinance, record); err != nil {
			return err
		}
		record.ID = nextID(sd.Finance, financeID)
		sd.Finance = append(sd.Finance, record)
		return nil
	})
	if err != nil {
		return models.FinanceRecord{}, err
	}
	return record, nil
}

func (r *Finance) List(f FinanceFilter) ([]models.FinanceRecord, error) {
	var out []models.FinanceRecord
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = filter(sd.Finance, f.match)
		return nil
	})
	return out, err
}

func (r *Finance) Get(id int) (models.FinanceRecord, error) {
	var out models.FinanceRecord
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Finance, id, financeID)
		if !ok {
			return &NotFoundError{Entity: entityFinance, ID: id}
		}
		out = sd.Finance[i]
		return nil
	})
	return out, err
}

// Update edits a record. Records booked by a membership payment or a youth
// fee can only change through the payment or the player.
func (r *Finance) Update(id int, patch FinancePatch) (models.FinanceRecord, error) {
	var out models.FinanceRecord
	err := r.scope.mutate(entityFinance, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Finance, id, financeID)
		if !ok {
			return &NotFoundError{Entity: entityFinance, ID: id}
		}
		if deps := bookedBy(sd, id); len(deps) > 0 {
			return &ConflictError{Entity: entityFinance, Key: fmt.Sprint(id), Dependents: deps}
		}
		merged := sd.Finance[i]
		if patch.Type != nil {
			merged.Type = *patch.Type
		}
		if patch.Description != nil {
			merged.Description = *patch.Description
		}
		if patch.Amount != nil {
			merged.Amount = *patch.Amount
		}
		if patch.Category != nil {
			merged.Category = *patch.Category
		}
		if patch.Date != nil {
			merged.Date = *patch.Date
		}
		if patch.Counterparty != nil {
			merged.Counterparty = *patch.Counterparty
		}
		merged = normalizeFinance(merged)
		if err := financeRules.validate(entityFinance, merged); err != nil {
			return err
		}
		sd.Finance[i] = merged
		out = merged
		return nil
	})
	return out, err
}

// Delete removes a record that no membership payment or youth fee booked.
func (r *Finance) Delete(id int) error {
	return r.scope.mutate(entityFinance, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Finance, id, financeID)
		if !ok {
			return &NotFoundError{Entity: entityFinance, ID: id}
		}
		if deps := bookedBy(sd, id); len(deps) > 0 {
			return &ConflictError{Entity: entityFinance, Key: fmt.Sprint(id), Dependents: deps}
		}
		sd.Finance = remove(sd.Finance, i)
		return nil
	})
}

// bookedBy lists the payments and youth fees whose revenue is recordID.
func bookedBy(sd *models.SeasonData, recordID int) []string {
	var deps []string
	for _, p := range sd.MembershipPayments {
		if p.FinanceRecordID == recordID {
			deps = append(deps, dependent(entityPayment, p.ID))
		}
	}
	for _, p := range sd.Players {
		if feeRevenue(p.MonthlyFee) == recordID || feeRevenue(p.KitFee) == recordID {
			deps = append(deps, dependent(entityPlayer, p.ID))
		}
	}
	return deps
}

func normalizeFinance(f models.FinanceRecord) models.FinanceRecord {
	f.Type = models.RecordType(strings.ToLower(strings.TrimSpace(string(f.Type))))
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Counterparty = strings.TrimSpace(f.Counterparty)
	return f
}
