package club

import (
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const (
	entityMember  = "member"
	entityPayment = "membership_payment"

	// DuesCategory is the finance category membership payments are booked in.
	DuesCategory = "Quotas de Sócios"
	duesSource   = "Sócios"
)

// MemberInput describes a new member. A zero member number is assigned
// automatically, an empty dues status means pending and a zero join date
// means today. MembershipTypeID, when set, takes precedence over the
// free-text MembershipType.
type MemberInput struct {
	MemberNumber     int               `json:"member_number"`
	Name             string            `json:"name"`
	MembershipTypeID *int              `json:"membership_type_id"`
	MembershipType   string            `json:"membership_type"`
	DuesStatus       models.DuesStatus `json:"dues_status"`
	DuesPeriod       string            `json:"dues_period"`
	JoinDate         models.Date       `json:"join_date"`
	Contact          string            `json:"contact"`
}

type MemberPatch struct {
	MemberNumber        *int               `json:"member_number"`
	Name                *string            `json:"name"`
	MembershipTypeID    *int               `json:"membership_type_id"`
	ClearMembershipType bool               `json:"clear_membership_type"`
	MembershipType      *string            `json:"membership_type"`
	DuesStatus          *models.DuesStatus `json:"dues_status"`
	DuesPeriod          *string            `json:"dues_period"`
	JoinDate            *models.Date       `json:"join_date"`
	Contact             *string            `json:"contact"`
}

type MemberFilter struct {
	DuesStatus models.DuesStatus
}

// PaymentInput registers one dues payment. A zero amount means the amount
// of the member's membership type.
type PaymentInput struct {
	MemberID int         `json:"member_id"`
	Amount   float64     `json:"amount"`
	Period   string      `json:"period"`
	PaidOn   models.Date `json:"paid_on"`
	Notes    string      `json:"notes"`
}

// Members is the membership register of one season.
type Members struct {
	scope Scope
}

func (r *Members) Add(in MemberInput) (models.Member, error) {
	member := normalizeMember(models.Member{
		MemberNumber:     in.MemberNumber,
		Name:             in.Name,
		MembershipTypeID: copyInt(in.MembershipTypeID),
		MembershipType:   in.MembershipType,
		DuesStatus:       in.DuesStatus,
		DuesPeriod:       in.DuesPeriod,
		JoinDate:         in.JoinDate,
		Contact:          in.Contact,
	})
	if member.JoinDate.IsZero() {
		member.JoinDate = r.scope.club.Today()
	}
	err := r.scope.mutate(entityMember, "add", func(sd *models.SeasonData) error {
		member.ID = nextID(sd.Members, memberID)
		if member.MemberNumber == 0 {
			member.MemberNumber = nextID(sd.Members, func(m models.Member) int { return m.MemberNumber })
		}
		if err := checkMember(sd, &member); err != nil {
			return err
		}
		sd.Members = append(sd.Members, member)
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}
	return cloneMember(member), nil
}

func (r *Members) List(f MemberFilter) ([]models.Member, error) {
	var out []models.Member
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = make([]models.Member, 0, len(sd.Members))
		for _, m := range sd.Members {
			if f.DuesStatus == "" || m.DuesStatus == f.DuesStatus {
				out = append(out, cloneMember(m))
			}
		}
		return nil
	})
	return out, err
}

func (r *Members) Get(id int) (models.Member, error) {
	var out models.Member
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Members, id, memberID)
		if !ok {
			return &NotFoundError{Entity: entityMember, ID: id}
		}
		out = cloneMember(sd.Members[i])
		return nil
	})
	return out, err
}

func (r *Members) Update(id int, patch MemberPatch) (models.Member, error) {
	var out models.Member
	err := r.scope.mutate(entityMember, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Members, id, memberID)
		if !ok {
			return &NotFoundError{Entity: entityMember, ID: id}
		}
		merged := sd.Members[i]
		if patch.MemberNumber != nil {
			merged.MemberNumber = *patch.MemberNumber
		}
		if patch.Name != nil {
			merged.Name = *patch.Name
		}
		if patch.ClearMembershipType {
			merged.MembershipTypeID = nil
			merged.MembershipType = ""
		}
		if patch.MembershipTypeID != nil {
			merged.MembershipTypeID = copyInt(patch.MembershipTypeID)
		}
		if patch.MembershipType != nil {
			merged.MembershipType = *patch.MembershipType
		}
		if patch.DuesStatus != nil {
			merged.DuesStatus = *patch.DuesStatus
		}
		if patch.DuesPeriod != nil {
			merged.DuesPeriod = *patch.DuesPeriod
		}
		if patch.JoinDate != nil {
			merged.JoinDate = *patch.JoinDate
		}
		if patch.Contact != nil {
			merged.Contact = *patch.Contact
		}
		merged = normalizeMember(merged)
		if merged.MemberNumber == 0 {
			merged.MemberNumber = sd.Members[i].MemberNumber
		}
		if err := checkMember(sd, &merged); err != nil {
			return err
		}
		sd.Members[i] = merged
		out = cloneMember(merged)
		return nil
	})
	return out, err
}

// Delete removes a member with no registered payments.
func (r *Members) Delete(id int) error {
	return r.scope.mutate(entityMember, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Members, id, memberID)
		if !ok {
			return &NotFoundError{Entity: entityMember, ID: id}
		}
		var deps []string
		for _, p := range sd.MembershipPayments {
			if p.MemberID == id {
				deps = append(deps, dependent(entityPayment, p.ID))
			}
		}
		if len(deps) > 0 {
			return &ConflictError{Entity: entityMember, Key: fmt.Sprint(id), Dependents: deps}
		}
		sd.Members = remove(sd.Members, i)
		return nil
	})
}

// RegisterPayment records a dues payment, books it as revenue and marks the
// member paid for the payment's period.
func (r *Members) RegisterPayment(in PaymentInput) (models.MembershipPayment, error) {
	payment := models.MembershipPayment{
		MemberID: in.MemberID,
		Amount:   in.Amount,
		Period:   strings.TrimSpace(in.Period),
		PaidOn:   in.PaidOn,
		Notes:    strings.TrimSpace(in.Notes),
	}
	if payment.PaidOn.IsZero() {
		payment.PaidOn = r.scope.club.Today()
	}
	err := r.scope.mutate(entityPayment, "add", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.Members, payment.MemberID, memberID)
		if ok && payment.Amount == 0 {
			payment.Amount = membershipDues(sd, sd.Members[i])
		}
		if err := paymentRules.validate(entityPayment, payment); err != nil {
			return err
		}
		if !ok {
			return &ReferenceError{Entity: entityPayment, Field: "member_id", ID: payment.MemberID}
		}
		member := &sd.Members[i]

		record := models.FinanceRecord{
			ID:           nextID(sd.Finance, financeID),
			Type:         models.Revenue,
			Description:  paymentDescription(*member),
			Amount:       payment.Amount,
			Category:     DuesCategory,
			Date:         payment.PaidOn,
			Counterparty: duesSource,
		}
		if err := financeRules.validate(entityFinance, record); err != nil {
			return err
		}
		sd.Finance = append(sd.Finance, record)

		payment.ID = nextID(sd.MembershipPayments, paymentID)
		payment.FinanceRecordID = record.ID
		sd.MembershipPayments = append(sd.MembershipPayments, payment)

		member.DuesStatus = models.DuesPaid
		member.DuesPeriod = payment.Period
		if member.JoinDate.IsZero() {
			member.JoinDate = payment.PaidOn
		}
		return nil
	})
	if err != nil {
		return models.MembershipPayment{}, err
	}
	return payment, nil
}

// ListPayments returns the payments of one member, or of every member when
// memberID is zero.
func (r *Members) ListPayments(memberID int) ([]models.MembershipPayment, error) {
	var out []models.MembershipPayment
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = filter(sd.MembershipPayments, func(p models.MembershipPayment) bool {
			return memberID == 0 || p.MemberID == memberID
		})
		return nil
	})
	return out, err
}

// RemovePayment deletes a payment together with the revenue it booked. The
// member's dues follow the latest remaining payment; with none left the
// member is pending.
func (r *Members) RemovePayment(id int) error {
	return r.scope.mutate(entityPayment, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MembershipPayments, id, paymentID)
		if !ok {
			return &NotFoundError{Entity: entityPayment, ID: id}
		}
		payment := sd.MembershipPayments[i]
		sd.MembershipPayments = remove(sd.MembershipPayments, i)
		if j, ok := indexOf(sd.Finance, payment.FinanceRecordID, financeID); ok {
			sd.Finance = remove(sd.Finance, j)
		}

		j, ok := indexOf(sd.Members, payment.MemberID, memberID)
		if !ok {
			return nil
		}
		member := &sd.Members[j]
		var latest *models.MembershipPayment
		for k := range sd.MembershipPayments {
			p := &sd.MembershipPayments[k]
			if p.MemberID != member.ID {
				continue
			}
			if latest == nil || !p.PaidOn.Before(latest.PaidOn) {
				latest = p
			}
		}
		if latest == nil {
			member.DuesStatus = models.DuesPending
			member.DuesPeriod = ""
			return nil
		}
		member.DuesStatus = models.DuesPaid
		member.DuesPeriod = latest.Period
		return nil
	})
}

// membershipDues is the amount of the member's membership type, zero when
// the member has none.
func membershipDues(sd *models.SeasonData, m models.Member) float64 {
	if m.MembershipTypeID == nil {
		return 0
	}
	if i, ok := indexOf(sd.MembershipTypes, *m.MembershipTypeID, membershipTypeID); ok {
		return sd.MembershipTypes[i].Amount
	}
	return 0
}

func paymentDescription(m models.Member) string {
	desc := "Quota"
	if m.MembershipType != "" {
		desc += " " + m.MembershipType
	}
	return fmt.Sprintf("%s - %s (#%d)", desc, m.Name, m.MemberNumber)
}

func normalizeMember(m models.Member) models.Member {
	m.Name = strings.TrimSpace(m.Name)
	m.MembershipType = strings.TrimSpace(m.MembershipType)
	m.DuesStatus = models.DuesStatus(strings.ToLower(strings.TrimSpace(string(m.DuesStatus))))
	if m.DuesStatus == "" {
		m.DuesStatus = models.DuesPending
	}
	m.DuesPeriod = strings.TrimSpace(m.DuesPeriod)
	m.Contact = strings.TrimSpace(m.Contact)
	return m
}

// checkMember validates the fields, keeps member numbers unique and
// resolves the membership type, copying its name onto the member.
func checkMember(sd *models.SeasonData, m *models.Member) error {
	if err := memberRules.validate(entityMember, *m); err != nil {
		return err
	}
	if m.MembershipTypeID != nil {
		i, ok := indexOf(sd.MembershipTypes, *m.MembershipTypeID, membershipTypeID)
		if !ok {
			return &ReferenceError{Entity: entityMember, Field: "membership_type_id", ID: *m.MembershipTypeID}
		}
		m.MembershipType = sd.MembershipTypes[i].Name
	}
	for _, other := range sd.Members {
		if other.ID != m.ID && other.MemberNumber == m.MemberNumber {
			return &ValidationError{
				Entity: entityMember,
				Field:  "member_number",
				Reason: fmt.Sprintf("%d is already taken by member %d", m.MemberNumber, other.ID),
			}
		}
	}
	return nil
}

func cloneMember(m models.Member) models.Member {
	m.MembershipTypeID = copyInt(m.MembershipTypeID)
	return m
}
