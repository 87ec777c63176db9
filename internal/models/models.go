// Package models holds the club entities and the persisted document that
// groups them by season.
package models

// Squad is the team grouping a player belongs to.
type Squad string

const (
	SquadSenior Squad = "senior"
	SquadYouth  Squad = "youth"
)

// DuesStatus is a member's payment state for the current dues period.
type DuesStatus string

const (
	DuesPaid    DuesStatus = "paid"
	DuesPending DuesStatus = "pending"
)

// RecordType tells revenues from expenses.
type RecordType string

const (
	Revenue RecordType = "revenue"
	Expense RecordType = "expense"
)

// Season is a time-boxed partition of the club data.
type Season struct {
	Label     string `json:"label"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Notes     string `json:"notes,omitempty"`
	// IsActive is derived from Document.ActiveSeason when seasons are read.
	IsActive bool `json:"is_active"`
}

type Player struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Position        string    `json:"position"`
	Squad           Squad     `json:"squad"`
	Birthdate       Date      `json:"birthdate"`
	ShirtNumber     *int      `json:"shirt_number"`
	PhotoRef        string    `json:"photo_ref,omitempty"`
	MembershipSince Date      `json:"membership_since"`
	Contact         string    `json:"contact,omitempty"`
	FederationID    string    `json:"federation_id,omitempty"`
	MonthlyFee      *YouthFee `json:"youth_monthly_fee,omitempty"`
	KitFee          *YouthFee `json:"youth_kit_fee,omitempty"`
}

// YouthFee is a fee charged to a youth player. Once paid it is booked as a
// revenue record, which RevenueID points to.
type YouthFee struct {
	Amount    float64 `json:"amount"`
	Paid      bool    `json:"paid"`
	RevenueID int     `json:"revenue_id,omitempty"`
}

type Coach struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	LicenseLevel string `json:"license_level,omitempty"`
	Birthdate    Date   `json:"birthdate"`
	Contact      string `json:"contact,omitempty"`
	PhotoRef     string `json:"photo_ref,omitempty"`
}

type Physiotherapist struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Birthdate Date   `json:"birthdate"`
	Contact   string `json:"contact,omitempty"`
	PhotoRef  string `json:"photo_ref,omitempty"`
}

type YouthSquad struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	CoachID   int    `json:"coach_id"`
	PlayerIDs []int  `json:"player_ids"`
}

// MembershipType is a category of membership with its dues.
type MembershipType struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description,omitempty"`
}

// Member is a club associate. When MembershipTypeID is set, MembershipType
// carries that type's name.
type Member struct {
	ID               int        `json:"id"`
	MemberNumber     int        `json:"member_number"`
	Name             string     `json:"name"`
	MembershipTypeID *int       `json:"membership_type_id,omitempty"`
	MembershipType   string     `json:"membership_type,omitempty"`
	DuesStatus       DuesStatus `json:"dues_status"`
	DuesPeriod       string     `json:"dues_period,omitempty"`
	JoinDate         Date       `json:"join_date"`
	Contact          string     `json:"contact,omitempty"`
}

type MembershipPayment struct {
	ID              int     `json:"id"`
	MemberID        int     `json:"member_id"`
	Amount          float64 `json:"amount"`
	Period          string  `json:"period"`
	PaidOn          Date    `json:"paid_on"`
	FinanceRecordID int     `json:"finance_record_id"`
	Notes           string  `json:"notes,omitempty"`
}

// Treatment is a clinical record. Availability is never stored; it is
// computed from ExpectedReturn whenever the treatment is read.
type Treatment struct {
	ID             int    `json:"id"`
	PlayerID       int    `json:"player_id"`
	PhysioID       *int   `json:"physio_id"`
	Diagnosis      string `json:"diagnosis"`
	Plan           string `json:"treatment_plan"`
	StartDate      Date   `json:"start_date"`
	ExpectedReturn Date   `json:"expected_return"`
	Notes          string `json:"notes,omitempty"`
	Available      bool   `json:"-"`
}

// MatchPlan is the line-up for one fixture.
type MatchPlan struct {
	ID          int    `json:"id"`
	Squad       Squad  `json:"squad"`
	MatchDate   Date   `json:"match_date"`
	KickoffTime string `json:"kickoff_time"`
	Venue       string `json:"venue"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Starters    []int  `json:"starters"`
	Substitutes []int  `json:"substitutes"`
}

type FinanceRecord struct {
	ID           int        `json:"id"`
	Type         RecordType `json:"type"`
	Description  string     `json:"description"`
	Amount       float64    `json:"amount"`
	Category     string     `json:"category"`
	Date         Date       `json:"date"`
	Counterparty string     `json:"counterparty,omitempty"`
}
