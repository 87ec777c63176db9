package models

import (
	"bytes"
	"encoding/json"
)

// Document is the whole persisted club state.
type Document struct {
	ActiveSeason string                 `json:"active_season"`
	Seasons      []Season               `json:"seasons"`
	Data         map[string]*SeasonData `json:"data"`
	// Users and Branding belong to the authentication and identity layers.
	// They are carried through untouched.
	Users    json.RawMessage `json:"users,omitempty"`
	Branding json.RawMessage `json:"branding,omitempty"`
}

// SeasonData holds every season-scoped collection.
type SeasonData struct {
	Players            []Player            `json:"players"`
	Coaches            []Coach             `json:"coaches"`
	Physiotherapists   []Physiotherapist   `json:"physiotherapists"`
	YouthSquads        []YouthSquad        `json:"youth_squads"`
	MembershipTypes    []MembershipType    `json:"membership_types"`
	Members            []Member            `json:"members"`
	MembershipPayments []MembershipPayment `json:"membership_payments"`
	Treatments         []Treatment         `json:"treatments"`
	MatchPlans         []MatchPlan         `json:"match_plans"`
	Finance            []FinanceRecord     `json:"finance"`
}

// NewDocument returns an empty document with no seasons.
func NewDocument() *Document {
	return &Document{
		Seasons: []Season{},
		Data:    map[string]*SeasonData{},
	}
}

// NewSeasonData returns a SeasonData with all collections non-nil so the
// stored JSON always carries empty arrays rather than nulls.
func NewSeasonData() *SeasonData {
	sd := &SeasonData{}
	sd.Normalize()
	return sd
}

// Normalize replaces nil collections with empty ones.
func (sd *SeasonData) Normalize() {
	if sd.Players == nil {
		sd.Players = []Player{}
	}
	if sd.Coaches == nil {
		sd.Coaches = []Coach{}
	}
	if sd.Physiotherapists == nil {
		sd.Physiotherapists = []Physiotherapist{}
	}
	if sd.YouthSquads == nil {
		sd.YouthSquads = []YouthSquad{}
	}
	for i := range sd.YouthSquads {
		if sd.YouthSquads[i].PlayerIDs == nil {
			sd.YouthSquads[i].PlayerIDs = []int{}
		}
	}
	if sd.MembershipTypes == nil {
		sd.MembershipTypes = []MembershipType{}
	}
	if sd.Members == nil {
		sd.Members = []Member{}
	}
	if sd.MembershipPayments == nil {
		sd.MembershipPayments = []MembershipPayment{}
	}
	if sd.Treatments == nil {
		sd.Treatments = []Treatment{}
	}
	if sd.MatchPlans == nil {
		sd.MatchPlans = []MatchPlan{}
	}
	for i := range sd.MatchPlans {
		if sd.MatchPlans[i].Starters == nil {
			sd.MatchPlans[i].Starters = []int{}
		}
		if sd.MatchPlans[i].Substitutes == nil {
			sd.MatchPlans[i].Substitutes = []int{}
		}
	}
	if sd.Finance == nil {
		sd.Finance = []FinanceRecord{}
	}
}

// Empty reports whether no entity is stored in the season.
func (sd *SeasonData) Empty() bool {
	return len(sd.Players) == 0 && len(sd.Coaches) == 0 && len(sd.Physiotherapists) == 0 &&
		len(sd.YouthSquads) == 0 && len(sd.MembershipTypes) == 0 && len(sd.Members) == 0 &&
		len(sd.MembershipPayments) == 0 && len(sd.Treatments) == 0 && len(sd.MatchPlans) == 0 &&
		len(sd.Finance) == 0
}

// Normalize makes sure every known season has a data partition.
func (d *Document) Normalize() {
	if d.Seasons == nil {
		d.Seasons = []Season{}
	}
	if d.Data == nil {
		d.Data = map[string]*SeasonData{}
	}
	for i := range d.Seasons {
		d.Seasons[i].IsActive = d.Seasons[i].Label == d.ActiveSeason
		if d.Data[d.Seasons[i].Label] == nil {
			d.Data[d.Seasons[i].Label] = NewSeasonData()
		}
	}
	for _, sd := range d.Data {
		if sd != nil {
			sd.Normalize()
		}
	}
	d.Users = compactRaw(d.Users)
	d.Branding = compactRaw(d.Branding)
}

// compactRaw strips insignificant whitespace so that documents compare
// equal regardless of how the JSON file was indented.
func compactRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	if buf.String() == "null" {
		return nil
	}
	return json.RawMessage(buf.Bytes())
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := &Document{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	out.Normalize()
	return out, nil
}
