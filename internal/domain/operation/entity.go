// Package operation holds the unified read model over the two scheduling
// sources: workshop visits and appointment reservations. An Operation is a
// projection built fresh on every aggregation request; it is never persisted
// or mutated, the source records live in the upstream services.
package operation

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidType = errors.New("invalid operation type")

// SentinelActor is reported as the last modifier when the upstream does not
// return the acting user.
var SentinelActor = Actor{FirstName: "System", LastName: ""}

type Vehicle struct {
	Brand        string
	Model        string
	LicensePlate string
}

type Financials struct {
	// Major-unit amounts converted from upstream minor units; display only,
	// not for further arithmetic.
	NetAmount   float64
	GrossAmount float64
	Currency    string
}

type Actor struct {
	FirstName string
	LastName  string
}

type Modification struct {
	Timestamp   time.Time
	PerformedBy Actor
}

type Operation struct {
	ID                string
	Type              Type
	CustomerFirstName string
	CustomerLastName  string
	CustomerPhone     string
	Status            string
	// Always present for visits; nil for reservations without a linked vehicle.
	Vehicle *Vehicle
	// EndDateTime >= StartDateTime is not guaranteed: an open visit reports
	// its start as the end until a completion timestamp exists.
	StartDateTime    time.Time
	EndDateTime      time.Time
	Financials       Financials
	LastModification Modification
}

// NormalizeStatus upper-cases an upstream status string. Unrecognized values
// pass through as-is and are treated as display-only by consumers.
func NormalizeStatus(s string) string {
	return strings.ToUpper(s)
}

// MajorUnits converts an upstream integer minor-unit amount (grosze) into
// major units. The /100 scale factor is fixed by the upstream contract.
func MajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// MatchesSearch reports whether the free-text query matches the customer's
// last name, first name, phone, or the vehicle license plate. The empty query
// matches everything.
func (o Operation) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	candidates := []string{
		o.CustomerLastName,
		o.CustomerFirstName,
		o.CustomerPhone,
	}
	if o.Vehicle != nil {
		candidates = append(candidates, o.Vehicle.LicensePlate)
	}

	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// SortByStartDesc orders operations by start time, newest first. The sort is
// stable: records with equal start times keep their relative order, so a
// visits-then-reservations concatenation stays in fetch order on ties.
func SortByStartDesc(ops []Operation) {
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].StartDateTime.After(ops[j].StartDateTime)
	})
}
