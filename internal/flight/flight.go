// Package flight serves rough airfare estimates from a static route table.
// Routes are undirected: SGN-DAD answers both SGN→DAD and DAD→SGN.
package flight

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EstimatesFile is the table's file name inside the data directory.
const EstimatesFile = "flight_price_estimates.json"

// TripType selects which price band of an estimate applies.
type TripType string

const (
	OneWay    TripType = "oneway"
	RoundTrip TripType = "roundtrip"
)

// ParseTripType maps a free-form query value to a TripType. Anything that is
// not "oneway" (case-insensitive) means round trip.
func ParseTripType(s string) TripType {
	if strings.EqualFold(strings.TrimSpace(s), string(OneWay)) {
		return OneWay
	}
	return RoundTrip
}

// Estimate is one row of the route table.
type Estimate struct {
	RouteCode     string `json:"routeCode"`
	From          string `json:"from"`
	To            string `json:"to"`
	Currency      string `json:"currency"`
	OneWayLow     int    `json:"oneWayLow"`
	OneWayHigh    int    `json:"oneWayHigh"`
	RoundTripLow  int    `json:"roundTripLow"`
	RoundTripHigh int    `json:"roundTripHigh"`
	Note          string `json:"note"`
}

// Range returns the low/high band for the given trip type.
func (e Estimate) Range(t TripType) (low, high int) {
	if t == OneWay {
		return e.OneWayLow, e.OneWayHigh
	}
	return e.RoundTripLow, e.RoundTripHigh
}

// Table holds the loaded estimates.
type Table struct {
	estimates []Estimate
}

// NewTable wraps a slice of estimates.
func NewTable(estimates []Estimate) *Table {
	return &Table{estimates: estimates}
}

// Load reads the estimates file from dir. A missing or malformed file yields
// an empty table and an error the caller may log and ignore; estimates are a
// nice-to-have, never a startup blocker.
func Load(dir string) (*Table, error) {
	raw, err := os.ReadFile(filepath.Join(dir, EstimatesFile))
	if err != nil {
		return NewTable(nil), fmt.Errorf("read %s: %w", EstimatesFile, err)
	}
	var estimates []Estimate
	if err := json.Unmarshal(raw, &estimates); err != nil {
		return NewTable(nil), fmt.Errorf("parse %s: %w", EstimatesFile, err)
	}
	return NewTable(estimates), nil
}

// Len reports the number of routes in the table.
func (t *Table) Len() int { return len(t.estimates) }

// Find looks up the route between two IATA codes in either direction. The
// second return is false when no row covers the pair.
func (t *Table) Find(origin, destination string) (Estimate, bool) {
	o := strings.ToUpper(strings.TrimSpace(origin))
	d := strings.ToUpper(strings.TrimSpace(destination))
	if o == "" || d == "" {
		return Estimate{}, false
	}
	forward := o + "-" + d
	reverse := d + "-" + o
	for _, e := range t.estimates {
		code := strings.ToUpper(e.RouteCode)
		if code == forward || code == reverse {
			return e, true
		}
	}
	return Estimate{}, false
}
