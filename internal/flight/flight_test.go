package flight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEstimates = []Estimate{
	{
		RouteCode: "SGN-DAD", From: "TP.HCM", To: "Đà Nẵng", Currency: "VND",
		OneWayLow: 800000, OneWayHigh: 1500000,
		RoundTripLow: 1500000, RoundTripHigh: 2800000,
		Note: "Giá thấp hơn vào ngày thường.",
	},
	{
		RouteCode: "HAN-PQC", From: "Hà Nội", To: "Phú Quốc", Currency: "VND",
		OneWayLow: 1200000, OneWayHigh: 2500000,
		RoundTripLow: 2300000, RoundTripHigh: 4500000,
	},
}

func TestFindEitherDirection(t *testing.T) {
	table := NewTable(testEstimates)

	e, ok := table.Find("SGN", "DAD")
	require.True(t, ok)
	assert.Equal(t, "SGN-DAD", e.RouteCode)

	// Reversed pair resolves to the same row.
	e, ok = table.Find("dad", "sgn")
	require.True(t, ok)
	assert.Equal(t, "SGN-DAD", e.RouteCode)

	_, ok = table.Find("SGN", "HPH")
	assert.False(t, ok)

	_, ok = table.Find("", "DAD")
	assert.False(t, ok)
}

func TestRange(t *testing.T) {
	e := testEstimates[0]

	low, high := e.Range(OneWay)
	assert.Equal(t, 800000, low)
	assert.Equal(t, 1500000, high)

	low, high = e.Range(RoundTrip)
	assert.Equal(t, 1500000, low)
	assert.Equal(t, 2800000, high)
}

func TestParseTripType(t *testing.T) {
	assert.Equal(t, OneWay, ParseTripType("oneway"))
	assert.Equal(t, OneWay, ParseTripType(" OneWay "))
	assert.Equal(t, RoundTrip, ParseTripType("roundtrip"))
	assert.Equal(t, RoundTrip, ParseTripType(""))
	assert.Equal(t, RoundTrip, ParseTripType("anything"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"routeCode":"SGN-HAN","from":"TP.HCM","to":"Hà Nội","currency":"VND",
		"oneWayLow":900000,"oneWayHigh":1800000,"roundTripLow":1700000,"roundTripHigh":3200000,
		"note":"Bay sáng sớm rẻ hơn."}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, EstimatesFile), []byte(payload), 0o644))

	table, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	e, ok := table.Find("HAN", "SGN")
	require.True(t, ok)
	assert.Equal(t, "VND", e.Currency)
}

func TestLoadMissingFileYieldsEmptyTable(t *testing.T) {
	table, err := Load(t.TempDir())
	assert.Error(t, err)
	require.NotNil(t, table)
	assert.Zero(t, table.Len())
}
