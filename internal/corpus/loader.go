package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"tourbot/internal/metrics"
)

// Corpus file names inside the data directory. They match the layout the
// dataset conversion script produces.
const (
	DestinationsFile = "destinations.json"
	FoodsFile        = "foods.json"
	ToursFile        = "tours.json"
	PoliciesFile     = "policies.json"
	TipsFile         = "travel_tips.json"
)

// Snapshot bundles the five immutable corpus indexes loaded from one pass
// over the data directory. A Snapshot is read-only after Load returns.
type Snapshot struct {
	Destinations *Index[Destination]
	Foods        *Index[Food]
	Tours        *Index[Tour]
	Policies     *Index[Policy]
	Tips         *Index[Tip]
}

// Load reads all five corpora from dir. A missing or malformed file degrades
// to an empty corpus with a warning; Load itself never fails, so a partially
// broken data directory still yields a usable (if thinner) snapshot.
func Load(dir string, threshold float64, logger *zap.Logger) *Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}

	destinations := loadFile[Destination](dir, DestinationsFile, logger)
	foods := loadFile[Food](dir, FoodsFile, logger)
	tours := loadFile[Tour](dir, ToursFile, logger)
	policies := loadFile[Policy](dir, PoliciesFile, logger)
	tips := loadFile[Tip](dir, TipsFile, logger)

	snap := NewSnapshot(destinations, foods, tours, policies, tips, threshold)

	metrics.CorpusRecords.WithLabelValues("destinations").Set(float64(snap.Destinations.Len()))
	metrics.CorpusRecords.WithLabelValues("foods").Set(float64(snap.Foods.Len()))
	metrics.CorpusRecords.WithLabelValues("tours").Set(float64(snap.Tours.Len()))
	metrics.CorpusRecords.WithLabelValues("policies").Set(float64(snap.Policies.Len()))
	metrics.CorpusRecords.WithLabelValues("tips").Set(float64(snap.Tips.Len()))

	logger.Info("corpora loaded",
		zap.Int("destinations", snap.Destinations.Len()),
		zap.Int("foods", snap.Foods.Len()),
		zap.Int("tours", snap.Tours.Len()),
		zap.Int("policies", snap.Policies.Len()),
		zap.Int("tips", snap.Tips.Len()))

	return snap
}

// NewSnapshot indexes already-decoded record lists. Exposed so tests and
// hot-reload paths can build snapshots without touching the filesystem.
func NewSnapshot(destinations []Destination, foods []Food, tours []Tour, policies []Policy, tips []Tip, threshold float64) *Snapshot {
	return &Snapshot{
		Destinations: NewIndex(destinations, DestinationSearchText,
			WithThreshold[Destination](threshold),
			WithLocationText(func(d Destination) string { return d.City })),
		Foods: NewIndex(foods, FoodSearchText,
			WithThreshold[Food](threshold),
			WithLocationText(func(f Food) string { return f.City })),
		Tours: NewIndex(tours, TourSearchText,
			WithThreshold[Tour](threshold),
			WithLocationText(func(t Tour) string { return strings.Join(t.Destinations, " ") })),
		Policies: NewIndex(policies, PolicySearchText,
			WithThreshold[Policy](threshold)),
		Tips: NewIndex(tips, TipSearchText,
			WithThreshold[Tip](threshold)),
	}
}

func loadFile[T any](dir, name string, logger *zap.Logger) []T {
	path := filepath.Join(dir, name)
	records, err := decodeFile[T](path)
	if err != nil {
		logger.Warn("corpus unavailable, continuing with empty list",
			zap.String("file", name), zap.Error(err))
		return nil
	}
	return records
}

func decodeFile[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}
