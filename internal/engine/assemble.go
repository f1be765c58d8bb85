package engine

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"tourbot/internal/corpus"
	"tourbot/internal/flight"
	"tourbot/internal/intent"
	"tourbot/internal/prompt"
	"tourbot/internal/session"
	"tourbot/internal/vntext"
)

// Special query shapes, detected on the normalized current turn.
var (
	// A generic "what destinations exist" question, meaningful only when no
	// location is active yet.
	reDiscovery = regexp.MustCompile(`goi y (diem den|dia diem)|(diem den|dia diem) (nao|noi tieng|noi bat)|nen di dau|du lich o dau`)

	// A "what is there to do there" question about the active location.
	reThingsToDo = regexp.MustCompile(`choi gi|lam gi|co gi (choi|hay|vui)|tham quan gi`)
)

// assemble builds the generator payload for one turn. Every step is bounded
// and none of them errors for "no data": an empty corpus simply contributes
// an empty block.
func (e *Engine) assemble(ctx context.Context, snap *corpus.Snapshot, sess *session.Session, turnIntent intent.Intent, previous []string, req ChatRequest) prompt.Payload {
	// Recency-window query: recent user turns plus the current one, so
	// co-reference like "bún cá nha" still carries the place signal.
	query := strings.Join(append(append([]string{}, previous...), req.Text), "\n")
	loc := sess.LastLocation

	payload := prompt.Payload{
		Intent:        turnIntent,
		PreviousTurns: previous,
		Message:       req.Text,
		Location:      loc,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		payload.Destinations = searchWithFallback(snap.Destinations, query, "", e.cfg.Destinations)
		return nil
	})
	g.Go(func() error {
		payload.Foods = searchWithFallback(snap.Foods, query, loc, e.cfg.Foods)
		return nil
	})
	g.Go(func() error {
		payload.Tours = searchWithFallback(snap.Tours, query, loc, e.cfg.Tours)
		return nil
	})
	g.Go(func() error {
		payload.Policies = searchWithFallback(snap.Policies, query, "", e.cfg.Policies)
		return nil
	})
	g.Go(func() error {
		payload.Tips = searchWithFallback(snap.Tips, query, "", e.cfg.Tips)
		return nil
	})
	_ = g.Wait()

	payload.Coordinates = activeCoordinates(snap.Destinations, loc)
	payload.Special = e.specialBlock(snap, loc, req.Text)

	if e.flights != nil && req.Origin != "" && req.Destination != "" {
		if est, ok := e.flights.Find(req.Origin, req.Destination); ok {
			payload.FlightBlock = prompt.FlightBlock(est, req.Origin, req.Destination, flight.ParseTripType(req.TripType))
		}
	}

	return payload
}

// searchWithFallback is the shared per-corpus retrieval step: filter by the
// active location when the corpus supports it, fall back to the unfiltered
// corpus when the filter strands the query with nothing, and fall back to the
// head of the list when fuzzy search itself finds nothing. The result is
// never empty unless the corpus is.
func searchWithFallback[T any](ix *corpus.Index[T], query, loc string, limit int) []T {
	base := ix
	if loc != "" {
		if sub := ix.FilterByLocation(loc); sub.Len() > 0 {
			base = sub
		}
	}
	if hits := base.TopMatches(query, limit); len(hits) > 0 {
		return hits
	}
	return base.TopMatches("", limit)
}

// specialBlock attaches the additive destination list for the two special
// query shapes. Returns nil when neither shape applies.
func (e *Engine) specialBlock(snap *corpus.Snapshot, loc, text string) *prompt.SpecialBlock {
	q := vntext.Normalize(text)

	if loc == "" && reDiscovery.MatchString(q) {
		featured := snap.Destinations.TopMatches("", e.cfg.Destinations)
		if len(featured) == 0 {
			return nil
		}
		return &prompt.SpecialBlock{Label: "điểm đến nổi bật", Destinations: featured}
	}

	if loc != "" && reThingsToDo.MatchString(q) {
		local := snap.Destinations.FilterByLocation(loc).TopMatches("", e.cfg.Destinations)
		if len(local) == 0 {
			return nil
		}
		return &prompt.SpecialBlock{Label: "điểm đến tại " + loc, Destinations: local}
	}

	return nil
}

// activeCoordinates finds the coordinates of the destination record matching
// the active location, when the corpus carries them.
func activeCoordinates(destinations *corpus.Index[corpus.Destination], loc string) *corpus.LatLng {
	if loc == "" {
		return nil
	}
	norm := vntext.Normalize(loc)
	for _, d := range destinations.Records() {
		if d.Coords != nil && vntext.Normalize(d.City) == norm {
			return d.Coords
		}
	}
	return nil
}
