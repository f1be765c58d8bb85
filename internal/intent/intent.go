// Package intent assigns a coarse category to a user turn so the assembler
// knows which corpora to emphasize. This is a bounded keyword and pattern
// scorer, deliberately not a trained classifier: deterministic, stateless
// and cheap enough to run on every turn.
package intent

import (
	"regexp"
	"strings"

	"tourbot/internal/vntext"
)

// Intent is the coarse category of one user turn. Derived per turn, never
// persisted.
type Intent string

const (
	Food  Intent = "food"
	Place Intent = "place"
	Tips  Intent = "tips"
	Mixed Intent = "mixed"
	Other Intent = "other"
)

// Curated keyword sets, matched as substrings of the normalized text. Each
// hit is worth two points. The sets are disjoint by construction.
var (
	foodKeywords = []string{
		"an gi", "an gi o", "an gi tai", "do an", "do an ngon", "mon an",
		"mon gi", "quan an", "quan ngon", "quan nhau", "quan hai san",
		"an uong", "nha hang", "buffet", "bbq", "lau nuong", "an sang",
		"an trua", "an toi", "food", "street food", "dac san", "dac san gi",
		"quan ca phe", "cafe", "ca phe",
	}

	placeKeywords = []string{
		"di dau", "di choi", "di du lich", "lich trinh", "itinerary", "tour",
		"combo", "goi tour", "lich trinh 3n2d", "lich trinh 4n3d",
		"lich trinh 2n1d", "check in", "tham quan", "choi gi", "o dau",
		"o khach san nao", "khach san", "hotel", "homestay", "resort",
		"luu tru", "cho o", "dia diem", "diem den", "diem tham quan",
		"cho vui choi", "lich trinh tham quan", "sap xep lich trinh",
		"goi y lich trinh",
	}

	tipsKeywords = []string{
		"meo", "meo du lich", "kinh nghiem", "tip", "tips", "luu y", "chu y",
		"nen di thang may", "gia re nhat", "thoi diem nao", "thang nao",
		"mua nao", "thoi tiet", "thoi tiet o", "co mua khong", "mua nao dep",
		"phuong tien", "di chuyen bang gi", "di bang gi", "gia ve",
		"gia ve may bay", "bay thang nao re", "hanh ly", "ky gui",
		"mang gi khi di", "can chuan bi gi", "doi tra", "huy tour", "huy ve",
		"bao gom gi", "an toan", "bao hiem du lich", "tui tien",
	}
)

// Pattern boosts push unambiguous signals past single generic keyword hits;
// an explicit itinerary cue must outweigh a stray food word.
var (
	reFoodAt      = regexp.MustCompile(`an gi o `)
	reFoodSuggest = regexp.MustCompile(`goi y quan`)
	reFoodWhich   = regexp.MustCompile(`quan nao`)
	rePlaceWhere  = regexp.MustCompile(`di dau|sap xep lich`)
	reItinerary   = regexp.MustCompile(`lich trinh`)
	reTour        = regexp.MustCompile(`tour `)
)

// Scores returns the raw per-category scores for a turn. Exposed for tests
// and debugging; most callers want Classify.
func Scores(text string) (food, place, tips int) {
	q := vntext.Normalize(text)
	if q == "" {
		return 0, 0, 0
	}

	food = 2 * countHits(q, foodKeywords)
	place = 2 * countHits(q, placeKeywords)
	tips = 2 * countHits(q, tipsKeywords)

	if reFoodAt.MatchString(q) {
		food += 3
	}
	if reFoodSuggest.MatchString(q) {
		food += 2
	}
	if reFoodWhich.MatchString(q) {
		food += 2
	}
	if rePlaceWhere.MatchString(q) {
		place += 3
	}
	if reItinerary.MatchString(q) {
		place += 3
	}
	if reTour.MatchString(q) {
		place += 3
	}

	return food, place, tips
}

// Classify returns the winning category, Mixed on a tie at the top, and
// Other when nothing scores at all.
func Classify(text string) Intent {
	food, place, tips := Scores(text)

	max := food
	if place > max {
		max = place
	}
	if tips > max {
		max = tips
	}
	if max <= 0 {
		return Other
	}

	winners := 0
	var winner Intent
	for _, c := range []struct {
		intent Intent
		score  int
	}{{Food, food}, {Place, place}, {Tips, tips}} {
		if c.score == max {
			winners++
			winner = c.intent
		}
	}
	if winners > 1 {
		return Mixed
	}
	return winner
}

func countHits(q string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			hits++
		}
	}
	return hits
}
