package vntext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain ascii", "Can Tho", "can tho"},
		{"tones stripped", "Cần Thơ", "can tho"},
		{"stroked d lower", "đà nẵng", "da nang"},
		{"stroked d upper", "Đà Nẵng", "da nang"},
		{"mixed sentence", "Món ăn ở An Giang", "mon an o an giang"},
		{"keeps digits and punctuation", "lịch trình 3N2Đ!", "lich trinh 3n2d!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Thừa Thiên Huế",
		"TP. Hồ Chí Minh",
		"đi đâu chơi ở Đà Lạt?",
		"already normalized",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestStripNonAlnum(t *testing.T) {
	assert.Equal(t, "cantho", StripNonAlnum("can tho"))
	assert.Equal(t, "tphcm", StripNonAlnum("tp. hcm!"))
	assert.Equal(t, "3n2d", StripNonAlnum("3n-2d"))
	assert.Equal(t, "", StripNonAlnum(" .-/ "))
}
