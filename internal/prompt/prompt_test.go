package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourbot/internal/corpus"
	"tourbot/internal/flight"
	"tourbot/internal/intent"
)

func TestRender(t *testing.T) {
	out := Render(Payload{
		Intent:        intent.Food,
		PreviousTurns: []string{"món ăn ở An Giang"},
		Message:       "bún cá nha",
		Location:      "An Giang",
		Foods: []corpus.Food{
			{City: "An Giang", DishName: "Bún cá Long Xuyên", Restaurant: "Bún cá Cô Hai"},
		},
	})

	assert.Contains(t, out, "Ý ĐỊNH CÂU HỎI (intent): food")
	assert.Contains(t, out, "món ăn ở An Giang")
	assert.Contains(t, out, `"bún cá nha"`)
	assert.Contains(t, out, "lastLocation): An Giang")
	assert.Contains(t, out, "Bún cá Cô Hai")
	// Empty corpora render as empty arrays, never null. The template prose
	// mentions "null" itself, so the check targets the JSON blocks.
	assert.Contains(t, out, "1. DESTINATIONS:\n[]")
	assert.Contains(t, out, "3. TOURS (combo/ tour gợi ý sẵn):\n[]")
	assert.Contains(t, out, "4. POLICIES (lưu ý đặt tour/thanh toán/hủy):\n[]")
	assert.Contains(t, out, "5. TIPS (kinh nghiệm du lịch):\n[]")
	assert.NotContains(t, out, ":\nnull")
}

func TestRenderSpecialBlockAndCoordinates(t *testing.T) {
	out := Render(Payload{
		Intent:      intent.Place,
		Message:     "chơi gì ở Đà Nẵng?",
		Location:    "Đà Nẵng",
		Coordinates: &corpus.LatLng{Lat: 16.0544, Lng: 108.2022},
		Special: &SpecialBlock{
			Label:        "điểm đến tại Đà Nẵng",
			Destinations: []corpus.Destination{{City: "Đà Nẵng", Name: "Bà Nà Hills"}},
		},
	})

	assert.Contains(t, out, "Tọa độ địa điểm: 16.0544, 108.2022")
	assert.Contains(t, out, "DỮ LIỆU BỔ SUNG (điểm đến tại Đà Nẵng):")
	assert.Contains(t, out, "Bà Nà Hills")
}

func TestRenderDefaults(t *testing.T) {
	out := Render(Payload{Intent: intent.Other, Message: "xin chào"})
	assert.Contains(t, out, "Câu trước của user: (chưa có)")
	assert.Contains(t, out, "lastLocation): chưa xác định")
	assert.NotContains(t, out, "Dữ liệu giá vé máy bay")
}

func TestFlightBlock(t *testing.T) {
	e := flight.Estimate{
		RouteCode: "SGN-PQC", From: "TP.HCM", To: "Phú Quốc", Currency: "VND",
		OneWayLow: 700000, OneWayHigh: 1400000,
		RoundTripLow: 1300000, RoundTripHigh: 2600000,
		Note: "Cao điểm hè giá tăng mạnh.",
	}

	block := FlightBlock(e, "sgn", "pqc", flight.OneWay)
	assert.Contains(t, block, "TP.HCM (SGN) → Phú Quốc (PQC)")
	assert.Contains(t, block, "Một chiều")
	assert.Contains(t, block, "từ 700000 đến 1400000 VND")

	block = FlightBlock(e, "SGN", "PQC", flight.RoundTrip)
	assert.Contains(t, block, "Khứ hồi")
	assert.Contains(t, block, "từ 1300000 đến 2600000 VND")

	out := Render(Payload{Intent: intent.Tips, Message: "giá vé?", FlightBlock: block})
	assert.Contains(t, out, "Dữ liệu giá vé máy bay ước lượng:")
}
