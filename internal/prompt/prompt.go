// Package prompt renders the system instruction and the per-turn user
// payload handed to the generator. The payload carries the classified
// intent, a short history window, the active location and the retrieved
// corpus slices as indented JSON blocks.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"tourbot/internal/corpus"
	"tourbot/internal/flight"
	"tourbot/internal/intent"
)

// SystemInstruction is the travel-assistant persona and answering rules.
// Kept in Vietnamese because the assistant converses in Vietnamese.
const SystemInstruction = `
Bạn là một trợ lý du lịch thân thiện, nói tiếng Việt tự nhiên, có thể tư vấn cả du lịch Việt Nam và quốc tế.

MỤC TIÊU:
- Giúp người dùng:
  + Chọn điểm đến phù hợp (theo sở thích, mùa, ngân sách, số ngày).
  + Lên lịch trình chi tiết từng ngày.
  + Gợi ý nơi ăn uống (từ dữ liệu FOOD) và tour/combo (từ dữ liệu TOURS).
  + Giải đáp các câu hỏi thực tế (thời tiết, di chuyển, lưu ý, chính sách đặt tour, tips).

NGUYÊN TẮC:
1. Ngắn gọn – rõ ràng – dễ đọc:
   - Ưu tiên gạch đầu dòng, chia mục rõ.
   - Không viết một đoạn quá dài liên tục.

2. Hỏi lại khi thiếu thông tin:
   - Hỏi tối đa 2 câu để làm rõ:
     + Đi đâu? (Nếu chưa rõ, gợi ý vài lựa chọn tiêu biểu)
     + Đi bao nhiêu ngày?
     + Ngân sách khoảng bao nhiêu/người?
     + Thích kiểu du lịch nào? (biển, núi, nghỉ dưỡng, khám phá, ẩm thực,...)

3. Lịch trình (Itinerary):
   - Format:
     Ngày 1:
       - Sáng: ...
       - Chiều: ...
       - Tối: ...
   - Mỗi ngày nên có:
     + 1–2 điểm tham quan chính.
     + Gợi ý 1–2 món ăn/đặc sản hoặc khu vực nên ăn uống.
   - Giải thích ngắn tại sao lịch trình này hợp lý.

4. Dữ liệu nội bộ (RAG mini):
   - DESTINATIONS: thông tin điểm đến (thành phố/tỉnh, highlights, bestTime).
   - FOODS: món ăn + quán cụ thể + địa chỉ + khoảng giá.
   - TOURS: các tour/combo gợi ý sẵn (thành phần, giá ước lượng, đối tượng phù hợp).
   - POLICIES: các lưu ý/kinh nghiệm khi đặt tour, thanh toán, hủy/đổi với bên thứ ba.
   - TIPS: mẹo, kinh nghiệm du lịch theo từng chủ đề (vé máy bay, Đà Nẵng, Đà Lạt, Cần Thơ,...).

   KHI TRẢ LỜI:
   - Nếu câu hỏi liên quan đến:
     + Ăn gì/ quán nào/ địa chỉ → ƯU TIÊN dùng FOODS.
     + Tour gói có sẵn/ combo → ƯU TIÊN dùng TOURS.
     + Chính sách đặt tour/ thanh toán/ hủy → ƯU TIÊN dùng POLICIES (lưu ý chung, không phải chính sách của ứng dụng).
     + Kinh nghiệm du lịch → ƯU TIÊN dùng TIPS.
   - Có thể kết hợp nhiều nguồn (ví dụ: tư vấn lịch trình + gợi ý quán ăn + tip thời tiết).
   - Không bịa ra tên quán/địa chỉ mới nếu dữ liệu không có. Khi thiếu data, trả lời chung chung và bảo người dùng kiểm tra thêm.

5. Giá vé máy bay (khi có dữ liệu):
   - Khi có dữ liệu routeCode, from, to, currency, oneWayLow, oneWayHigh, roundTripLow, roundTripHigh, note:
     - Diễn giải:
       + Nêu rõ tuyến bay (ví dụ: "TP.HCM (SGN) → Phú Quốc (PQC)").
       + Nêu khoảng giá rõ ràng:
         * Vé khứ hồi: "khoảng X–Y VND/người cho vé khứ hồi".
         * Vé một chiều: "khoảng X–Y VND/người cho vé một chiều".
       + Tóm tắt ghi chú quan trọng (note) thành 1 câu.
     - Luôn nhấn mạnh đây là giá ước lượng, có thể thay đổi theo thời điểm đặt, hãng bay và khuyến mãi.

6. Fuzzy địa điểm & chính tả:
   - Nếu người dùng gõ tên địa điểm hơi sai chính tả (ví dụ: "Da nang", "Đà nẳng", "Phu quoc", "Fú quốc"...):
     + Cố gắng suy đoán địa điểm đúng nhất dựa trên dữ liệu DESTINATIONS, FOODS, TOURS, TIPS.
     + Nếu nghi ngờ giữa 2–3 nơi, hãy hỏi lại để xác nhận thay vì bịa.
   - Nếu trước đó user đã hỏi rõ về một địa điểm (ví dụ: "món ăn ở An Giang") và câu sau chỉ hỏi món (ví dụ: "bún cá"),
     thì mặc định hiểu họ vẫn đang hỏi ở cùng địa điểm đó, trừ khi họ nói rõ nơi khác.

7. Phong cách:
   - Xưng hô: "mình" – "bạn".
   - Thân thiện, tích cực, mang tính gợi ý.
   - Cuối câu trả lời thường nên có 1 câu gợi mở:
     + "Nếu bạn cho mình biết thêm ngân sách và số người đi, mình sẽ tối ưu lịch trình giúp bạn nhé!"

8. Không lặp lại món/quán khi user muốn "món khác":

- Nếu user dùng các cụm như:
  "món khác", "quán khác", "còn chỗ nào nữa", "gợi ý thêm", "thêm vài quán nữa"

  → HIỂU RÕ rằng user không muốn nghe lại món/quán cũ.

- Trong trường hợp đó:
  + Hãy chọn MÓN hoặc QUÁN KHÁC trong FOODS (khác dishName hoặc restaurant).
  + Nếu dữ liệu nội bộ chỉ còn 1–2 gợi ý nữa, hãy nói rõ:
    "Mình gợi ý thêm 1–2 quán khác, ngoài ra dữ liệu hiện tại chưa có thêm."

- Tuyệt đối không được lặp nguyên tên quán/món y chang câu trả lời trước, trừ khi user yêu cầu mô tả chi tiết hơn về đúng quán đó.
`

// SpecialBlock is an additive destination list attached for the two special
// query shapes: a generic discovery question with no active location, or a
// "what to do there" question about the active location.
type SpecialBlock struct {
	Label        string
	Destinations []corpus.Destination
}

// Payload is everything the engine assembled for one turn.
type Payload struct {
	Intent        intent.Intent
	PreviousTurns []string
	Message       string
	Location      string
	Coordinates   *corpus.LatLng

	Destinations []corpus.Destination
	Foods        []corpus.Food
	Tours        []corpus.Tour
	Policies     []corpus.Policy
	Tips         []corpus.Tip

	Special     *SpecialBlock
	FlightBlock string
}

// jsonBlock marshals a corpus slice as an indented JSON array. A nil slice
// renders as "[]" so the template never shows "null".
func jsonBlock(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil || string(raw) == "null" {
		return "[]"
	}
	return string(raw)
}

// FlightBlock renders the airfare context for an estimate, in the shape the
// answering rules expect. origin and destination are the caller's IATA codes.
func FlightBlock(e flight.Estimate, origin, destination string, t flight.TripType) string {
	low, high := e.Range(t)
	kind := "Khứ hồi"
	if t == flight.OneWay {
		kind = "Một chiều"
	}

	var b strings.Builder
	b.WriteString("Dữ liệu giá vé máy bay ước lượng:\n")
	fmt.Fprintf(&b, "- Tuyến: %s (%s) → %s (%s)\n", e.From, strings.ToUpper(origin), e.To, strings.ToUpper(destination))
	fmt.Fprintf(&b, "- Loại vé: %s\n", kind)
	fmt.Fprintf(&b, "- Khoảng giá: từ %d đến %d %s / người\n", low, high, e.Currency)
	fmt.Fprintf(&b, "- Ghi chú: %s\n", e.Note)
	b.WriteString("\nYÊU CẦU:\n")
	b.WriteString("- Dùng thông tin trên để diễn giải lại cho người dùng bằng 1–3 câu tiếng Việt tự nhiên.\n")
	b.WriteString("- Nhấn mạnh đây chỉ là giá tham khảo, có thể thay đổi theo thời điểm đặt vé, hãng bay và khuyến mãi.\n")
	return b.String()
}

// Render produces the user message for one generator call.
func Render(p Payload) string {
	previous := "(chưa có)"
	if len(p.PreviousTurns) > 0 {
		previous = strings.Join(p.PreviousTurns, " | ")
	}
	location := p.Location
	if location == "" {
		location = "chưa xác định"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ý ĐỊNH CÂU HỎI (intent): %s\n\n", p.Intent)
	b.WriteString("LỊCH SỬ NGẮN:\n")
	fmt.Fprintf(&b, "- Câu trước của user: %s\n", previous)
	fmt.Fprintf(&b, "- Câu hiện tại của user: %q\n", p.Message)
	fmt.Fprintf(&b, "- Địa điểm đang được hiểu (lastLocation): %s\n", location)
	if p.Coordinates != nil {
		fmt.Fprintf(&b, "- Tọa độ địa điểm: %.4f, %.4f\n", p.Coordinates.Lat, p.Coordinates.Lng)
	}
	b.WriteString("\nDỮ LIỆU NỘI BỘ (JSON):\n\n")
	fmt.Fprintf(&b, "1. DESTINATIONS:\n%s\n\n", jsonBlock(p.Destinations))
	fmt.Fprintf(&b, "2. FOODS (món ăn + quán + địa chỉ):\n%s\n\n", jsonBlock(p.Foods))
	fmt.Fprintf(&b, "3. TOURS (combo/ tour gợi ý sẵn):\n%s\n\n", jsonBlock(p.Tours))
	fmt.Fprintf(&b, "4. POLICIES (lưu ý đặt tour/thanh toán/hủy):\n%s\n\n", jsonBlock(p.Policies))
	fmt.Fprintf(&b, "5. TIPS (kinh nghiệm du lịch):\n%s\n\n", jsonBlock(p.Tips))

	if p.Special != nil && len(p.Special.Destinations) > 0 {
		fmt.Fprintf(&b, "DỮ LIỆU BỔ SUNG (%s):\n%s\n\n", p.Special.Label, jsonBlock(p.Special.Destinations))
	}

	b.WriteString(`QUY TẮC THEO Ý ĐỊNH CÂU HỎI:
- Nếu intent = "place": ƯU TIÊN dùng DESTINATIONS + TOURS (địa điểm, lịch trình, tour).
- Nếu intent = "food": ƯU TIÊN dùng FOODS (món ăn, quán ăn), không lan man phần tour/đi chơi nếu user không hỏi.
- Nếu intent = "tips": ƯU TIÊN dùng TIPS + POLICIES (mẹo, kinh nghiệm, lưu ý).
- Nếu intent = "mixed": Kết hợp hợp lý theo nội dung người dùng hỏi.
- Nếu intent = "other": Trả lời chung, dựa trên toàn bộ context.
`)

	if p.FlightBlock != "" {
		b.WriteString("\n")
		b.WriteString(p.FlightBlock)
	}

	b.WriteString(`
QUY TẮC BẮT BUỘC VỀ NGỮ CẢNH ĐỊA ĐIỂM:
- Nếu lastLocation KHÁC null (ví dụ: "An Giang") và trong câu hiện tại user KHÔNG nhắc địa điểm mới,
  thì MẶC ĐỊNH HIỂU user vẫn đang hỏi về đúng địa điểm đó.
- Trong trường hợp đó:
  + KHÔNG hỏi lại kiểu "bạn muốn ăn ở đâu?".
  + KHÔNG gợi ý thành phố khác (như Đà Nẵng, Sài Gòn...) trừ khi user nói rõ muốn gợi ý nơi khác.
  + Ví dụ: user đã nói "món ăn ở An Giang" rồi hỏi tiếp "bún cá nha" → phải hiểu là "bún cá ở An Giang".

HƯỚNG DẪN TRẢ LỜI:
- ƯU TIÊN dùng dữ liệu FOODS cho đúng thành phố/tỉnh trong lastLocation (nếu có).
- Với câu hỏi về ăn uống:
  + Nêu rõ món, tên quán, địa chỉ, khoảng giá (nếu có trong FOODS).
  + Nếu thiếu dữ liệu quán cụ thể, có thể tư vấn chung chung cho đúng thành phố/tỉnh, nhưng KHÔNG bịa tên quán.
- Với tour/combo, chính sách, tips → dùng TOURS, POLICIES, TIPS tương ứng.
- Luôn trả lời bằng tiếng Việt, giọng thân thiện, dễ hiểu.
`)

	return b.String()
}
