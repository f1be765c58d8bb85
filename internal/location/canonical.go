package location

// CanonicalLocations lists the Vietnamese provinces and centrally governed
// cities the assistant knows, with the spelling variants users actually type.
// The order is stable and documented: when two entries could both match a
// query, the longest alias wins first, then the earlier entry.
var CanonicalLocations = []Location{
	// Centrally governed cities
	{ID: "ha-noi", Name: "Hà Nội", Aliases: []string{"hanoi", "tp ha noi", "thanh pho ha noi", "hn"}},
	{ID: "ho-chi-minh", Name: "TP. Hồ Chí Minh", Aliases: []string{"ho chi minh", "ho chi minh city", "tp hcm", "tphcm", "hcm", "sai gon", "saigon", "thanh pho ho chi minh"}},
	{ID: "hai-phong", Name: "Hải Phòng", Aliases: []string{"hai phong", "thanh pho hai phong"}},
	{ID: "da-nang", Name: "Đà Nẵng", Aliases: []string{"da nang", "danang", "thanh pho da nang"}},
	{ID: "can-tho", Name: "Cần Thơ", Aliases: []string{"can tho", "thanh pho can tho", "tay do"}},

	// Northern mountains
	{ID: "ha-giang", Name: "Hà Giang", Aliases: []string{"ha giang"}},
	{ID: "cao-bang", Name: "Cao Bằng", Aliases: []string{"cao bang"}},
	{ID: "lao-cai", Name: "Lào Cai", Aliases: []string{"lao cai", "sapa", "sa pa"}},
	{ID: "dien-bien", Name: "Điện Biên", Aliases: []string{"dien bien"}},
	{ID: "lai-chau", Name: "Lai Châu", Aliases: []string{"lai chau"}},
	{ID: "son-la", Name: "Sơn La", Aliases: []string{"son la", "moc chau"}},
	{ID: "yen-bai", Name: "Yên Bái", Aliases: []string{"yen bai", "mu cang chai"}},
	{ID: "tuyen-quang", Name: "Tuyên Quang", Aliases: []string{"tuyen quang"}},
	{ID: "bac-kan", Name: "Bắc Kạn", Aliases: []string{"bac kan"}},
	{ID: "thai-nguyen", Name: "Thái Nguyên", Aliases: []string{"thai nguyen"}},
	{ID: "lang-son", Name: "Lạng Sơn", Aliases: []string{"lang son", "mau son"}},
	{ID: "phu-tho", Name: "Phú Thọ", Aliases: []string{"phu tho", "den hung"}},
	{ID: "vinh-phuc", Name: "Vĩnh Phúc", Aliases: []string{"vinh phuc", "tam dao"}},
	{ID: "quang-ninh", Name: "Quảng Ninh", Aliases: []string{"quang ninh", "ha long"}},
	{ID: "bac-giang", Name: "Bắc Giang", Aliases: []string{"bac giang"}},
	{ID: "bac-ninh", Name: "Bắc Ninh", Aliases: []string{"bac ninh", "quan ho"}},

	// Red River delta
	{ID: "hai-duong", Name: "Hải Dương", Aliases: []string{"hai duong"}},
	{ID: "hung-yen", Name: "Hưng Yên", Aliases: []string{"hung yen", "pho hien"}},
	{ID: "hoa-binh", Name: "Hòa Bình", Aliases: []string{"hoa binh"}},
	{ID: "ha-nam", Name: "Hà Nam", Aliases: []string{"ha nam", "tam chuc"}},
	{ID: "thai-binh", Name: "Thái Bình", Aliases: []string{"thai binh"}},
	{ID: "nam-dinh", Name: "Nam Định", Aliases: []string{"nam dinh"}},
	{ID: "ninh-binh", Name: "Ninh Bình", Aliases: []string{"ninh binh", "trang an"}},

	// North central coast
	{ID: "thanh-hoa", Name: "Thanh Hóa", Aliases: []string{"thanh hoa", "sam son"}},
	{ID: "nghe-an", Name: "Nghệ An", Aliases: []string{"nghe an", "vinh"}},
	{ID: "ha-tinh", Name: "Hà Tĩnh", Aliases: []string{"ha tinh"}},
	{ID: "quang-binh", Name: "Quảng Bình", Aliases: []string{"quang binh", "phong nha"}},
	{ID: "quang-tri", Name: "Quảng Trị", Aliases: []string{"quang tri"}},
	{ID: "thua-thien-hue", Name: "Thừa Thiên Huế", Aliases: []string{"thua thien hue", "hue", "co do hue"}},

	// South central coast
	{ID: "quang-nam", Name: "Quảng Nam", Aliases: []string{"quang nam", "hoi an"}},
	{ID: "quang-ngai", Name: "Quảng Ngãi", Aliases: []string{"quang ngai", "ly son"}},
	{ID: "binh-dinh", Name: "Bình Định", Aliases: []string{"binh dinh", "quy nhon"}},
	{ID: "phu-yen", Name: "Phú Yên", Aliases: []string{"phu yen", "tuy hoa"}},
	{ID: "khanh-hoa", Name: "Khánh Hòa", Aliases: []string{"khanh hoa", "nha trang"}},
	{ID: "ninh-thuan", Name: "Ninh Thuận", Aliases: []string{"ninh thuan", "phan rang"}},
	{ID: "binh-thuan", Name: "Bình Thuận", Aliases: []string{"binh thuan", "phan thiet", "mui ne"}},

	// Central highlands
	{ID: "kon-tum", Name: "Kon Tum", Aliases: []string{"kon tum"}},
	{ID: "gia-lai", Name: "Gia Lai", Aliases: []string{"gia lai", "pleiku"}},
	{ID: "dak-lak", Name: "Đắk Lắk", Aliases: []string{"dak lak", "buon ma thuot"}},
	{ID: "dak-nong", Name: "Đắk Nông", Aliases: []string{"dak nong"}},
	{ID: "lam-dong", Name: "Lâm Đồng", Aliases: []string{"lam dong", "da lat", "dalat"}},

	// Southeast
	{ID: "ba-ria-vung-tau", Name: "Bà Rịa – Vũng Tàu", Aliases: []string{"ba ria vung tau", "vung tau", "ba ria"}},
	{ID: "binh-duong", Name: "Bình Dương", Aliases: []string{"binh duong"}},
	{ID: "binh-phuoc", Name: "Bình Phước", Aliases: []string{"binh phuoc"}},
	{ID: "dong-nai", Name: "Đồng Nai", Aliases: []string{"dong nai", "bien hoa"}},
	{ID: "tay-ninh", Name: "Tây Ninh", Aliases: []string{"tay ninh"}},
	{ID: "long-an", Name: "Long An", Aliases: []string{"long an"}},

	// Mekong delta
	{ID: "tien-giang", Name: "Tiền Giang", Aliases: []string{"tien giang", "my tho"}},
	{ID: "ben-tre", Name: "Bến Tre", Aliases: []string{"ben tre", "xu dua"}},
	{ID: "tra-vinh", Name: "Trà Vinh", Aliases: []string{"tra vinh"}},
	{ID: "vinh-long", Name: "Vĩnh Long", Aliases: []string{"vinh long"}},
	{ID: "dong-thap", Name: "Đồng Tháp", Aliases: []string{"dong thap", "sa dec"}},
	{ID: "an-giang", Name: "An Giang", Aliases: []string{"an giang", "chau doc", "long xuyen"}},
	{ID: "kien-giang", Name: "Kiên Giang", Aliases: []string{"kien giang", "phu quoc", "rach gia"}},
	{ID: "hau-giang", Name: "Hậu Giang", Aliases: []string{"hau giang", "vi thanh"}},
	{ID: "soc-trang", Name: "Sóc Trăng", Aliases: []string{"soc trang"}},
	{ID: "bac-lieu", Name: "Bạc Liêu", Aliases: []string{"bac lieu"}},
	{ID: "ca-mau", Name: "Cà Mau", Aliases: []string{"ca mau", "dat mui", "mui ca mau"}},
}

// HardTypos catches a few heavy misspellings seen in real traffic that no
// fuzzy tier recovers reliably. Checked before everything else.
var HardTypos = []TypoPattern{
	{Name: "Cần Thơ", Patterns: []string{"can thor", "can tho2"}},
}
