package data

import "lekded/internal/models"

// DreamCategories groups dictionary entries for the suggestion UI.
var DreamCategories = []models.DreamCategory{
	{ID: "animal", Label: "สัตว์", Icon: "🐍"},
	{ID: "person", Label: "บุคคล", Icon: "🧑"},
	{ID: "nature", Label: "ธรรมชาติ", Icon: "🌊"},
	{ID: "object", Label: "สิ่งของ", Icon: "💍"},
	{ID: "event", Label: "เหตุการณ์", Icon: "🎉"},
	{ID: "sacred", Label: "สิ่งศักดิ์สิทธิ์", Icon: "🙏"},
}

// PopularDreams are the quick-search chips shown before any query.
var PopularDreams = []string{"งู", "น้ำ", "ปลา", "ช้าง", "ไฟไหม้", "ทอง", "ฟันหลุด", "เด็กทารก"}

// Dreams is the dream-symbol dictionary per the traditional Thai
// interpretation tables. Keywords are matched by substring in either
// direction, so longer free-text queries still hit short keywords.
var Dreams = []models.DreamEntry{
	{Keyword: "งู", Meaning: "จะได้พบเนื้อคู่หรือได้ลาภจากเพศตรงข้าม", Category: "animal",
		TwoDigit: []string{"56", "65", "89"}, ThreeDigit: []string{"556", "589"}},
	{Keyword: "งูรัด", Meaning: "เนื้อคู่อยู่ใกล้ตัว ความรักกำลังมาถึง", Category: "animal",
		TwoDigit: []string{"59", "95", "65"}, ThreeDigit: []string{"595", "956"}},
	{Keyword: "ช้าง", Meaning: "จะได้รับโชคลาภก้อนใหญ่จากผู้ใหญ่", Category: "animal",
		TwoDigit: []string{"91", "19", "01"}, ThreeDigit: []string{"910", "190"}},
	{Keyword: "เสือ", Meaning: "จะมีอำนาจวาสนา ผู้ใหญ่ให้การสนับสนุน", Category: "animal",
		TwoDigit: []string{"30", "03", "35"}, ThreeDigit: []string{"305", "530"}},
	{Keyword: "ปลา", Meaning: "จะได้ลาภเล็กน้อยจากการงาน", Category: "animal",
		TwoDigit: []string{"28", "82", "48"}, ThreeDigit: []string{"284", "828"}},
	{Keyword: "ปลาใหญ่", Meaning: "โชคลาภก้อนใหญ่กำลังเข้ามา", Category: "animal",
		TwoDigit: []string{"88", "28", "89"}, ThreeDigit: []string{"888", "288"}},
	{Keyword: "จระเข้", Meaning: "ระวังคนใกล้ตัวคิดร้าย แต่จะแคล้วคลาด", Category: "animal",
		TwoDigit: []string{"25", "52", "57"}, ThreeDigit: []string{"257", "525"}},
	{Keyword: "เต่า", Meaning: "อายุยืน สุขภาพแข็งแรง มีโชคช้าแต่มั่นคง", Category: "animal",
		TwoDigit: []string{"16", "61", "66"}, ThreeDigit: []string{"166", "616"}},
	{Keyword: "หมา", Meaning: "เพื่อนจะนำข่าวดีมาให้", Category: "animal",
		TwoDigit: []string{"24", "42", "04"}, ThreeDigit: []string{"244", "424"}},
	{Keyword: "แมว", Meaning: "ระวังเรื่องเงินทองรั่วไหล", Category: "animal",
		TwoDigit: []string{"13", "31", "33"}, ThreeDigit: []string{"133", "313"}},
	{Keyword: "วัว", Meaning: "การงานมั่นคง จะได้เลื่อนขั้น", Category: "animal",
		TwoDigit: []string{"72", "27", "02"}, ThreeDigit: []string{"720", "272"}},
	{Keyword: "นก", Meaning: "จะได้เดินทางไกลและพบโอกาสใหม่", Category: "animal",
		TwoDigit: []string{"47", "74", "07"}, ThreeDigit: []string{"470", "747"}},
	{Keyword: "น้ำ", Meaning: "เงินทองไหลมาเทมา ชีวิตราบรื่น", Category: "nature",
		TwoDigit: []string{"26", "62", "06"}, ThreeDigit: []string{"262", "626"}},
	{Keyword: "น้ำท่วม", Meaning: "โชคใหญ่เกินคาด แต่ให้ระวังสุขภาพ", Category: "nature",
		TwoDigit: []string{"69", "96", "62"}, ThreeDigit: []string{"696", "962"}},
	{Keyword: "ฝนตก", Meaning: "ความชุ่มฉ่ำ เรื่องร้ายกลายเป็นดี", Category: "nature",
		TwoDigit: []string{"17", "71", "70"}, ThreeDigit: []string{"170", "717"}},
	{Keyword: "ไฟไหม้", Meaning: "จะมีเรื่องร้อนใจ แต่ได้ลาภปลอบขวัญ", Category: "event",
		TwoDigit: []string{"37", "73", "07"}, ThreeDigit: []string{"370", "737"}},
	{Keyword: "ภูเขา", Meaning: "อุปสรรคใหญ่ที่ข้ามผ่านได้ด้วยความเพียร", Category: "nature",
		TwoDigit: []string{"38", "83", "08"}, ThreeDigit: []string{"380", "838"}},
	{Keyword: "พระจันทร์", Meaning: "ความสำเร็จอันงดงาม คนรักสมหวัง", Category: "nature",
		TwoDigit: []string{"21", "12", "02"}, ThreeDigit: []string{"212", "122"}},
	{Keyword: "ทอง", Meaning: "จะได้ลาภเป็นเงินทองของมีค่า", Category: "object",
		TwoDigit: []string{"83", "38", "89"}, ThreeDigit: []string{"838", "389"}},
	{Keyword: "สร้อยทอง", Meaning: "ผู้ใหญ่เมตตา จะได้รับของขวัญมีค่า", Category: "object",
		TwoDigit: []string{"89", "98", "83"}, ThreeDigit: []string{"898", "983"}},
	{Keyword: "แหวน", Meaning: "จะได้คู่ครองหรือคำมั่นสัญญา", Category: "object",
		TwoDigit: []string{"52", "25", "22"}, ThreeDigit: []string{"522", "252"}},
	{Keyword: "เงิน", Meaning: "ลาภลอยกำลังจะมาถึงในเร็ววัน", Category: "object",
		TwoDigit: []string{"82", "28", "08"}, ThreeDigit: []string{"820", "828"}},
	{Keyword: "รถ", Meaning: "ชีวิตกำลังเคลื่อนไปข้างหน้า การเดินทางราบรื่น", Category: "object",
		TwoDigit: []string{"44", "54", "45"}, ThreeDigit: []string{"445", "544"}},
	{Keyword: "บ้าน", Meaning: "ครอบครัวอบอุ่น ฐานะมั่นคงขึ้น", Category: "object",
		TwoDigit: []string{"68", "86", "06"}, ThreeDigit: []string{"686", "868"}},
	{Keyword: "ฟันหลุด", Meaning: "ระวังญาติผู้ใหญ่เจ็บป่วย ให้ทำบุญอุทิศ", Category: "event",
		TwoDigit: []string{"32", "23", "03"}, ThreeDigit: []string{"320", "232"}},
	{Keyword: "ผมร่วง", Meaning: "เรื่องกังวลใจจะคลี่คลายไปเอง", Category: "event",
		TwoDigit: []string{"14", "41", "04"}, ThreeDigit: []string{"140", "414"}},
	{Keyword: "งานแต่งงาน", Meaning: "ข่าวมงคลจากคนใกล้ชิด", Category: "event",
		TwoDigit: []string{"54", "45", "05"}, ThreeDigit: []string{"545", "454"}},
	{Keyword: "งานศพ", Meaning: "เคราะห์ร้ายผ่านพ้น อายุยืนยาว", Category: "event",
		TwoDigit: []string{"40", "04", "00"}, ThreeDigit: []string{"400", "404"}},
	{Keyword: "ตั้งครรภ์", Meaning: "สิ่งใหม่กำลังก่อตัว โชคลาภไม่คาดฝัน", Category: "event",
		TwoDigit: []string{"15", "51", "05"}, ThreeDigit: []string{"150", "515"}},
	{Keyword: "เด็กทารก", Meaning: "ความบริสุทธิ์นำโชค เริ่มต้นใหม่ที่สดใส", Category: "person",
		TwoDigit: []string{"10", "01", "11"}, ThreeDigit: []string{"101", "110"}},
	{Keyword: "คนตาย", Meaning: "จะมีอายุยืน เคราะห์กลายเป็นโชค", Category: "person",
		TwoDigit: []string{"04", "40", "48"}, ThreeDigit: []string{"048", "480"}},
	{Keyword: "ผู้ใหญ่", Meaning: "ผู้มีอำนาจช่วยเหลือเกื้อกูล", Category: "person",
		TwoDigit: []string{"90", "09", "19"}, ThreeDigit: []string{"909", "190"}},
	{Keyword: "คนแก่", Meaning: "ภูมิปัญญานำทาง จะได้รับคำแนะนำที่ดี", Category: "person",
		TwoDigit: []string{"09", "90", "99"}, ThreeDigit: []string{"099", "990"}},
	{Keyword: "พระ", Meaning: "บุญเก่าหนุนนำ แคล้วคลาดปลอดภัย", Category: "sacred",
		TwoDigit: []string{"89", "98", "08"}, ThreeDigit: []string{"889", "898"}},
	{Keyword: "พระพุทธรูป", Meaning: "สิ่งศักดิ์สิทธิ์คุ้มครอง สมปรารถนา", Category: "sacred",
		TwoDigit: []string{"99", "89", "09"}, ThreeDigit: []string{"999", "899"}},
	{Keyword: "ไหว้พระ", Meaning: "จิตใจผ่องใส บุญส่งผลเร็ว", Category: "sacred",
		TwoDigit: []string{"95", "59", "09"}, ThreeDigit: []string{"959", "595"}},
	{Keyword: "พญานาค", Meaning: "โชคลาภยิ่งใหญ่จากสายน้ำ บารมีคุ้มครอง", Category: "sacred",
		TwoDigit: []string{"56", "65", "89"}, ThreeDigit: []string{"568", "656"}},
	{Keyword: "ดอกบัว", Meaning: "ความเจริญรุ่งเรืองทางจิตใจและการงาน", Category: "sacred",
		TwoDigit: []string{"18", "81", "08"}, ThreeDigit: []string{"180", "818"}},
}
