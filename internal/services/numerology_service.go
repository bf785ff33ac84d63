package services

import (
	"fmt"

	"lekded/internal/models"
)

type zodiacRange struct {
	startMonth, startDay int
	endMonth, endDay     int
	sign                 models.ZodiacSign
}

// zodiacRanges covers the full year; Capricorn appears twice because it
// straddles the year boundary.
var zodiacRanges = []zodiacRange{
	{1, 1, 1, 19, models.ZodiacSign{Name: "มังกร", Icon: "♑", Element: "ดิน", Lucky: []string{"10", "28", "37"}}},
	{1, 20, 2, 18, models.ZodiacSign{Name: "กุมภ์", Icon: "♒", Element: "ลม", Lucky: []string{"11", "29", "47"}}},
	{2, 19, 3, 20, models.ZodiacSign{Name: "มีน", Icon: "♓", Element: "น้ำ", Lucky: []string{"12", "07", "39"}}},
	{3, 21, 4, 19, models.ZodiacSign{Name: "เมษ", Icon: "♈", Element: "ไฟ", Lucky: []string{"09", "18", "41"}}},
	{4, 20, 5, 20, models.ZodiacSign{Name: "พฤษภ", Icon: "♉", Element: "ดิน", Lucky: []string{"06", "15", "50"}}},
	{5, 21, 6, 20, models.ZodiacSign{Name: "เมถุน", Icon: "♊", Element: "ลม", Lucky: []string{"05", "23", "32"}}},
	{6, 21, 7, 22, models.ZodiacSign{Name: "กรกฎ", Icon: "♋", Element: "น้ำ", Lucky: []string{"02", "16", "27"}}},
	{7, 23, 8, 22, models.ZodiacSign{Name: "สิงห์", Icon: "♌", Element: "ไฟ", Lucky: []string{"01", "19", "44"}}},
	{8, 23, 9, 22, models.ZodiacSign{Name: "กันย์", Icon: "♍", Element: "ดิน", Lucky: []string{"04", "13", "36"}}},
	{9, 23, 10, 22, models.ZodiacSign{Name: "ตุลย์", Icon: "♎", Element: "ลม", Lucky: []string{"07", "24", "42"}}},
	{10, 23, 11, 21, models.ZodiacSign{Name: "พิจิก", Icon: "♏", Element: "น้ำ", Lucky: []string{"08", "17", "69"}}},
	{11, 22, 12, 21, models.ZodiacSign{Name: "ธนู", Icon: "♐", Element: "ไฟ", Lucky: []string{"03", "21", "55"}}},
	{12, 22, 12, 31, models.ZodiacSign{Name: "มังกร", Icon: "♑", Element: "ดิน", Lucky: []string{"10", "28", "37"}}},
}

var thaiDayNames = [7]string{"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์"}

type dayLucky struct {
	planet  string
	numbers []string
}

// dayLuckyTable is indexed by time.Weekday (Sunday = 0).
var dayLuckyTable = [7]dayLucky{
	{planet: "พระอาทิตย์", numbers: []string{"16", "61", "06"}},
	{planet: "พระจันทร์", numbers: []string{"21", "12", "02"}},
	{planet: "ดาวอังคาร", numbers: []string{"38", "83", "08"}},
	{planet: "ดาวพุธ", numbers: []string{"47", "74", "04"}},
	{planet: "ดาวพฤหัสบดี", numbers: []string{"59", "95", "05"}},
	{planet: "ดาวศุกร์", numbers: []string{"65", "56", "06"}},
	{planet: "ดาวเสาร์", numbers: []string{"79", "97", "07"}},
}

var lifePathMeanings = map[int]string{
	1:  "ผู้นำโดยกำเนิด มีพลังสร้างสรรค์ โชคเข้าข้างเสมอ",
	2:  "อ่อนโยน มีสัญชาตญาณดี เก่งเรื่องจังหวะเวลา",
	3:  "สร้างสรรค์ มีเสน่ห์ ดึงดูดโชคลาภได้ง่าย",
	4:  "มั่นคง อดทน โชคจากการทำงานหนัก",
	5:  "รักอิสระ ชอบผจญภัย โชคจากการเดินทาง",
	6:  "รักครอบครัว เอาใจใส่คนรอบข้าง โชคจากคนใกล้ชิด",
	7:  "ลึกลับ มีสัมผัสที่หก สัญชาตญาณแม่นยำ",
	8:  "มีอำนาจ เก่งการเงิน โชคลาภก้อนใหญ่",
	9:  "จิตใจกว้าง เมตตา โชคจากการให้",
	11: "ตัวเลขมาสเตอร์ สัญชาตญาณเหนือธรรมชาติ",
	22: "ตัวเลขมาสเตอร์ สร้างสิ่งยิ่งใหญ่ได้",
}

// digitSum returns the decimal digit sum of |n|.
func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// reduceDigits applies digitSum until the value is a single digit or a
// member of stops. Each pass strictly decreases any multi-digit value,
// so the loop terminates.
func reduceDigits(n int, stops ...int) int {
	for n > 9 {
		stopped := false
		for _, s := range stops {
			if n == s {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		n = digitSum(n)
	}
	return n
}

// NumerologyService derives personal lucky numbers from a birthdate.
type NumerologyService struct{}

func NewNumerologyService() *NumerologyService {
	return &NumerologyService{}
}

// Derive validates the date, normalizes Buddhist years to Gregorian and
// builds the full reading. Same input always yields the same output.
func (s *NumerologyService) Derive(day, month, year int) (*models.BirthdateReading, error) {
	date := models.CalendarDate{Day: day, Month: month, Year: year}
	if err := date.Validate(); err != nil {
		return nil, err
	}
	norm := date.Normalized()
	birth := norm.Time()

	num := deriveNumbers(norm.Day, norm.Month, norm.Year)
	dayInfo := dayLuckyTable[birth.Weekday()]

	meaning, ok := lifePathMeanings[num.LifePath]
	if !ok {
		meaning = "ตัวเลขพิเศษ มีพลังมาก"
	}

	return &models.BirthdateReading{
		Zodiac:          zodiacFor(norm.Month, norm.Day),
		DayName:         thaiDayNames[birth.Weekday()],
		Planet:          dayInfo.planet,
		DayNumbers:      dayInfo.numbers,
		LifePathMeaning: meaning,
		Numerology:      num,
	}, nil
}

// deriveNumbers is the pure recombination core. The exact formulas are a
// compatibility contract with the candidate lists users already know.
func deriveNumbers(day, month, year int) models.NumerologyResult {
	stream := fmt.Sprintf("%d%d%d", day, month, year)
	sum := 0
	for _, r := range stream {
		sum += int(r - '0')
	}
	lifePath := reduceDigits(sum, 11, 22)

	d := fmt.Sprintf("%02d", day)
	m := fmt.Sprintf("%02d", month)
	y4 := fmt.Sprintf("%04d", year)
	y := y4[len(y4)-2:]

	two := appendUnique(nil,
		d, m, y,
		d[:1]+m[1:],
		m[:1]+y[1:],
		fmt.Sprintf("%02d", (day+month)%100),
		string([]byte{d[1], d[0]}),
	)
	two = truncate(keepLen(two, 2), 6)

	yy := int(y[0]-'0')*10 + int(y[1]-'0')
	three := appendUnique(nil,
		d+m[1:],
		m+y[1:],
		d[:1]+m,
		fmt.Sprintf("%03d", (day+month+yy)%1000),
	)
	three = truncate(keepLen(three, 3), 4)

	return models.NumerologyResult{LifePath: lifePath, TwoDigit: two, ThreeDigit: three}
}

func zodiacFor(month, day int) *models.ZodiacSign {
	for _, z := range zodiacRanges {
		if z.startMonth == z.endMonth {
			if month == z.startMonth && day >= z.startDay && day <= z.endDay {
				sign := z.sign
				return &sign
			}
			continue
		}
		if (month == z.startMonth && day >= z.startDay) || (month == z.endMonth && day <= z.endDay) {
			sign := z.sign
			return &sign
		}
	}
	return nil
}
