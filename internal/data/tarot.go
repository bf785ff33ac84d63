// Package data holds the static lookup tables the derivers read: the
// Major Arcana catalog with its lucky-number map and the dream-symbol
// dictionary. Everything here is immutable reference data.
package data

import "lekded/internal/models"

// MajorArcana is the 22-card subset used for lucky-number readings.
// Card IDs are 1-based; the number map below is keyed by ID-1.
var MajorArcana = []models.TarotCard{
	{ID: 1, Name: "The Fool", NameThai: "คนเขลา", Image: "/assets/tarot/00-the-fool.jpg"},
	{ID: 2, Name: "The Magician", NameThai: "นักมายากล", Image: "/assets/tarot/01-the-magician.jpg"},
	{ID: 3, Name: "The High Priestess", NameThai: "นักบวชหญิง", Image: "/assets/tarot/02-the-high-priestess.jpg"},
	{ID: 4, Name: "The Empress", NameThai: "จักรพรรดินี", Image: "/assets/tarot/03-the-empress.jpg"},
	{ID: 5, Name: "The Emperor", NameThai: "จักรพรรดิ", Image: "/assets/tarot/04-the-emperor.jpg"},
	{ID: 6, Name: "The Hierophant", NameThai: "พระสังฆราช", Image: "/assets/tarot/05-the-hierophant.jpg"},
	{ID: 7, Name: "The Lovers", NameThai: "คู่รัก", Image: "/assets/tarot/06-the-lovers.jpg"},
	{ID: 8, Name: "The Chariot", NameThai: "ราชรถ", Image: "/assets/tarot/07-the-chariot.jpg"},
	{ID: 9, Name: "Strength", NameThai: "พลังใจ", Image: "/assets/tarot/08-strength.jpg"},
	{ID: 10, Name: "The Hermit", NameThai: "ฤๅษี", Image: "/assets/tarot/09-the-hermit.jpg"},
	{ID: 11, Name: "Wheel of Fortune", NameThai: "กงล้อโชคชะตา", Image: "/assets/tarot/10-wheel-of-fortune.jpg"},
	{ID: 12, Name: "Justice", NameThai: "ความยุติธรรม", Image: "/assets/tarot/11-justice.jpg"},
	{ID: 13, Name: "The Hanged Man", NameThai: "ชายถูกแขวน", Image: "/assets/tarot/12-the-hanged-man.jpg"},
	{ID: 14, Name: "Death", NameThai: "ความตาย", Image: "/assets/tarot/13-death.jpg"},
	{ID: 15, Name: "Temperance", NameThai: "ความพอดี", Image: "/assets/tarot/14-temperance.jpg"},
	{ID: 16, Name: "The Devil", NameThai: "ปีศาจ", Image: "/assets/tarot/15-the-devil.jpg"},
	{ID: 17, Name: "The Tower", NameThai: "หอคอย", Image: "/assets/tarot/16-the-tower.jpg"},
	{ID: 18, Name: "The Star", NameThai: "ดวงดาว", Image: "/assets/tarot/17-the-star.jpg"},
	{ID: 19, Name: "The Moon", NameThai: "ดวงจันทร์", Image: "/assets/tarot/18-the-moon.jpg"},
	{ID: 20, Name: "The Sun", NameThai: "ดวงอาทิตย์", Image: "/assets/tarot/19-the-sun.jpg"},
	{ID: 21, Name: "Judgement", NameThai: "การพิพากษา", Image: "/assets/tarot/20-judgement.jpg"},
	{ID: 22, Name: "The World", NameThai: "โลก", Image: "/assets/tarot/21-the-world.jpg"},
}

// CardNumberMap assigns each Major Arcana index its fixed lucky numbers.
// Unknown indices fall back to entry 0.
var CardNumberMap = map[int]models.CardNumbers{
	0:  {Two: []string{"00", "09", "90"}, Three: []string{"009", "900"}},
	1:  {Two: []string{"01", "10", "19"}, Three: []string{"019", "110"}},
	2:  {Two: []string{"02", "20", "29"}, Three: []string{"029", "202"}},
	3:  {Two: []string{"03", "30", "39"}, Three: []string{"039", "303"}},
	4:  {Two: []string{"04", "40", "14"}, Three: []string{"041", "404"}},
	5:  {Two: []string{"05", "50", "15"}, Three: []string{"055", "505"}},
	6:  {Two: []string{"06", "60", "69"}, Three: []string{"069", "606"}},
	7:  {Two: []string{"07", "70", "77"}, Three: []string{"077", "707"}},
	8:  {Two: []string{"08", "80", "88"}, Three: []string{"088", "808"}},
	9:  {Two: []string{"09", "90", "99"}, Three: []string{"099", "909"}},
	10: {Two: []string{"10", "01", "55"}, Three: []string{"100", "555"}},
	11: {Two: []string{"11", "28", "82"}, Three: []string{"112", "282"}},
	12: {Two: []string{"12", "21", "48"}, Three: []string{"124", "214"}},
	13: {Two: []string{"13", "31", "49"}, Three: []string{"134", "314"}},
	14: {Two: []string{"14", "41", "56"}, Three: []string{"145", "415"}},
	15: {Two: []string{"15", "51", "66"}, Three: []string{"156", "516"}},
	16: {Two: []string{"16", "61", "43"}, Three: []string{"163", "613"}},
	17: {Two: []string{"17", "71", "89"}, Three: []string{"178", "718"}},
	18: {Two: []string{"18", "81", "36"}, Three: []string{"183", "813"}},
	19: {Two: []string{"19", "91", "46"}, Three: []string{"194", "914"}},
	20: {Two: []string{"20", "02", "74"}, Three: []string{"207", "027"}},
	21: {Two: []string{"21", "12", "33"}, Three: []string{"213", "123"}},
}
