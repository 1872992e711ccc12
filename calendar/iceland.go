package calendar

import "time"

// Easter offsets of the Icelandic movable days.
const (
	OffsetBolludagur         = -48
	OffsetSprengidagur       = -47
	OffsetOskudagur          = -46
	OffsetPalmasunnudagur    = -7
	OffsetSkirdagur          = -3
	OffsetFostudagurinnLangi = -2
	OffsetPaskadagur         = 0
	OffsetAnnarIPaskum       = 1
	OffsetUppstigningardagur = 39
	OffsetHvitasunnudagur    = 49
	OffsetAnnarIHvitasunnu   = 50
)

// IcelandRules returns the Icelandic rule table: the statutory holidays,
// the Christmas Eve and New Year's Eve half days and the best known working
// observances. Each call returns a fresh copy.
func IcelandRules() []Rule {
	return []Rule{
		NewFixed("Nýársdagur", time.January, 1, Holiday),
		NewFixed("Þrettándinn", time.January, 6, Observance),
		// first day of Þorri
		NewFloating("Bóndadagur", time.January, 19, time.Friday, Observance),
		// first day of Góa
		NewFloating("Konudagur", time.February, 18, time.Sunday, Observance),
		NewMovable("Bolludagur", OffsetBolludagur, Observance),
		NewMovable("Sprengidagur", OffsetSprengidagur, Observance),
		NewMovable("Öskudagur", OffsetOskudagur, Observance),
		NewMovable("Pálmasunnudagur", OffsetPalmasunnudagur, Observance),
		NewMovable("Skírdagur", OffsetSkirdagur, Holiday),
		NewMovable("Föstudagurinn langi", OffsetFostudagurinnLangi, Holiday),
		NewMovable("Páskadagur", OffsetPaskadagur, Holiday),
		NewMovable("Annar í páskum", OffsetAnnarIPaskum, Holiday),
		// first Thursday after April 18
		NewFloating("Sumardagurinn fyrsti", time.April, 19, time.Thursday, Holiday),
		NewFixed("Verkalýðsdagurinn", time.May, 1, Holiday),
		// second Sunday in May
		NewFloating("Mæðradagurinn", time.May, 8, time.Sunday, Observance),
		NewMovable("Uppstigningardagur", OffsetUppstigningardagur, Holiday),
		NewMovable("Hvítasunnudagur", OffsetHvitasunnudagur, Holiday),
		NewMovable("Annar í hvítasunnu", OffsetAnnarIHvitasunnu, Holiday),
		// first Sunday in June, a week later when that is Whit Sunday
		NewFloating("Sjómannadagurinn", time.June, 1, time.Sunday, Observance, OffsetHvitasunnudagur),
		NewFixed("Þjóðhátíðardagurinn", time.June, 17, Holiday),
		// first Monday in August
		NewFloating("Frídagur verslunarmanna", time.August, 1, time.Monday, Holiday),
		// first day of winter
		NewFloating("Fyrsti vetrardagur", time.October, 21, time.Saturday, Observance),
		NewFixed("Dagur íslenskrar tungu", time.November, 16, Observance),
		NewFixed("Fullveldisdagurinn", time.December, 1, Observance),
		NewFixed("Þorláksmessa", time.December, 23, Observance),
		NewFixed("Aðfangadagur", time.December, 24, HalfDay),
		NewFixed("Jóladagur", time.December, 25, Holiday),
		NewFixed("Annar í jólum", time.December, 26, Holiday),
		NewFixed("Gamlársdagur", time.December, 31, HalfDay),
	}
}
