package scoring

import "github.com/squaredcircle/ringside/internal/domain/event"

// Schedule is the four-number point table for ordinary matches at one show
// type. OnCard is paid for appearing, Win for winning, MainEvent for
// appearing in the main event and MainEventWin for winning it; the four are
// additive. SingleMainEvent restricts main-event status to exactly one match
// even when several share the top card order.
type Schedule struct {
	OnCard          int
	Win             int
	MainEvent       int
	MainEventWin    int
	SingleMainEvent bool
}

// IsZero reports whether the schedule pays nothing; unknown show types score
// with a zero schedule instead of failing the run.
func (s Schedule) IsZero() bool {
	return s.OnCard == 0 && s.Win == 0 && s.MainEvent == 0 && s.MainEventWin == 0
}

var (
	weeklySchedule   = Schedule{OnCard: 1, Win: 2, MainEvent: 1, MainEventWin: 2}
	premiumSchedule  = Schedule{OnCard: 2, Win: 4, MainEvent: 2, MainEventWin: 4, SingleMainEvent: true}
	bigFourSchedule  = Schedule{OnCard: 3, Win: 6, MainEvent: 3, MainEventWin: 6, SingleMainEvent: true}
	pinnacleSchedule = Schedule{OnCard: 4, Win: 8, MainEvent: 4, MainEventWin: 8, SingleMainEvent: true}
)

var schedules = map[event.Type]Schedule{
	event.TypeRaw:       weeklySchedule,
	event.TypeSmackDown: weeklySchedule,

	event.TypeBacklash:                premiumSchedule,
	event.TypeKingAndQueenOfTheRing:   premiumSchedule,
	event.TypeMoneyInTheBank:          premiumSchedule,
	event.TypeEvolution:               premiumSchedule,
	event.TypeBashInBerlin:            premiumSchedule,
	event.TypeCrownJewel:              premiumSchedule,
	event.TypeEliminationChamber:      premiumSchedule,
	event.TypeSaturdayNightsMainEvent: premiumSchedule,

	event.TypeRoyalRumble:      bigFourSchedule,
	event.TypeSurvivorSeries:   bigFourSchedule,
	event.TypeSummerSlamNight1: bigFourSchedule,
	event.TypeSummerSlamNight2: bigFourSchedule,

	event.TypeWrestleManiaNight1: pinnacleSchedule,
	event.TypeWrestleManiaNight2: pinnacleSchedule,
}

// ScheduleFor returns the ordinary-match schedule for a show type. Unknown
// types get the zero schedule.
func ScheduleFor(t event.Type) Schedule {
	return schedules[t]
}

// Special-match and title awards. These are schedule constants, not derived
// values; the calculator only ever adds them up.
const (
	RumbleEntryAward        = 2
	RumbleEliminationAward  = 2
	RumbleIronPersonAward   = 5
	RumbleMostElimsAward    = 5
	RumbleWinnerAward       = 15

	WarGamesEntryAward        = 2
	WarGamesWinningSideAward  = 5
	WarGamesDecidingFallAward = 5
	WarGamesEntryRankMax      = 5

	ChamberEntryAward       = 3
	ChamberEliminationAward = 2
	ChamberLongestAward     = 5
	ChamberWinnerAward      = 10

	LadderEntryAward  = 3
	LadderWinnerAward = 10

	TournamentQualifierCarry = 3
	TournamentSemifinalCarry = 7
	TournamentFinalistAward  = 10
	TournamentWinnerAward    = 20

	TitleChangeBonus    = 10
	TitleDefenseBonus   = 5
	TitleDefenseDQBonus = TitleDefenseBonus / 2
)
