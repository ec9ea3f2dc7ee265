package scoring

import "testing"

func TestBreakdown_AddAndRender(t *testing.T) {
	t.Parallel()

	var b Breakdown
	b.Add("on card", 1)
	b.Add("win (by DQ)", 1)
	b.Add("adjustment", -2)

	want := "on card: +1; win (by DQ): +1; adjustment: -2"
	if got := b.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestScoredParticipant_Finalize(t *testing.T) {
	t.Parallel()

	p := ScoredParticipant{
		MatchPoints:     3,
		TitlePoints:     5,
		SpecialPoints:   10,
		MainEventPoints: 2,
		MassEntryPoints: 4,
		Carry:           7,
	}
	p.Finalize()
	if p.Total != 24 {
		t.Fatalf("Total = %d, want 24; carry must stay out of the total", p.Total)
	}
}

func TestBuckets(t *testing.T) {
	t.Parallel()

	a := Buckets{WeeklyShow: 3, PremiumEvent: 10, TitleHolding: 5}
	b := Buckets{WeeklyShow: 2, TitleHolding: 1}

	sum := a.Plus(b)
	if sum != (Buckets{WeeklyShow: 5, PremiumEvent: 10, TitleHolding: 6}) {
		t.Fatalf("Plus = %+v", sum)
	}
	if sum.Total() != 21 {
		t.Fatalf("Total = %d", sum.Total())
	}
}

func TestSeasonTotals_Merge(t *testing.T) {
	t.Parallel()

	totals := make(SeasonTotals)
	totals.Add("cody-rhodes", Buckets{WeeklyShow: 3})
	totals.Merge(SeasonTotals{
		"cody-rhodes": {PremiumEvent: 8},
		"rhea-ripley": {WeeklyShow: 2},
	})

	if totals["cody-rhodes"] != (Buckets{WeeklyShow: 3, PremiumEvent: 8}) {
		t.Fatalf("merged cody buckets = %+v", totals["cody-rhodes"])
	}
	if totals["rhea-ripley"] != (Buckets{WeeklyShow: 2}) {
		t.Fatalf("merged rhea buckets = %+v", totals["rhea-ripley"])
	}
}

func TestCarryLedger_StagePaysOnce(t *testing.T) {
	t.Parallel()

	ledger := NewCarryLedger()
	if !ledger.Add("cody-rhodes", CarryQualifier, "king", TournamentQualifierCarry) {
		t.Fatalf("first qualifier award must accrue")
	}
	if ledger.Add("cody-rhodes", CarryQualifier, "king", TournamentQualifierCarry) {
		t.Fatalf("second qualifier award must be rejected")
	}
	if !ledger.Add("cody-rhodes", CarrySemifinal, "king", TournamentSemifinalCarry) {
		t.Fatalf("semifinal is a distinct stage")
	}
	if ledger.Add("cody-rhodes", CarryNone, "king", 99) {
		t.Fatalf("stage none never accrues")
	}

	if got := ledger.Balance("cody-rhodes"); got != 10 {
		t.Fatalf("Balance = %d, want 10", got)
	}
}

func TestCarryLedger_RealizeZeroes(t *testing.T) {
	t.Parallel()

	ledger := NewCarryLedger()
	ledger.Add("jade-cargill", CarrySemifinal, "queen", TournamentSemifinalCarry)

	if got := ledger.Realize("jade-cargill"); got != 7 {
		t.Fatalf("first Realize = %d, want 7", got)
	}
	if got := ledger.Realize("jade-cargill"); got != 0 {
		t.Fatalf("second Realize = %d, want 0", got)
	}
	if got := ledger.Realize("nobody"); got != 0 {
		t.Fatalf("Realize unknown = %d, want 0", got)
	}
}

func TestCarryLedger_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	base := NewCarryLedger()
	base.Add("gunther", CarryQualifier, "king", TournamentQualifierCarry)

	clone := base.Clone()
	clone.Add("gunther", CarrySemifinal, "king", TournamentSemifinalCarry)
	clone.Realize("gunther")

	if got := base.Balance("gunther"); got != TournamentQualifierCarry {
		t.Fatalf("mutating a clone leaked into the source: %d", got)
	}

	var nilLedger *CarryLedger
	if cloned := nilLedger.Clone(); cloned == nil || cloned.Balance("anyone") != 0 {
		t.Fatalf("nil ledger clones to an empty ledger")
	}
}
