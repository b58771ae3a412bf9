package almanac

import (
	"math"
	"testing"
	"time"
)

// jdForAge builds a Julian Day whose synodic position lands mid-way through
// the given age day.
func jdForAge(age int) float64 {
	p := (float64(age) + 0.5) / ageDayScale
	return newMoonReferenceJD + p*SynodicMonth
}

func TestMoonPhaseReferenceNewMoon(t *testing.T) {
	p := MoonPhaseAtJD(newMoonReferenceJD)

	if p.Illumination > 1e-9 {
		t.Errorf("Illumination = %v, want ~0 at the reference new moon", p.Illumination)
	}
	if p.AgeDays != 0 {
		t.Errorf("AgeDays = %d, want 0", p.AgeDays)
	}
	if p.Name != PhaseNewMoon {
		t.Errorf("Name = %q, want %q", p.Name, PhaseNewMoon)
	}
	if !p.Waxing {
		t.Error("new moon should be flagged waxing")
	}
	if p.NextPhase != PhaseFirstQuarter || p.DaysToNext != 7 {
		t.Errorf("next = %q in %d days, want First Quarter in 7", p.NextPhase, p.DaysToNext)
	}
	if p.DaysToFull != 15 {
		t.Errorf("DaysToFull = %d, want 15", p.DaysToFull)
	}
}

func TestMoonPhaseReferenceFullMoon(t *testing.T) {
	// Half a synodic month past the reference new moon.
	p := MoonPhaseAtJD(newMoonReferenceJD + 14.765)

	if p.Illumination < 0.999 {
		t.Errorf("Illumination = %v, want ~1 at full moon", p.Illumination)
	}
	if p.Name != PhaseFullMoon {
		t.Errorf("Name = %q, want %q", p.Name, PhaseFullMoon)
	}
	if p.Waxing {
		t.Error("full moon should be flagged waning")
	}
	if p.DaysToFull != 1 {
		// age 14 is just short of the day-15 milestone
		t.Errorf("DaysToFull = %d, want 1", p.DaysToFull)
	}
}

func TestMoonPhaseBeforeReferenceEpoch(t *testing.T) {
	// Dates before the reference new moon must still give a fraction in
	// [0, 1) and a valid age.
	p := MoonPhaseAtJD(newMoonReferenceJD - 1.0)

	if p.AgeDays != 28 {
		t.Errorf("AgeDays = %d, want 28 one day before a new moon", p.AgeDays)
	}
	if p.Name != PhaseWaningCrescent {
		t.Errorf("Name = %q, want %q", p.Name, PhaseWaningCrescent)
	}
	if p.Illumination > 0.05 {
		t.Errorf("Illumination = %v, want thin crescent", p.Illumination)
	}
}

func TestMoonPhaseBounded(t *testing.T) {
	// Half a century in ~12.3-day strides.
	for i := 0; i < 1500; i++ {
		jd := newMoonReferenceJD - 9131 + float64(i)*12.3
		p := MoonPhaseAtJD(jd)

		if p.Illumination < 0 || p.Illumination > 1 {
			t.Fatalf("jd %.1f: Illumination out of [0,1]: %v", jd, p.Illumination)
		}
		if p.AgeDays < 0 || p.AgeDays > 29 {
			t.Fatalf("jd %.1f: AgeDays out of [0,29]: %d", jd, p.AgeDays)
		}
		if p.DaysToNext < 0 {
			t.Fatalf("jd %.1f: negative DaysToNext: %d", jd, p.DaysToNext)
		}
	}
}

func TestMoonPhasePeriodicity(t *testing.T) {
	jd := 2460388.2 // arbitrary modern date
	a := MoonPhaseAtJD(jd)
	b := MoonPhaseAtJD(jd + SynodicMonth)

	if math.Abs(a.Illumination-b.Illumination) > 1e-6 {
		t.Errorf("illumination not periodic: %v vs %v", a.Illumination, b.Illumination)
	}
	if a.AgeDays != b.AgeDays {
		t.Errorf("age not periodic: %d vs %d", a.AgeDays, b.AgeDays)
	}
}

func TestMoonPhaseBucketTable(t *testing.T) {
	tests := []struct {
		age        int
		wantName   PhaseName
		wantWaxing bool
		wantNext   PhaseName
		wantToNext int
	}{
		{0, PhaseNewMoon, true, PhaseFirstQuarter, 7},
		{1, PhaseNewMoon, true, PhaseFirstQuarter, 6},
		{2, PhaseWaxingCrescent, true, PhaseFirstQuarter, 5},
		{6, PhaseWaxingCrescent, true, PhaseFirstQuarter, 1},
		{7, PhaseFirstQuarter, true, PhaseFullMoon, 8},
		{8, PhaseFirstQuarter, true, PhaseFullMoon, 7},
		{9, PhaseWaxingGibbous, true, PhaseFullMoon, 6},
		{13, PhaseWaxingGibbous, true, PhaseFullMoon, 2},
		{14, PhaseFullMoon, false, PhaseLastQuarter, 8},
		{16, PhaseFullMoon, false, PhaseLastQuarter, 6},
		{17, PhaseWaningGibbous, false, PhaseLastQuarter, 5},
		{21, PhaseWaningGibbous, false, PhaseLastQuarter, 1},
		{22, PhaseLastQuarter, false, PhaseNewMoon, 8},
		{23, PhaseLastQuarter, false, PhaseNewMoon, 7},
		{24, PhaseWaningCrescent, false, PhaseNewMoon, 6},
		{29, PhaseWaningCrescent, false, PhaseNewMoon, 1},
	}

	for _, tt := range tests {
		p := MoonPhaseAtJD(jdForAge(tt.age))

		if p.AgeDays != tt.age {
			t.Errorf("age %d: computed AgeDays = %d", tt.age, p.AgeDays)
			continue
		}
		if p.Name != tt.wantName {
			t.Errorf("age %d: Name = %q, want %q", tt.age, p.Name, tt.wantName)
		}
		if p.Waxing != tt.wantWaxing {
			t.Errorf("age %d: Waxing = %v, want %v", tt.age, p.Waxing, tt.wantWaxing)
		}
		if p.NextPhase != tt.wantNext {
			t.Errorf("age %d: NextPhase = %q, want %q", tt.age, p.NextPhase, tt.wantNext)
		}
		if p.DaysToNext != tt.wantToNext {
			t.Errorf("age %d: DaysToNext = %d, want %d", tt.age, p.DaysToNext, tt.wantToNext)
		}
	}
}

func TestMoonPhaseDaysToFullMoon(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{0, 15},
		{7, 8},
		{14, 1},
		{15, 30}, // just past full: a whole cycle to the next one
		{22, 23},
		{29, 16},
	}

	for _, tt := range tests {
		p := MoonPhaseAtJD(jdForAge(tt.age))
		if p.AgeDays != tt.age {
			t.Errorf("age %d: computed AgeDays = %d", tt.age, p.AgeDays)
			continue
		}
		if p.DaysToFull != tt.want {
			t.Errorf("age %d: DaysToFull = %d, want %d", tt.age, p.DaysToFull, tt.want)
		}
	}
}

func TestCurrentMoonPhaseMatchesJD(t *testing.T) {
	at := time.Date(2024, 3, 25, 7, 0, 0, 0, time.UTC)
	fromTime := CurrentMoonPhase(at)
	fromJD := MoonPhaseAtJD(2440587.5 + float64(at.Unix())/86400.0)

	if fromTime != fromJD {
		t.Errorf("CurrentMoonPhase != MoonPhaseAtJD:\n%+v\n%+v", fromTime, fromJD)
	}
}
