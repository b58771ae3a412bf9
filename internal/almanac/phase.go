package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// SynodicMonth is the mean length of the lunar cycle (new moon to new moon)
// in days.
const SynodicMonth = 29.53058867

// newMoonReferenceJD is the Julian Day of a reference new moon
// (2000-01-06 18:14 UTC).
const newMoonReferenceJD = 2451550.1

// ageDayScale converts the synodic phase fraction into an integer age in
// days [0, 29].
const ageDayScale = 29.53

// PhaseName is one of the eight named lunar phases.
type PhaseName string

const (
	PhaseNewMoon        PhaseName = "New Moon"
	PhaseWaxingCrescent PhaseName = "Waxing Crescent"
	PhaseFirstQuarter   PhaseName = "First Quarter"
	PhaseWaxingGibbous  PhaseName = "Waxing Gibbous"
	PhaseFullMoon       PhaseName = "Full Moon"
	PhaseWaningGibbous  PhaseName = "Waning Gibbous"
	PhaseLastQuarter    PhaseName = "Last Quarter"
	PhaseWaningCrescent PhaseName = "Waning Crescent"
)

// MoonPhase describes the lunar phase at an instant. It is derived purely
// from the synodic cycle position and recomputed on every call.
type MoonPhase struct {
	Name         PhaseName
	Illumination float64 // [0, 1]: 0 = new, 1 = full
	AgeDays      int     // days since new moon [0, 29]
	Waxing       bool
	NextPhase    PhaseName
	DaysToNext   int // days until the next named phase milestone
	DaysToFull   int // days until the next full moon
}

// phaseBucket maps an age-in-days range to its name, direction and the fixed
// milestone (day 7, 15, 22 or 30) of the following named phase.
type phaseBucket struct {
	maxAge    int
	name      PhaseName
	waxing    bool
	next      PhaseName
	milestone int
}

var phaseBuckets = []phaseBucket{
	{1, PhaseNewMoon, true, PhaseFirstQuarter, 7},
	{6, PhaseWaxingCrescent, true, PhaseFirstQuarter, 7},
	{8, PhaseFirstQuarter, true, PhaseFullMoon, 15},
	{13, PhaseWaxingGibbous, true, PhaseFullMoon, 15},
	{16, PhaseFullMoon, false, PhaseLastQuarter, 22},
	{21, PhaseWaningGibbous, false, PhaseLastQuarter, 22},
	{23, PhaseLastQuarter, false, PhaseNewMoon, 30},
	{29, PhaseWaningCrescent, false, PhaseNewMoon, 30},
}

// fullMoonAge is the bucket-table age of the full moon milestone.
const fullMoonAge = 15

// CurrentMoonPhase computes the lunar phase at the given instant. Phase is a
// global property, independent of observer location.
func CurrentMoonPhase(t time.Time) MoonPhase {
	return MoonPhaseAtJD(astro.JulianDay(t))
}

// MoonPhaseAtJD computes the lunar phase for a Julian Day.
func MoonPhaseAtJD(jd float64) MoonPhase {
	// Fraction of the synodic cycle elapsed since the reference new moon,
	// always in [0, 1) even for dates before the reference.
	cycles := (jd - newMoonReferenceJD) / SynodicMonth
	phase := cycles - math.Floor(cycles)

	illum := 0.5 * (1 - math.Cos(2*math.Pi*phase))
	age := int(math.Floor(phase * ageDayScale))

	b := bucketForAge(age)

	daysToFull := fullMoonAge - age
	if age >= fullMoonAge {
		daysToFull = (30 - age) + fullMoonAge
	}

	return MoonPhase{
		Name:         b.name,
		Illumination: illum,
		AgeDays:      age,
		Waxing:       b.waxing,
		NextPhase:    b.next,
		DaysToNext:   b.milestone - age,
		DaysToFull:   daysToFull,
	}
}

func bucketForAge(age int) phaseBucket {
	for _, b := range phaseBuckets {
		if age <= b.maxAge {
			return b
		}
	}
	// age is clamped to [0, 29] by construction; the last bucket covers 29.
	return phaseBuckets[len(phaseBuckets)-1]
}
