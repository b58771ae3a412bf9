package astro

// GreenwichMeanSiderealTime returns GMST in degrees for the given Julian Day.
// Uses the IAU 1982 polynomial:
//
//	GMST = 280.46061837 + 360.98564736629*(JD-2451545) + 0.000387933*T^2 - T^3/38710000
//
// where T is Julian centuries since J2000.0.
func GreenwichMeanSiderealTime(jd float64) float64 {
	T := JulianCenturies(jd)

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize360(gmst)
}

// LocalSiderealTime returns the local sidereal time in degrees [0, 360)
// for the given Julian Day and observer longitude (east positive).
func LocalSiderealTime(jd, lonDeg float64) float64 {
	return Normalize360(GreenwichMeanSiderealTime(jd) + lonDeg)
}
