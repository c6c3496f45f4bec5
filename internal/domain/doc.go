// Package domain models NOAA Space Weather Prediction Center (SWPC)
// real-time solar wind plasma data.
//
// # Data Source
//
// Plasma measurements come from the DSCOVR spacecraft at the L1 Lagrange
// point and are published by SWPC as a rolling JSON product, e.g.
// https://services.swpc.noaa.gov/products/solar-wind/plasma-1-day.json.
// The product is refreshed every minute and covers the last 24 hours.
//
// # Feed Conventions
//
// Layout:
//
//	[["time_tag","density","speed","temperature"],
//	 ["2024-05-10 17:00:00.000","5.21","450.1","100000"], ...]
//
// Row 0 is the header; every later row is aligned to it by position. Values
// are strings, and SWPC emits null for a gap in the instrument data.
//
// Time format:
//
//	"YYYY-MM-DD hh:mm:ss.sss" in UTC. RFC 3339 is also accepted.
//	Rows arrive in ascending time order and are not re-sorted.
//
// Units:
//
//	density      protons per cubic centimetre (p/cm³)
//	speed        bulk solar wind speed in km/s
//	temperature  proton temperature in kelvin
//
// Missing values:
//
//	A null, empty, or non-numeric cell becomes a missing field on that
//	sample only. An unparseable or out-of-order timestamp rejects the batch.
//
// # Risk Classification
//
// Risk is a pure function of the latest bulk speed:
//
//	speed > 700 km/s        CRITICAL (alert raised on every evaluation)
//	500 < speed <= 700      WARNING
//	speed <= 500            SAFE
//	speed missing           UNKNOWN
//
// # Forecast
//
// The Kp outlook is a fixed two-scenario table selected by the simulation
// flag, not by the computed risk. See [ForecastKp].
package domain
