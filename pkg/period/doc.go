// Package period classifies, validates, orders and translates the period
// labels attached to newspaper issues.
//
// A period is either one of four Czech season names (jaro, léto, podzim,
// zima, in that order) or a month range "start-end" with both months in
// 1–12. Seasons compare only with seasons and month ranges only with month
// ranges; month ranges order by start month, then end month.
//
// All functions are pure and safe for concurrent use. Failures are returned as
// *PeriodError values wrapping one of the Err* sentinels.
package period
