// Package noaa implements queries to NOAA CO-OPS to retrieve tide data.
// Data is requested one station and one calendar day at a time, either as
// the quarter-hour prediction series or as verified water level
// observations. All times are station local and heights are meters above
// MLLW.
package noaa
