package planner

import (
	"strconv"
	"strings"

	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
)

const minutesPerDay = 24 * 60

// TravelTime computes the scheduled duration in minutes between departing the
// origin stop and arriving at the destination stop on one trip. It returns nil
// when the trip lacks a stop time at either stop or when either time field is
// absent or malformed; missing schedule detail is common in real feeds and is
// never an error.
func TravelTime(store *gtfs.Store, tripID, originStopID, destStopID string) *float64 {
	originTime, ok := store.StopTimeAt(tripID, originStopID)
	if !ok {
		return nil
	}
	destTime, ok := store.StopTimeAt(tripID, destStopID)
	if !ok {
		return nil
	}

	departure, ok := timeToMinutes(originTime.Departure)
	if !ok {
		return nil
	}
	arrival, ok := timeToMinutes(destTime.Arrival)
	if !ok {
		return nil
	}

	duration := arrival - departure
	if duration < 0 {
		// Overnight trips record post-midnight arrivals relative to the
		// service day; a naive same-day subtraction goes negative.
		duration += minutesPerDay
	}
	return &duration
}

// timeToMinutes converts a GTFS wall-clock string ("HH:MM:SS", hours may
// exceed 24) to minutes since midnight with fractional seconds preserved.
// Anything that does not conform yields ok == false.
func timeToMinutes(raw string) (float64, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return float64(hours)*60 + float64(minutes) + float64(seconds)/60, true
}
