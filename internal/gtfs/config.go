package gtfs

// Config holds the schedule-related settings for the service.
type Config struct {
	// StaticPath points at the feed: either a GTFS zip archive or a
	// directory containing the extracted .txt tables.
	StaticPath string
}
