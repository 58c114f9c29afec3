package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
)

// loadTestStore writes the given feed tables to a temp directory and loads
// them into a store.
func loadTestStore(t *testing.T, tables map[string]string) *gtfs.Store {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	store, err := gtfs.Load(dir)
	require.NoError(t, err)
	return store
}

// cityFeed is a small feed with three routes between Catedral (S1) and
// Romelio Martinez (S3):
//   - R1 has two timed trips (15 and 25 minutes), passing Joe Arroyo (S2).
//   - R2 runs the opposite direction (S3 before S1).
//   - R3 connects them without any schedule times.
func cityFeed() map[string]string {
	return map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,Catedral,10.98,-74.80\n" +
			"S2,Joe Arroyo,10.99,-74.79\n" +
			"S3,Romelio Martinez,11.00,-74.78\n" +
			"S4,La Arenosa,11.01,-74.77\n",
		"routes.txt": "route_id,route_short_name,route_long_name\n" +
			"R1,A1,Portal - Catedral\n" +
			"R2,,\n" +
			"R3,B2,Circunvalar\n",
		"trips.txt": "trip_id,route_id\n" +
			"T1,R1\n" +
			"T2,R1\n" +
			"T3,R2\n" +
			"T4,R3\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
			"T1,S1,1,08:00:00,08:00:00\n" +
			"T1,S2,2,08:07:00,08:08:00\n" +
			"T1,S3,3,08:15:00,08:16:00\n" +
			"T2,S1,1,09:00:00,09:00:00\n" +
			"T2,S2,2,09:12:00,09:13:00\n" +
			"T2,S3,3,09:25:00,09:26:00\n" +
			"T3,S3,1,10:00:00,10:00:00\n" +
			"T3,S1,2,10:20:00,10:21:00\n" +
			"T4,S1,1,,\n" +
			"T4,S4,2,,\n" +
			"T4,S3,3,,\n",
	}
}
