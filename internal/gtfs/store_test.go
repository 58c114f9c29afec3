package gtfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedFeed() map[string]string {
	return map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,Catedral,10.98,-74.80\n" +
			"S2,Joe Arroyo,10.99,-74.79\n" +
			"S3,Romelio Martinez,11.00,-74.78\n",
		"routes.txt": "route_id,route_short_name,route_long_name\n" +
			"R1,A1,Portal - Catedral\n",
		"trips.txt": "trip_id,route_id\n" +
			"T1,R1\n" +
			"T2,R1\n",
		// T1 rows are deliberately out of sequence order.
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
			"T1,S3,3,08:20:00,08:21:00\n" +
			"T1,S1,1,08:00:00,08:00:00\n" +
			"T1,S2,2,08:10:00,08:11:00\n" +
			"T2,S1,1,09:00:00,09:00:00\n" +
			"T2,S3,2,09:30:00,09:31:00\n",
	}
}

func TestStore_StopTimesForTrip(t *testing.T) {
	store, err := Load(writeFeedDir(t, indexedFeed()))
	require.NoError(t, err)

	times := store.StopTimesForTrip("T1")
	require.Len(t, times, 3)
	assert.Equal(t, []string{"S1", "S2", "S3"}, []string{times[0].StopID, times[1].StopID, times[2].StopID})
	assert.Equal(t, 1, times[0].Sequence)

	assert.Empty(t, store.StopTimesForTrip("no-such-trip"))
}

func TestStore_TripIDsForStop(t *testing.T) {
	store, err := Load(writeFeedDir(t, indexedFeed()))
	require.NoError(t, err)

	assert.Equal(t, []string{"T1", "T2"}, store.TripIDsForStop("S1"))
	assert.Equal(t, []string{"T1"}, store.TripIDsForStop("S2"))
	assert.Empty(t, store.TripIDsForStop("no-such-stop"))
}

func TestStore_StopTimeAt(t *testing.T) {
	store, err := Load(writeFeedDir(t, indexedFeed()))
	require.NoError(t, err)

	st, ok := store.StopTimeAt("T1", "S2")
	require.True(t, ok)
	assert.Equal(t, "08:11:00", st.Departure)

	_, ok = store.StopTimeAt("T2", "S2")
	assert.False(t, ok)
}

func TestStore_Lookups(t *testing.T) {
	store, err := Load(writeFeedDir(t, indexedFeed()))
	require.NoError(t, err)

	trip, ok := store.TripByID("T2")
	require.True(t, ok)
	assert.Equal(t, "R1", trip.RouteID)

	route, ok := store.RouteByID("R1")
	require.True(t, ok)
	assert.Equal(t, "A1", route.ShortName)

	stop, ok := store.StopByID("S3")
	require.True(t, ok)
	assert.Equal(t, "Romelio Martinez", stop.Name)

	_, ok = store.RouteByID("R9")
	assert.False(t, ok)
}
