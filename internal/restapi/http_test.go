package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/melendez-dev/transmetro-gtfs/internal/app"
	"github.com/melendez-dev/transmetro-gtfs/internal/appconf"
	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/logging"
	"github.com/melendez-dev/transmetro-gtfs/internal/metrics"
)

func testFeed() map[string]string {
	return map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,Catedral,10.98,-74.80\n" +
			"S2,Joe Arroyo,10.99,-74.79\n" +
			"S3,Romelio Martinez,11.00,-74.78\n",
		"routes.txt": "route_id,route_short_name,route_long_name\n" +
			"R1,A1,Portal - Catedral\n",
		"trips.txt": "trip_id,route_id\nT1,R1\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence,arrival_time,departure_time\n" +
			"T1,S1,1,08:00:00,08:00:00\n" +
			"T1,S2,2,08:07:00,08:08:00\n" +
			"T1,S3,3,08:15:00,08:16:00\n",
	}
}

func emptyFeed() map[string]string {
	return map[string]string{
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\n",
		"routes.txt":     "route_id\n",
		"trips.txt":      "trip_id,route_id\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\n",
	}
}

// createTestApi builds a RestAPI backed by the given feed tables, with rate
// limiting disabled.
func createTestApi(t *testing.T, tables map[string]string) *RestAPI {
	t.Helper()

	dir := t.TempDir()
	for name, contents := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
	}
	store, err := gtfs.Load(dir)
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			RateLimit: -1,
		},
		GtfsConfig: gtfs.Config{StaticPath: dir},
		Logger:     logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Store:      store,
		Metrics:    metrics.NewCollector(),
	}
	return NewRestAPI(application)
}

// postJSON serves the API via httptest, posts the body and decodes the
// response into out.
func postJSON(t *testing.T, api *RestAPI, endpoint string, body any, out any) *http.Response {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

// getJSON serves the API via httptest, issues a GET and decodes the response
// into out.
func getJSON(t *testing.T, api *RestAPI, endpoint string, out any) *http.Response {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}
