package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"
)

// Load parses a static feed into a Store. The source may be either a GTFS zip
// archive or a directory holding the extracted .txt tables. The four tables of
// the feed contract (stops, trips, routes, stop_times) are required; any other
// file in the feed is ignored.
func Load(source string) (*Store, error) {
	fsys, closer, err := openFeed(source)
	if err != nil {
		return nil, &FeedLoadError{Source: source, Err: err}
	}
	if closer != nil {
		defer closer.Close()
	}

	store := &Store{}

	if err := readTable(fsys, "stops.txt", []string{"stop_id", "stop_name", "stop_lat", "stop_lon"}, func(get func(string) string) error {
		lat, err := parseCoordinate("stops", "stop_lat", get("stop_lat"))
		if err != nil {
			return err
		}
		lon, err := parseCoordinate("stops", "stop_lon", get("stop_lon"))
		if err != nil {
			return err
		}
		store.Stops = append(store.Stops, Stop{
			ID:   get("stop_id"),
			Name: get("stop_name"),
			Lat:  lat,
			Lon:  lon,
		})
		return nil
	}); err != nil {
		return nil, wrapTableError(source, "stops.txt", err)
	}

	if err := readTable(fsys, "routes.txt", []string{"route_id"}, func(get func(string) string) error {
		store.Routes = append(store.Routes, Route{
			ID:        get("route_id"),
			ShortName: get("route_short_name"),
			LongName:  get("route_long_name"),
		})
		return nil
	}); err != nil {
		return nil, wrapTableError(source, "routes.txt", err)
	}

	if err := readTable(fsys, "trips.txt", []string{"trip_id", "route_id"}, func(get func(string) string) error {
		store.Trips = append(store.Trips, Trip{
			ID:      get("trip_id"),
			RouteID: get("route_id"),
		})
		return nil
	}); err != nil {
		return nil, wrapTableError(source, "trips.txt", err)
	}

	if err := readTable(fsys, "stop_times.txt", []string{"trip_id", "stop_id", "stop_sequence"}, func(get func(string) string) error {
		raw := get("stop_sequence")
		seq, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return &DataTypeError{Table: "stop_times", Column: "stop_sequence", Value: raw}
		}
		store.StopTimes = append(store.StopTimes, StopTime{
			TripID:    get("trip_id"),
			StopID:    get("stop_id"),
			Sequence:  seq,
			Arrival:   get("arrival_time"),
			Departure: get("departure_time"),
		})
		return nil
	}); err != nil {
		return nil, wrapTableError(source, "stop_times.txt", err)
	}

	store.buildIndexes()
	return store, nil
}

// openFeed returns a file system rooted at the feed contents. Zip archives
// and plain directories are both accepted, mirroring how feeds ship in
// practice (a downloaded .zip or an unpacked working copy).
func openFeed(source string) (fs.FS, io.Closer, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return os.DirFS(source), nil, nil
	}
	zr, err := zip.OpenReader(source)
	if err != nil {
		return nil, nil, fmt.Errorf("open zip: %w", err)
	}
	return feedZipFS{&zr.Reader}, zr, nil
}

// feedZipFS resolves table names anywhere inside the archive, since some
// agencies publish zips with the .txt files under a top-level folder.
type feedZipFS struct {
	reader *zip.Reader
}

func (z feedZipFS) Open(name string) (fs.File, error) {
	for _, f := range z.reader.File {
		if path.Base(f.Name) == name {
			return z.reader.Open(f.Name)
		}
	}
	return nil, fs.ErrNotExist
}

// readTable streams one CSV table, mapping columns by header name. The row
// callback receives a getter that returns "" for columns the feed omits.
func readTable(fsys fs.FS, name string, required []string, row func(get func(string) string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("required table is missing")
		}
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(stripBOM(col))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("required column %q is missing", col)
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		if err := row(get); err != nil {
			return err
		}
	}
	return nil
}

func parseCoordinate(table, column, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &DataTypeError{Table: table, Column: column, Value: raw}
	}
	return v, nil
}

// wrapTableError keeps DataTypeError visible to callers while attributing
// everything else to the table that failed.
func wrapTableError(source, table string, err error) error {
	var dataErr *DataTypeError
	if errors.As(err, &dataErr) {
		return dataErr
	}
	return &FeedLoadError{Source: source, Table: table, Err: err}
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
