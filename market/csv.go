package market

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// LoadCSV reads a bar series from a CSV file with columns
// time,open,high,low,close[,volume]. A header row is skipped if present.
// Files ending in .xz, .lzma or .gz are decompressed transparently, so
// archived data feeds can be replayed without unpacking them first.
func LoadCSV(path, instrument string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("market: open %s: %w", path, err)
	}

	return ReadCSV(r, instrument)
}

func decompress(f *os.File, path string) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return xz.NewReader(f)
	case ".lzma":
		return lzma.NewReader(f)
	case ".gz":
		return gzip.NewReader(f)
	default:
		return f, nil
	}
}

// ReadCSV parses bar rows from r. Rows must already be in time order;
// NewSeries rejects duplicates and out-of-order rows.
func ReadCSV(r io.Reader, instrument string) (*Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var bars []Bar
	line := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if line == 1 && isHeader(row) {
			continue
		}
		if len(row) == 0 {
			continue
		}

		b, err := parseBarRow(row)
		if err != nil {
			return nil, fmt.Errorf("market: line %d: %w", line, err)
		}
		bars = append(bars, b)
	}

	return NewSeries(instrument, bars)
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "time")
}

func parseBarRow(row []string) (Bar, error) {
	if len(row) < 5 {
		return Bar{}, fmt.Errorf("need at least 5 cols time,open,high,low,close: %v", row)
	}

	ts := strings.TrimSpace(row[0])
	t, err := parseTime(ts)
	if err != nil {
		return Bar{}, fmt.Errorf("bad time %q: %w", ts, err)
	}

	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad price %q: %w", row[i+1], err)
		}
		vals[i] = v
	}

	b := Bar{Time: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}

	if len(row) >= 6 && strings.TrimSpace(row[5]) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("bad volume %q: %w", row[5], err)
		}
		b.Volume = v
	}
	return b, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp layout")
}
