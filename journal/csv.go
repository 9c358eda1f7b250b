package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CSVJournal writes runs.csv, trades.csv and equity.csv into a directory.
type CSVJournal struct {
	runs, trades, equity *csv.Writer
	files                []*os.File
}

func NewCSV(dir string) (*CSVJournal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	j := &CSVJournal{}
	for _, out := range []struct {
		name   string
		header []string
		dst    **csv.Writer
	}{
		{"runs.csv", []string{"run_id", "name", "strategy", "instrument", "start", "end", "net_pl", "trades", "transactions", "final_equity", "error"}, &j.runs},
		{"trades.csv", []string{"trade_id", "run_id", "instrument", "quantity", "entry_price", "exit_price", "open_time", "close_time", "realized_pl", "reason"}, &j.trades},
		{"equity.csv", []string{"run_id", "time", "equity"}, &j.equity},
	} {
		f, err := os.Create(filepath.Join(dir, out.name))
		if err != nil {
			j.Close()
			return nil, err
		}
		j.files = append(j.files, f)
		w := csv.NewWriter(f)
		if err := w.Write(out.header); err != nil {
			j.Close()
			return nil, err
		}
		*out.dst = w
	}
	return j, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	j.runs.Write([]string{
		r.RunID, r.Name, r.Strategy, r.Instrument,
		r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339),
		f(r.NetPL), strconv.Itoa(r.Trades), strconv.Itoa(r.Transactions),
		f(r.FinalEquity), r.Error,
	})
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	j.trades.Write([]string{
		t.TradeID, t.RunID, t.Instrument,
		f(t.Quantity), f(t.EntryPrice), f(t.ExitPrice),
		t.OpenTime.Format(time.RFC3339), t.CloseTime.Format(time.RFC3339),
		f(t.RealizedPL), t.Reason,
	})
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordEquity(e EquityRecord) error {
	j.equity.Write([]string{e.RunID, e.Time.Format(time.RFC3339), f(e.Equity)})
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	var firstErr error
	for _, f := range j.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
