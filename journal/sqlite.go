package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, name, strategy, instrument, start, end, net_pl, trades, transactions, final_equity, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Name, r.Strategy, r.Instrument, r.Start, r.End,
		r.NetPL, r.Trades, r.Transactions, r.FinalEquity, r.Error,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, instrument, quantity, entry_price, exit_price, open_time, close_time, realized_pl, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Instrument, t.Quantity, t.EntryPrice,
		t.ExitPrice, t.OpenTime, t.CloseTime, t.RealizedPL, t.Reason,
	)
	return err
}

func (j *SQLiteJournal) RecordEquity(e EquityRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO equity (run_id, time, equity) VALUES (?, ?, ?)`,
		e.RunID, e.Time, e.Equity,
	)
	return err
}

// ListTradesByRun returns the trades recorded for one run, oldest first.
func (j *SQLiteJournal) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, run_id, instrument, quantity, entry_price, exit_price,
		       open_time, close_time, realized_pl, reason
		FROM trades WHERE run_id = ? ORDER BY close_time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.TradeID, &t.RunID, &t.Instrument, &t.Quantity,
			&t.EntryPrice, &t.ExitPrice, &t.OpenTime, &t.CloseTime,
			&t.RealizedPL, &t.Reason); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListRuns returns all recorded run summaries, oldest run ID first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, name, strategy, instrument, start, end, net_pl,
		       trades, transactions, final_equity, error
		FROM runs ORDER BY run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.RunID, &r.Name, &r.Strategy, &r.Instrument,
			&r.Start, &r.End, &r.NetPL, &r.Trades, &r.Transactions,
			&r.FinalEquity, &r.Error); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
