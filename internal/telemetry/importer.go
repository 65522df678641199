package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neoverse/academy-backend/internal/types"
)

// The export schema is fixed: 16 columns, in this order.
const expectedColumns = 16

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ImportResult accumulates per-row outcomes so one malformed row does not
// abort the whole batch.
type ImportResult struct {
	TotalProcessed int
	Imported       []*types.NeoverseLog
	Errors         []string
}

// ReadFile parses a NeoVerse gameplay log export. The first row is treated
// as a header when its first cell is not a data value.
func ReadFile(path string) (*ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return Read(file)
}

func Read(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++
		if line == 1 && isHeaderRow(row) {
			continue
		}
		result.TotalProcessed++
		log, err := parseRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		result.Imported = append(result.Imported, log)
	}
	return result, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "player_id")
}

func parseRow(row []string) (*types.NeoverseLog, error) {
	if len(row) != expectedColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", expectedColumns, len(row))
	}
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}
	if row[0] == "" {
		return nil, fmt.Errorf("player_id is empty")
	}

	timestamp, err := parseTimestamp(row[1])
	if err != nil {
		return nil, err
	}

	log := &types.NeoverseLog{
		PlayerID:        row[0],
		Timestamp:       timestamp,
		PlayerRank:      row[6],
		TeamAffiliation: row[7],
		VIPStatus:       row[8],
	}

	floatFields := []struct {
		idx  int
		name string
		dst  *float64
	}{
		{2, "hours_played", &log.HoursPlayed},
		{3, "money_spent", &log.MoneySpent},
		{4, "criminal_score", &log.CriminalScore},
		{9, "cash_on_hand", &log.CashOnHand},
		{10, "sync_stability", &log.SyncStability},
		{11, "quest_exploit_score", &log.QuestExploitScore},
		{14, "transaction_amount", &log.TransactionAmount},
		{15, "neural_link_stability", &log.NeuralLinkStability},
	}
	for _, f := range floatFields {
		v, err := parseFloat(row[f.idx], f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	intFields := []struct {
		idx  int
		name string
		dst  *int
	}{
		{5, "missions_completed", &log.MissionsCompleted},
		{12, "player_level", &log.PlayerLevel},
		{13, "dark_market_transactions", &log.DarkMarketTransactions},
	}
	for _, f := range intFields {
		v, err := parseInt(row[f.idx], f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return log, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

func parseFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func parseInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}
