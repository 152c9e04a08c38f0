package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
)

// RunReport is one algorithm's result in a bench report.
type RunReport struct {
	Algorithm   string             `json:"algorithm"`
	Seed        int64              `json:"seed"`
	Comparisons int                `json:"comparisons"`
	Swaps       int                `json:"swaps"`
	Writes      int                `json:"writes"`
	Metrics     map[string]float64 `json:"metrics"`
}

type Report struct {
	Size int         `json:"size"`
	Runs []RunReport `json:"runs"`
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteCSV writes one row per run. Metric columns are the union of the
// runs' metric names, sorted.
func WriteCSV(w io.Writer, r Report) error {
	names := metricNames(r.Runs)

	cw := csv.NewWriter(w)
	header := append([]string{"algorithm", "seed", "comparisons", "swaps", "writes"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, run := range r.Runs {
		row := []string{
			run.Algorithm,
			strconv.FormatInt(run.Seed, 10),
			strconv.Itoa(run.Comparisons),
			strconv.Itoa(run.Swaps),
			strconv.Itoa(run.Writes),
		}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(run.Metrics[name], 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func metricNames(runs []RunReport) []string {
	seen := make(map[string]bool)
	var names []string
	for _, run := range runs {
		for name := range run.Metrics {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
