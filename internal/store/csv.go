package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

const (
	csvTimeLayout = "2006-01-02 15:04:05"
	fileMode      = 0o644
)

func writeCSV(path string, table weather.Table) (err error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); err == nil {
			err = cErr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(weather.Columns); err != nil {
		return err
	}
	for _, r := range table {
		if err := w.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func csvRecord(r weather.Row) []string {
	return []string{
		r.DateTime.Format(csvTimeLayout),
		formatFloat(r.TemperatureC),
		formatString(r.Condition),
		formatFloat(r.HumidityPerc),
		formatFloat(r.WindSpeedKph),
		formatFloat(r.FeelsLikeC),
		formatString(r.City),
		formatString(r.PostalCode),
	}
}

// formatFloat renders values with one decimal; gaps become empty cells.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
