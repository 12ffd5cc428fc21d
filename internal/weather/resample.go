package weather

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/interp"
)

var numericFields = []func(r *Row) **float64{
	func(r *Row) **float64 { return &r.TemperatureC },
	func(r *Row) **float64 { return &r.HumidityPerc },
	func(r *Row) **float64 { return &r.WindSpeedKph },
	func(r *Row) **float64 { return &r.FeelsLikeC },
}

var numericColumns = []string{ColTemperature, ColHumidity, ColWindSpeed, ColFeelsLike}

var categoricalFields = []func(r *Row) **string{
	func(r *Row) **string { return &r.Condition },
	func(r *Row) **string { return &r.City },
	func(r *Row) **string { return &r.PostalCode },
}

// resample lays rows onto a fixed grid of ticks. Ticks are counted from
// midnight of the earliest day and span floor(min) to floor(max); a row is
// kept only when its timestamp falls exactly on a tick.
func resample(rows []Row, interval time.Duration) (Table, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %s", ErrShape, interval)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	byTime := make(map[time.Time]Row, len(rows))
	minTS, maxTS := rows[0].DateTime, rows[0].DateTime
	for _, r := range rows {
		if _, dup := byTime[r.DateTime]; dup {
			return nil, fmt.Errorf("%w: duplicate timestamp %s", ErrShape, r.DateTime.Format(time.DateTime))
		}
		byTime[r.DateTime] = r
		if r.DateTime.Before(minTS) {
			minTS = r.DateTime
		}
		if r.DateTime.After(maxTS) {
			maxTS = r.DateTime
		}
	}

	origin := time.Date(minTS.Year(), minTS.Month(), minTS.Day(), 0, 0, 0, 0, minTS.Location())
	first := floorTo(minTS, origin, interval)
	last := floorTo(maxTS, origin, interval)

	table := make(Table, 0, int(last.Sub(first)/interval)+1)
	for t := first; !t.After(last); t = t.Add(interval) {
		if r, ok := byTime[t]; ok {
			table = append(table, r)
			continue
		}
		table = append(table, Row{DateTime: t})
	}
	return table, nil
}

func floorTo(t, origin time.Time, interval time.Duration) time.Time {
	return origin.Add(t.Sub(origin) / interval * interval)
}

// interpolateNumeric fills interior gaps of every numeric column linearly
// and rounds all values to one decimal. Edge gaps are left unset.
func interpolateNumeric(table Table) error {
	for c, field := range numericFields {
		if err := fillInterior(table, field); err != nil {
			return fmt.Errorf("%w: interpolate %s: %v", ErrShape, numericColumns[c], err)
		}

		for i := range table {
			if p := field(&table[i]); *p != nil {
				v := round1(**p)
				*p = &v
			}
		}
	}
	return nil
}

// fillInterior interpolates the unset cells of one column that lie between
// its first and last known values.
func fillInterior(table Table, field func(r *Row) **float64) error {
	var xs, ys []float64
	for i := range table {
		if v := *field(&table[i]); v != nil {
			xs = append(xs, float64(i))
			ys = append(ys, *v)
		}
	}
	if len(xs) < 2 {
		return nil
	}
	return fillBetween(table, field, xs, ys)
}

func fillBetween(table Table, field func(r *Row) **float64, xs, ys []float64) (err error) {
	// Fit panics on knots that are not strictly increasing.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fit: %v", r)
		}
	}()

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return err
	}
	lo, hi := int(xs[0]), int(xs[len(xs)-1])
	for i := lo + 1; i < hi; i++ {
		p := field(&table[i])
		if *p == nil {
			v := pl.Predict(float64(i))
			*p = &v
		}
	}
	return nil
}

// forwardFill propagates the last known categorical value to later gaps.
func forwardFill(table Table) {
	for _, field := range categoricalFields {
		var last *string
		for i := range table {
			p := field(&table[i])
			if *p != nil {
				last = *p
				continue
			}
			if last != nil {
				v := *last
				*p = &v
			}
		}
	}
}

// round1 rounds half to even at one decimal, matching numpy.round.
func round1(v float64) float64 {
	return scalar.RoundEven(v, 1)
}
