package weather

import (
	"bytes"
	"encoding/json"
	"time"
)

// Column names of the cleaned table, in output order.
const (
	ColDateTime    = "DateTime"
	ColTemperature = "Temperature_C"
	ColCondition   = "Condition"
	ColHumidity    = "Humidity_perc"
	ColWindSpeed   = "WindSpeed_kph"
	ColFeelsLike   = "FeelsLike_C"
	ColCity        = "City"
	ColPostalCode  = "PostalCode"
)

// DefaultInterval is the resampling tick width when none is configured.
const DefaultInterval = 30 * time.Minute

// Columns lists the cleaned table header.
var Columns = []string{
	ColDateTime,
	ColTemperature,
	ColCondition,
	ColHumidity,
	ColWindSpeed,
	ColFeelsLike,
	ColCity,
	ColPostalCode,
}

// Location represents the single place a run is cleaning data for.
// City/PostalCode must be provided.
type Location struct {
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal" validate:"required"`
}

// Key returns a canonical string key for log fields.
func (l Location) Key() string {
	return l.City + ":" + l.PostalCode
}

// Field is a JSON value that remembers whether its key was present at all
// and whether it held null.
type Field[T any] struct {
	Value   T
	Present bool
	Valid   bool
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key exists.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Ptr returns a copy of the value, or nil when it was null or absent.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// RawForecast mirrors the WeatherAPI.com forecast document we read from disk.
type RawForecast struct {
	Forecast *struct {
		ForecastDay []RawForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// RawForecastDay holds the hourly observations of one forecast day.
type RawForecastDay struct {
	Hour []RawHour `json:"hour"`
}

// RawHour is one hourly observation as delivered by the provider.
type RawHour struct {
	Time       Field[string]           `json:"time"`
	TempC      Field[float64]          `json:"temp_c"`
	Condition  Field[RawConditionText] `json:"condition"`
	Humidity   Field[float64]          `json:"humidity"`
	WindKph    Field[float64]          `json:"wind_kph"`
	FeelsLikeC Field[float64]          `json:"feelslike_c"`
}

// RawConditionText is the nested condition object of an hourly record.
type RawConditionText struct {
	Text Field[string] `json:"text"`
}

// Row is one tick of the cleaned series. Nil fields are gaps that could not be filled.
type Row struct {
	DateTime     time.Time
	TemperatureC *float64
	Condition    *string
	HumidityPerc *float64
	WindSpeedKph *float64
	FeelsLikeC   *float64
	City         *string
	PostalCode   *string
}

// Table is the cleaned, regularly spaced series ordered by DateTime ascending.
type Table []Row
