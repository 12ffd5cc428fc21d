package store

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/i474232898/weather-data-cleaning/internal/weather"
)

const parquetParallelism = 1

// ParquetRow is the on-disk layout of one cleaned row.
type ParquetRow struct {
	DateTime     int64    `parquet:"name=DateTime, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	TemperatureC *float64 `parquet:"name=Temperature_C, type=DOUBLE, repetitiontype=OPTIONAL"`
	Condition    *string  `parquet:"name=Condition, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	HumidityPerc *float64 `parquet:"name=Humidity_perc, type=DOUBLE, repetitiontype=OPTIONAL"`
	WindSpeedKph *float64 `parquet:"name=WindSpeed_kph, type=DOUBLE, repetitiontype=OPTIONAL"`
	FeelsLikeC   *float64 `parquet:"name=FeelsLike_C, type=DOUBLE, repetitiontype=OPTIONAL"`
	City         *string  `parquet:"name=City, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	PostalCode   *string  `parquet:"name=PostalCode, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

func toParquetRow(r weather.Row) ParquetRow {
	return ParquetRow{
		DateTime:     r.DateTime.UnixMilli(),
		TemperatureC: r.TemperatureC,
		Condition:    r.Condition,
		HumidityPerc: r.HumidityPerc,
		WindSpeedKph: r.WindSpeedKph,
		FeelsLikeC:   r.FeelsLikeC,
		City:         r.City,
		PostalCode:   r.PostalCode,
	}
}

func writeParquet(path string, table weather.Table) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := fw.Close(); err == nil {
			err = cErr
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(ParquetRow), parquetParallelism)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, r := range table {
		if err := pw.Write(toParquetRow(r)); err != nil {
			return err
		}
	}
	return pw.WriteStop()
}
