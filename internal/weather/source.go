package weather

// Source abstracts where a run's inputs come from (e.g. the raw-data directory on disk).
type Source interface {
	// FindLatest returns the path of the newest raw forecast document.
	FindLatest() (string, error)
	// LoadRaw decodes the raw forecast document at path.
	LoadRaw(path string) (*RawForecast, error)
	// LoadLocation reads the location the forecast belongs to.
	LoadLocation() (Location, error)
}

// Store is the contract for persisting a cleaned table.
type Store interface {
	Save(table Table) (Paths, error)
}

// Paths are the files written for one cleaned table.
type Paths struct {
	CSV     string
	Parquet string
}
