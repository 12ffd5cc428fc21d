package weather

import "errors"

var (
	// ErrNotFound is returned when no raw forecast file is available.
	ErrNotFound = errors.New("no raw forecast file found")
	// ErrIO covers filesystem failures other than a missing input.
	ErrIO = errors.New("filesystem error")
	// ErrConfig is returned for a missing or malformed location config.
	ErrConfig = errors.New("invalid location config")
	// ErrParse is returned when the raw document cannot be read or decoded.
	ErrParse = errors.New("unreadable raw forecast")
	// ErrShape is returned when the raw document lacks the expected fields.
	ErrShape = errors.New("unexpected raw forecast shape")
	// ErrWrite is returned when an output file could not be written.
	ErrWrite = errors.New("failed to write cleaned data")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrNotFound, "not_found"},
	{ErrIO, "io"},
	{ErrConfig, "config"},
	{ErrParse, "parse"},
	{ErrShape, "shape"},
	{ErrWrite, "write"},
}

// KindOf names the failure class of err for log fields.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}
