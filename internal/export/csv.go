package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/dbmsviz/internal/metrics"
)

// StatsToCSV writes recorded frames with a header row.
func StatsToCSV(w io.Writer, frames []metrics.FrameStat) error {
	if len(frames) == 0 {
		return nil
	}
	return gocsv.Marshal(frames, w)
}
