package postgres

import (
	"time"

	"github.com/fithub-app/fithub-api/internal/metrics"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// observe records a store operation; call it deferred with a pointer to the
// method's named error result.
func observe(operation, table string, start time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), e)
}
