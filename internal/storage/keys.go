package storage

import (
	"path"

	"github.com/google/uuid"
)

// ChartKey builds the object key {prefix}/{runID}/{name} for a published chart
func ChartKey(prefix string, runID uuid.UUID, name string) string {
	return path.Join(prefix, runID.String(), path.Base(name))
}
