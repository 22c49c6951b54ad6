package repositories

import (
	"context"

	"github.com/fegundez/maqtrack/internal/core/domain"
)

// ManagementRecordReader defines read operations for the consolidated
// management view. The rows are maintained upstream; there is no writer.
type ManagementRecordReader interface {
	// ListManagementRecords retrieves records matching the filter.
	ListManagementRecords(ctx context.Context, filter domain.ConsolidationFilter) ([]domain.ManagementRecord, error)
}

// ManagementRecordRepositoryFacade is the full management record repository surface.
type ManagementRecordRepositoryFacade interface {
	ManagementRecordReader
}
