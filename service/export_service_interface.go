package service

import "context"

// ExportServiceInterface defines the contract for list export
type ExportServiceInterface interface {
	ExportListPDF(ctx context.Context, listID int64, actorID string) ([]byte, error)
}
