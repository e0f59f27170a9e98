package repository

import (
	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSummaryToCSV(summary entity.BatchSummary, filename, outputDir string) (string, error)
	ExportSummaryToJSON(summary entity.BatchSummary, filename, outputDir string) (string, error)
	ExportSummaryToPDF(summary entity.BatchSummary, filename, outputDir string) (string, error)
}
