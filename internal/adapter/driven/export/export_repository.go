package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/valorant-launcher-go/internal/domain/entity"
	"github.com/diillson/valorant-launcher-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Funções de Exportação do Resumo do Lote ---

func (r *ExportRepositoryImpl) ExportSummaryToCSV(summary entity.BatchSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"Account ID", "Config File", "Status", "Changed", "Reason", "Verified Values"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range summary.PerProfile {
		record := []string{
			row.AccountID,
			row.FilePath,
			string(row.Status),
			strconv.FormatBool(row.Changed),
			row.Reason,
			strings.Join(row.VerifyLines, "\n"),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToJSON(summary entity.BatchSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(summary entity.BatchSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	title := "  VALORANT Config Update"
	if summary.DryRun {
		title += " (dry run)"
	}
	pdf.CellFormat(0, 12, tr(title), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	counts := fmt.Sprintf("  Updated: %d   Failed: %d   Changed: %d", summary.Updated, summary.Failed, summary.Changed())
	pdf.CellFormat(0, 8, tr(counts), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	colWidths := []float64{50, 25, 20, 95}
	headers := []string{"Account ID", "Status", "Changed", "Details"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range summary.PerProfile {
		details := row.Reason
		if details == "" {
			details = strings.Join(row.VerifyLines, "\n")
		}
		if details == "" {
			details = "-"
		}

		lines := pdf.SplitLines([]byte(tr(details)), colWidths[3])
		rowHeight := float64(len(lines)) * 5
		if rowHeight < 6 {
			rowHeight = 6
		}
		if pdf.GetY()+rowHeight > 270 {
			pdf.AddPage()
		}

		x, y := pdf.GetXY()
		pdf.CellFormat(colWidths[0], rowHeight, tr(row.AccountID), "B", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], rowHeight, tr(string(row.Status)), "B", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, strconv.FormatBool(row.Changed), "B", 0, "L", false, 0, "")
		pdf.SetXY(x+colWidths[0]+colWidths[1]+colWidths[2], y)
		pdf.MultiCell(colWidths[3], 5, tr(details), "B", "L", false)
		pdf.SetXY(x, y+rowHeight)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by VALORANT Launcher (Go) | %s", r.now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
