package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
)

// Loader handles loading declared input materials from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var materialsHeader = []string{
	"source_order_id", "product_name", "supplier_name", "quantity_used",
	"unit", "percentage_contribution", "received_date", "lot_number",
}

// LoadMaterials loads material declarations from a CSV file. Rows are
// parsed, not validated: incomplete declarations (empty names, zero
// quantities) load fine and are surfaced later by composition validation.
// Material IDs are left empty for the caller to assign.
func (l *Loader) LoadMaterials(filename string) ([]*entities.InputMaterial, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open materials file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read materials CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("materials CSV must have a header row")
	}

	if !validateHeader(records[0], materialsHeader) {
		return nil, fmt.Errorf("materials CSV header mismatch. Expected: %v, Got: %v", materialsHeader, records[0])
	}

	var materials []*entities.InputMaterial
	for i, record := range records[1:] {
		if len(record) != len(materialsHeader) {
			return nil, fmt.Errorf("materials CSV row %d: expected %d columns, got %d", i+2, len(materialsHeader), len(record))
		}

		material, err := parseMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}

		materials = append(materials, &material)
	}

	return materials, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseMaterial(record []string) (entities.InputMaterial, error) {
	quantityUsed, err := parseOptionalDecimal(record[3])
	if err != nil {
		return entities.InputMaterial{}, fmt.Errorf("invalid quantity_used: %s", record[3])
	}

	percentage, err := parseOptionalDecimal(record[5])
	if err != nil {
		return entities.InputMaterial{}, fmt.Errorf("invalid percentage_contribution: %s", record[5])
	}

	var receivedDate time.Time
	if strings.TrimSpace(record[6]) != "" {
		receivedDate, err = time.Parse("2006-01-02", record[6])
		if err != nil {
			return entities.InputMaterial{}, fmt.Errorf("invalid received_date format: %s (expected YYYY-MM-DD)", record[6])
		}
	}

	return entities.InputMaterial{
		SourceOrderID:          record[0],
		ProductName:            record[1],
		SupplierName:           record[2],
		QuantityUsed:           quantityUsed,
		Unit:                   record[4],
		PercentageContribution: percentage,
		ReceivedDate:           receivedDate,
		LotNumber:              record[7],
	}, nil
}

// parseOptionalDecimal treats an empty cell as zero: a material may be
// declared before its numbers are back-filled.
func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
