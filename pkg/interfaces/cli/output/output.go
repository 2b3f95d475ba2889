package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecotrace/composition/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate creates output in the specified format
func Generate(result *dto.ConfirmationResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.ConfirmationResult, config Config) error {
	fmt.Printf("📊 Composition Summary\n")
	fmt.Printf("======================\n\n")

	fmt.Printf("Output Order: %s\n", result.OutputOrderID)
	fmt.Printf("Target Quantity: %s %s\n", result.TargetQuantity, result.Unit)
	fmt.Printf("Materials: %d\n", result.Summary.TotalMaterials)
	fmt.Printf("Total Quantity: %s %s\n", result.Summary.TotalQuantity, result.Unit)
	fmt.Printf("Total Percentage: %s%%\n", result.Summary.TotalPercentage)
	fmt.Printf("Unique Suppliers: %d\n", result.Summary.UniqueSuppliers)
	fmt.Printf("Complete: %v\n", result.Summary.IsComplete)
	fmt.Printf("Valid: %v\n\n", result.Validation.IsValid)

	if len(result.Materials) > 0 {
		fmt.Printf("📋 Declared Materials:\n")
		fmt.Printf("%-15s %-20s %-18s %12s %10s %-12s\n",
			"Source Order", "Product", "Supplier", "Quantity", "Percent", "Lot")
		fmt.Printf("%-15s %-20s %-18s %12s %10s %-12s\n",
			"---------------", "--------------------", "------------------",
			"------------", "----------", "------------")

		for _, m := range result.Materials {
			fmt.Printf("%-15s %-20s %-18s %12s %10s %-12s\n",
				m.SourceOrderID,
				m.ProductName,
				m.SupplierName,
				m.QuantityUsed,
				m.PercentageContribution,
				m.LotNumber)
		}
		fmt.Println()
	}

	printList("❌ Errors:", result.Validation.Errors)
	printList("⚠️  Warnings:", result.Validation.Warnings)
	printList("💡 Suggestions:", result.Validation.Suggestions)

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results directory: %s\n", config.OutputDir)
		}
	}

	return nil
}

func printList(header string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Println(header)
	for _, line := range lines {
		fmt.Printf("  - %s\n", line)
	}
	fmt.Println()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.ConfirmationResult, config Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "composition_result.json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the (possibly rebalanced) materials back out as CSV
func generateCSVOutput(result *dto.ConfirmationResult, config Config) error {
	var file *os.File
	var err error

	if config.OutputDir == "" {
		file = os.Stdout
	} else {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "composition_materials.csv")
		file, err = os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create CSV output: %w", err)
		}
		defer file.Close()

		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"source_order_id", "product_name", "supplier_name", "quantity_used",
		"unit", "percentage_contribution", "received_date", "lot_number",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range result.Materials {
		receivedDate := ""
		if !m.ReceivedDate.IsZero() {
			receivedDate = m.ReceivedDate.Format("2006-01-02")
		}
		record := []string{
			m.SourceOrderID,
			m.ProductName,
			m.SupplierName,
			m.QuantityUsed.String(),
			m.Unit,
			m.PercentageContribution.String(),
			receivedDate,
			m.LotNumber,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}
