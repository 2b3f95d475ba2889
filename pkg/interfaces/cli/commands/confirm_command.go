package commands

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/application/services"
	"github.com/ecotrace/composition/pkg/domain/services/composition"
	"github.com/ecotrace/composition/pkg/infrastructure/config"
	"github.com/ecotrace/composition/pkg/infrastructure/events"
	csvrepo "github.com/ecotrace/composition/pkg/infrastructure/repositories/csv"
	"github.com/ecotrace/composition/pkg/infrastructure/repositories/memory"
	"github.com/ecotrace/composition/pkg/interfaces/cli/output"
)

// Config holds configuration for the confirm command
type Config struct {
	MaterialsFile   string
	OutputOrder     string
	Target          string
	Unit            string
	TolerancesFile  string
	AutoBalance     bool
	FillQuantities  bool
	FillPercentages bool
	Confirm         bool
	Format          string
	OutputDir       string
	Verbose         bool
	Help            bool
}

// ConfirmCommand validates and optionally balances a declared composition
type ConfirmCommand struct {
	config Config
}

// NewConfirmCommand creates a new confirm command with the given configuration
func NewConfirmCommand(config Config) *ConfirmCommand {
	return &ConfirmCommand{config: config}
}

// Execute runs the confirm command
func (c *ConfirmCommand) Execute() error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	targetQuantity, err := decimal.NewFromString(c.config.Target)
	if err != nil {
		return fmt.Errorf("invalid target quantity: %s", c.config.Target)
	}

	validatorConfig := composition.DefaultConfig()
	if c.config.TolerancesFile != "" {
		validatorConfig, err = config.LoadTolerances(c.config.TolerancesFile)
		if err != nil {
			return fmt.Errorf("error loading tolerances: %w", err)
		}
	}

	if c.config.Verbose {
		c.printHeader()
		fmt.Println("📂 Loading materials from CSV...")
	}

	materials, err := csvrepo.NewLoader().LoadMaterials(c.config.MaterialsFile)
	if err != nil {
		return fmt.Errorf("error loading materials: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Loaded %d material declarations\n\n", len(materials))
	}

	repo := memory.NewCompositionRepository()
	store := events.NewInMemoryEventStore()
	service := services.NewConfirmationService(
		c.config.OutputOrder,
		targetQuantity,
		c.config.Unit,
		composition.NewValidatorWithConfig(validatorConfig),
		repo,
		store,
	)
	service.ImportMaterials(materials)

	if c.config.AutoBalance {
		if c.config.Verbose {
			fmt.Println("⚖️  Auto-balancing percentage contributions...")
		}
		service.AutoBalance()
	}
	if c.config.FillQuantities {
		if c.config.Verbose {
			fmt.Println("🧮 Deriving quantities from percentages...")
		}
		service.CalculateQuantities()
	}
	if c.config.FillPercentages {
		if c.config.Verbose {
			fmt.Println("🧮 Deriving percentages from quantities...")
		}
		service.CalculatePercentages()
	}

	if err := output.Generate(service.Result(), output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Confirm {
		confirmed, err := service.Confirm()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		fmt.Printf("✅ Composition confirmed: %s\n", confirmed.ID)
	}

	return nil
}

// validateInputs validates the command configuration
func (c *ConfirmCommand) validateInputs() error {
	if c.config.MaterialsFile == "" {
		return fmt.Errorf("must specify a -materials CSV file")
	}
	if _, err := os.Stat(c.config.MaterialsFile); os.IsNotExist(err) {
		return fmt.Errorf("materials file not found: %s", c.config.MaterialsFile)
	}
	if c.config.Target == "" {
		return fmt.Errorf("must specify a -target output quantity")
	}
	if c.config.OutputOrder == "" {
		return fmt.Errorf("must specify an -order output order ID")
	}
	return nil
}

// printHeader prints the command header information
func (c *ConfirmCommand) printHeader() {
	fmt.Printf("🚀 Composition Engine CLI\n")
	fmt.Printf("Materials file: %s\n", c.config.MaterialsFile)
	fmt.Printf("Output order: %s\n", c.config.OutputOrder)
	fmt.Printf("Target quantity: %s %s\n", c.config.Target, c.config.Unit)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *ConfirmCommand) showHelp() {
	fmt.Printf(`Composition Engine CLI - Order Confirmation Composition Validation

USAGE:
    composition -materials <file> -order <id> -target <qty> [options]

OPTIONS:
    -materials <file>   Path to declared materials CSV file
    -order <id>         Output purchase order being confirmed
    -target <qty>       Confirmed output quantity
    -unit <uom>         Unit of measure for the target quantity (default: kg)
    -tolerances <file>  YAML file overriding validation tolerances
    -auto-balance       Rescale percentages to sum to exactly 100
    -fill-quantities    Derive quantities from percentages and the target
    -fill-percentages   Derive percentages from recorded quantities
    -confirm            Persist the composition if it validates
    -format <fmt>       Output format: text, json, csv (default: text)
    -output <dir>       Output directory for results (optional)
    -verbose            Enable verbose output
    -help               Show this help message

MATERIALS CSV FORMAT:
    source_order_id,product_name,supplier_name,quantity_used,unit,percentage_contribution,received_date,lot_number
    PO-001,Cocoa Mass,Tropic Trading,600,kg,60,2026-03-01,LOT-A1
    PO-002,Cane Sugar,Sweetline,400,kg,40,2026-03-05,

TOLERANCES YAML FORMAT:
    percent_epsilon: "0.01"      # absolute tolerance on the percentage sum
    quantity_tolerance: "0.01"   # relative quantity-vs-target tolerance
    near_miss_window: "5"        # window for the auto-balance suggestion

EXAMPLES:
    # Validate a declared composition
    composition -materials materials.csv -order PO-4711 -target 1000 -verbose

    # Auto-balance and write the corrected materials back out as CSV
    composition -materials materials.csv -order PO-4711 -target 1000 -auto-balance -format csv

    # Derive quantities from percentages and confirm
    composition -materials materials.csv -order PO-4711 -target 1000 -fill-quantities -confirm

    # Custom tolerances, JSON report
    composition -materials materials.csv -order PO-4711 -target 1000 -tolerances tol.yaml -format json -output results/
`)
}
