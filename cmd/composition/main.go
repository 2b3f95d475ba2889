package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ecotrace/composition/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		materialsFile = flag.String(
			"materials",
			"",
			"Path to declared materials CSV file",
		)
		outputOrder     = flag.String("order", "", "Output purchase order being confirmed")
		target          = flag.String("target", "", "Confirmed output quantity")
		unit            = flag.String("unit", "kg", "Unit of measure for the target quantity")
		tolerancesFile  = flag.String("tolerances", "", "YAML file overriding validation tolerances")
		autoBalance     = flag.Bool("auto-balance", false, "Rescale percentages to sum to exactly 100")
		fillQuantities  = flag.Bool("fill-quantities", false, "Derive quantities from percentages")
		fillPercentages = flag.Bool("fill-percentages", false, "Derive percentages from quantities")
		confirm         = flag.Bool("confirm", false, "Persist the composition if it validates")
		format          = flag.String("format", "text", "Output format: text, json, csv")
		outputDir       = flag.String("output", "", "Output directory for results (optional)")
		verbose         = flag.Bool("verbose", false, "Enable verbose output")
		help            = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		MaterialsFile:   *materialsFile,
		OutputOrder:     *outputOrder,
		Target:          *target,
		Unit:            *unit,
		TolerancesFile:  *tolerancesFile,
		AutoBalance:     *autoBalance,
		FillQuantities:  *fillQuantities,
		FillPercentages: *fillPercentages,
		Confirm:         *confirm,
		Format:          *format,
		OutputDir:       *outputDir,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewConfirmCommand(config)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
