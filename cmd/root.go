package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deckforge/cardpress/internal/config"
	"github.com/deckforge/cardpress/internal/deck"
	"github.com/deckforge/cardpress/internal/layout"
)

const version = "1.0.0"

var (
	flagOutput       string
	flagNoScale      bool
	flagNoSubfolders bool
	flagMaxSizeMB    int
)

// RootCmd represents the base command
var RootCmd = &cobra.Command{
	Use:   "cardpress [folder]",
	Short: "Lay out card images into a printable PDF",
	Long: `Cardpress arranges a folder of card images into a grid-based printable PDF
sized for 2.5"x3.5" trading cards on letter pages.

Per-image print quantities come from an embedded -xN filename suffix
(e.g. goblin-x3.png) or from a sidecar text file named cards*.txt or
quantities*.txt with one "name,quantity" line per image. With --max-size-mb,
output is split across numbered part files so no file exceeds the cap.

Examples:
  cardpress ./my-deck
  cardpress ./my-deck --output proofs.pdf --no-scale
  cardpress ./my-deck --max-size-mb 10`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output PDF path (default: derived from the folder name)")
	RootCmd.Flags().BoolVar(&flagNoScale, "no-scale", false, "Disable rescaling of images to the canonical card resolution")
	RootCmd.Flags().BoolVar(&flagNoSubfolders, "no-subfolders", false, "Collect images from the root folder only")
	RootCmd.Flags().IntVar(&flagMaxSizeMB, "max-size-mb", 0, "Split output so no file exceeds this many megabytes")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	folder := args[0]
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		return fmt.Errorf("folder not found: %s", folder)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.YellowString("Warning:"), err)
		cfg = config.Default()
	}

	scale := cfg.Scale && !flagNoScale
	includeSubfolders := cfg.IncludeSubfolders && !flagNoSubfolders
	maxSizeMB := cfg.MaxSizeMB
	if cmd.Flags().Changed("max-size-mb") {
		maxSizeMB = flagMaxSizeMB
	}

	entries, err := deck.Collect(folder, includeSubfolders)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("%s No valid image files found. Make sure you're using JPG or PNG files with optional -xN or cards.txt.\n",
			color.YellowString("⚠️"))
		return nil
	}

	output := flagOutput
	if output == "" {
		output = defaultOutputPath(folder, cfg.OutputDir)
	}

	emitter := layout.Emitter{
		Geometry:   layout.Letter(),
		OutputPath: output,
		MaxBytes:   int64(maxSizeMB) * 1024 * 1024,
		Scale:      scale,
	}
	written, err := emitter.Emit(entries)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Printf("%s PDF saved to: %s\n", color.GreenString("✅"), path)
	}
	return nil
}

// defaultOutputPath derives an output filename from the folder's relative
// path: separators become hyphens, spaces are stripped, and "." and ".."
// segments are dropped.
func defaultOutputPath(folder, outputDir string) string {
	rel, err := filepath.Rel(".", folder)
	if err != nil {
		rel = folder
	}

	var parts []string
	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		if part == "." || part == ".." || part == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(part, " ", ""))
	}

	name := strings.Join(parts, "-")
	if name == "" {
		name = "cards"
	}

	return filepath.Join(outputDir, name+".pdf")
}
