package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-sections/pkg/sections"
	"github.com/benjaminschreck/go-sections/pkg/sections/units"
)

var rootCmd = &cobra.Command{
	Use:   "sections",
	Short: "Inspect and edit the section layer of DOCX files",
	Long: `sections is a command-line tool for working with the sections of
Word documents: page geometry, section breaks, and header/footer
definitions and their inheritance.`,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.docx>",
	Short: "Print per-section page setup and header/footer state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := sections.OpenFile(args[0])
		if err != nil {
			return err
		}

		secs := doc.Sections()
		fmt.Printf("%s: %d section(s)\n", args[0], secs.Count())

		i := 0
		for sec := range secs.All() {
			fmt.Printf("\nsection %d\n", i)
			fmt.Printf("  start type:  %s\n", sec.StartType())
			fmt.Printf("  orientation: %s\n", sec.Orientation())
			printLength("page width", sec.PageWidth)
			printLength("page height", sec.PageHeight)
			printLength("top margin", sec.TopMargin)
			printLength("bottom margin", sec.BottomMargin)
			printLength("left margin", sec.LeftMargin)
			printLength("right margin", sec.RightMargin)
			printLength("gutter", sec.Gutter)
			printLength("header dist", sec.HeaderDistance)
			printLength("footer dist", sec.FooterDistance)
			fmt.Printf("  header:      %s\n", linkedState(sec.Header().IsLinkedToPrevious()))
			fmt.Printf("  footer:      %s\n", linkedState(sec.Footer().IsLinkedToPrevious()))
			i++
		}
		return nil
	},
}

var unlinkHeadersCmd = &cobra.Command{
	Use:   "unlink-headers <file.docx>",
	Short: "Give every section its own header definition",
	Long: `unlink-headers walks all sections and turns inherited headers into
explicit, empty header definitions, then writes the result to the
output file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = args[0]
		}

		doc, err := sections.OpenFile(args[0])
		if err != nil {
			return err
		}

		unlinked := 0
		for sec := range doc.Sections().All() {
			h := sec.Header()
			if !h.IsLinkedToPrevious() {
				continue
			}
			if err := h.SetLinkedToPrevious(false); err != nil {
				return fmt.Errorf("failed to unlink header: %w", err)
			}
			unlinked++
		}

		if err := doc.Save(outputPath); err != nil {
			return err
		}
		fmt.Printf("unlinked %d header(s), wrote %s\n", unlinked, outputPath)
		return nil
	},
}

func printLength(label string, get func() (units.Length, bool)) {
	if v, ok := get(); ok {
		fmt.Printf("  %-12s %.2f in\n", label+":", v.Inches())
	} else {
		fmt.Printf("  %-12s (not set)\n", label+":")
	}
}

func linkedState(linked bool) string {
	if linked {
		return "linked to previous"
	}
	return "defined"
}

func init() {
	unlinkHeadersCmd.Flags().StringP("output", "o", "", "Output file path (default: overwrite input)")
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(unlinkHeadersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
