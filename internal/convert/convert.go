// Package convert implements the convert subcommand: read an Atom
// document, run the transform, write the RSS document.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"atomrss/internal/config"
	"atomrss/internal/feed"
	"atomrss/internal/filename"
	"atomrss/internal/report"
	"atomrss/internal/source"
)

type Convert struct {
	inputPath  string
	outputPath string
	configPath string
	reportPath string
}

func Command() *cobra.Command {
	c := &Convert{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an Atom feed document to RSS 2.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return c.run()
		},
	}

	cmd.Flags().StringVarP(&c.inputPath, "input", "i", "", "Path to the Atom XML file, or a .zip export containing it (required)")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Path for the RSS file (default: derived from the channel title, next to the input)")
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "Path to an optional TOML config file")
	cmd.Flags().StringVar(&c.reportPath, "report", "", "Write a YAML conversion report to this path")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *Convert) run() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		logError("reading config file", err)
		return err
	}

	data, inputName, err := source.ReadFile(c.inputPath)
	if err != nil {
		logError("reading input file", err)
		return err
	}
	logInfo("Selected input file: " + inputName)

	res, err := feed.Transform(data, cfg.Options())
	if err != nil {
		var pe *feed.ParseError
		if errors.As(err, &pe) {
			logError("parsing XML", pe.Err)
		} else {
			logError("converting feed", err)
		}
		return err
	}
	for _, bd := range res.BadDates {
		slog.Warn("unparseable entry date, pubDate omitted", "item", bd.Item, "value", bd.Value)
	}

	outPath := c.outputPath
	if outPath == "" {
		outPath = defaultOutputPath(c.inputPath, res.Title)
	}
	logInfo("Selected output file: " + outPath)

	if err := os.WriteFile(outPath, res.XML, 0o644); err != nil {
		logError("writing output file", err)
		return err
	}

	if c.reportPath != "" {
		if err := report.New(inputName, outPath, res).Write(c.reportPath); err != nil {
			logError("writing report file", err)
			return err
		}
		logInfo("Wrote conversion report: " + c.reportPath)
	}

	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Successfully created RSS 2.0 feed with %d <item> entries.", res.Items)))
	return nil
}

// defaultOutputPath puts the RSS document next to the input, named
// after the channel title.
func defaultOutputPath(inputPath, title string) string {
	dir := filepath.Dir(inputPath)
	return filepath.Join(dir, filename.FromTitle(strings.TrimSpace(title))+".rss.xml")
}

func logInfo(msg string) {
	fmt.Println(InfoStyle.Render(msg))
}

func logError(what string, err error) {
	fmt.Println(ErrorStyle.Render(fmt.Sprintf("ERROR %s: %v", what, err)))
}
