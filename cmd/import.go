package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mbecker/wortschatz/internal/importer"
	"github.com/mbecker/wortschatz/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Convert a spreadsheet word list into a lesson file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0])
	},
}

func init() {
	importCmd.Flags().String("lesson", "", "Lesson id for the generated file (required)")
	importCmd.Flags().String("title", "", "Lesson title (default: lesson id)")
	importCmd.Flags().String("category", "imported", "Lesson category")
	importCmd.Flags().String("from", "", "Source language code, e.g. ru (required)")
	importCmd.Flags().String("to", "", "Target language code, e.g. de (required)")
	importCmd.Flags().String("sheet", "Sheet1", "Sheet name")
	importCmd.Flags().Int("start-row", 2, "First data row (1-based)")
	importCmd.Flags().String("out", "lessons", "Output directory for the lesson file")

	importCmd.MarkFlagRequired("lesson")
	importCmd.MarkFlagRequired("from")
	importCmd.MarkFlagRequired("to")
}

func runImport(cmd *cobra.Command, file string) error {
	cfg := importer.DefaultConfig()
	cfg.FilePath = file
	cfg.LessonID, _ = cmd.Flags().GetString("lesson")
	cfg.Title, _ = cmd.Flags().GetString("title")
	cfg.Category, _ = cmd.Flags().GetString("category")
	cfg.Sheet, _ = cmd.Flags().GetString("sheet")
	cfg.StartRow, _ = cmd.Flags().GetInt("start-row")

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	cfg.Pair = vocab.LanguagePair{From: vocab.LanguageCode(from), To: vocab.LanguageCode(to)}

	res, err := importer.ImportLesson(cfg)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	path, err := importer.WriteLessonFile(res.Lesson, outDir)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("Imported %d of %d rows into %s\n", res.Imported, res.TotalRows, path)
	for _, msg := range res.Errors {
		color.New(color.FgYellow).Printf("  skipped %s\n", msg)
	}
	fmt.Printf("Serve it with: wortschatz serve --catalog %s\n", outDir)
	return nil
}
