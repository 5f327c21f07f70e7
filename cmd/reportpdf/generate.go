package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lvillar/reportpdf"
	"github.com/lvillar/reportpdf/content"
	"github.com/lvillar/reportpdf/fontres"
	"github.com/lvillar/reportpdf/internal/config"
	"github.com/lvillar/reportpdf/table"
)

var (
	flagInput string
	flagOut   string
	flagTitle string
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt ...]",
	Short: "Generate a PDF report from prompts, a text file, or stdin",
	Long: `Generate renders a PDF report. With prompt arguments, each prompt is sent
to the configured chat endpoint and the answers are concatenated. With
--input (or piped stdin) the text is used as-is. An embedded Markdown table
becomes a styled table; plain text flows as paragraphs.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "read report text from a file instead of calling the model")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output directory (overrides config)")
	generateCmd.Flags().StringVarP(&flagTitle, "title", "t", "", "report title (overrides config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOut != "" {
		cfg.Output.Dir = flagOut
	}
	if flagTitle != "" {
		cfg.Title = flagTitle
	}

	text, err := reportText(cmd, cfg, args)
	if err != nil {
		return err
	}

	style := table.DefaultStyle()
	style.Threshold = cfg.Threshold

	opts := []reportpdf.Option{
		reportpdf.WithTitle(cfg.Title),
		reportpdf.WithOutput(cfg.Output.Dir, cfg.Output.Prefix),
		reportpdf.WithColumnWeights(cfg.Columns.Weights),
		reportpdf.WithMultiLineColumns(cfg.Columns.MultiLine...),
		reportpdf.WithHighlightColumns(cfg.Columns.Highlight...),
		reportpdf.WithStyle(style),
	}
	if cfg.Font.Path != "" {
		opts = append(opts, reportpdf.WithFontResolver(fontres.File{Path: cfg.Font.Path}))
	}

	path, err := reportpdf.NewRenderer(opts...).Render(text)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// reportText obtains the text to render: an input file, piped stdin, or
// the concatenated answers for the prompt arguments.
func reportText(cmd *cobra.Command, cfg config.Config, prompts []string) (string, error) {
	if flagInput != "" {
		data, err := os.ReadFile(flagInput)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}

	if len(prompts) == 0 {
		if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", fmt.Errorf("reading stdin: %w", err)
			}
			return string(data), nil
		}
		return "", fmt.Errorf("no prompts given and no input provided")
	}

	apiKey := os.Getenv(cfg.API.KeyEnv)
	if apiKey == "" {
		return "", fmt.Errorf("environment variable %s is not set", cfg.API.KeyEnv)
	}

	logrus.WithFields(logrus.Fields{"model": cfg.API.Model, "prompts": len(prompts)}).Info("requesting answers")
	client := content.NewChatClient(cfg.API.BaseURL, apiKey, cfg.API.Model)
	return content.GenerateAll(cmd.Context(), client, prompts)
}
