package main

import (
	"context"
	"fmt"
	"os"
	fp "path/filepath"
	"time"

	"github.com/imco-tools/indices"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	setupLogging()
	cmd := newCommand(loadEnv())

	// Execute
	err := cmd.Execute()
	if err != nil {
		logrus.Fatalln(err)
	}
}

// setupLogging sends progress and warning lines to standard output.
func setupLogging() {
	logrus.SetOutput(os.Stdout)
}

func newCommand(env envDefaults) *cobra.Command {
	// Prepare cmd
	cmd := &cobra.Command{
		Use:          "indices [url]",
		Short:        "CLI tool for downloading the IMCO index listing and its files",
		Args:         cobra.MaximumNArgs(1),
		RunE:         cmdHandler,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("input", "i", "", "path to a saved copy of the listing page")
	cmd.Flags().StringP("output-dir", "o", env.OutputDir, "directory where item folders are created")
	cmd.Flags().StringP("report", "r", env.Report, "path of the spreadsheet report")
	cmd.Flags().StringP("user-agent", "u", env.UserAgent, "set custom user agent")
	cmd.Flags().String("url", env.URL, "URL of the listing page")

	cmd.Flags().BoolP("quiet", "q", false, "disable logging")
	cmd.Flags().Bool("verbose", false, "more verbose logging")

	cmd.Flags().IntP("timeout", "t", 0, "maximum time (in second) before request timeout, 0 means none")
	cmd.Flags().Bool("insecure", false, "skip X.509 (TLS) certificate verification")
	cmd.Flags().Int("max-retries", 0, "retries for requests failing with 5xx or 429")

	return cmd
}

func cmdHandler(cmd *cobra.Command, args []string) error {
	// Parse flags
	inputPath, _ := cmd.Flags().GetString("input")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	reportPath, _ := cmd.Flags().GetString("report")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	pageURL, _ := cmd.Flags().GetString("url")

	disableLog, _ := cmd.Flags().GetBool("quiet")
	useVerboseLog, _ := cmd.Flags().GetBool("verbose")

	timeout, _ := cmd.Flags().GetInt("timeout")
	skipTLSVerification, _ := cmd.Flags().GetBool("insecure")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	if len(args) == 1 {
		pageURL = args[0]
	}

	// Make sure output dir exists
	if outputDir != "" && !isDirectory(outputDir) {
		if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
			return err
		}
	}

	req := indices.Request{URL: pageURL}
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()

		req.Input = f
	}

	scraper := &indices.Scraper{
		UserAgent:        userAgent,
		EnableLog:        !disableLog,
		EnableVerboseLog: !disableLog && useVerboseLog,

		RequestTimeout:      time.Duration(timeout) * time.Second,
		MaxRetries:          maxRetries,
		SkipTLSVerification: skipTLSVerification,

		OutputDir:  outputDir,
		ReportPath: reportPath,
	}
	scraper.Validate()

	result, err := scraper.Scrape(context.Background(), req)
	if err != nil {
		return err
	}

	if !disableLog {
		fmt.Println()
		logrus.Printf("%d panels, %d items, %d skipped, %d warnings\n",
			result.Panels, len(result.Items), result.Skipped, len(result.Warnings))
		if result.ReportPath != "" {
			abs, _ := fp.Abs(result.ReportPath)
			logrus.Printf("report written to %s\n", abs)
		}
	}

	return nil
}
