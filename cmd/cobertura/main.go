package main

import (
	"os"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/config"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/filter"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/parser"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "main"})
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "cobertura REPORT...",
		Short:         "Builds the coverage model of Cobertura reports",
		Long:          "Parses Cobertura XML reports from local paths or HTTP(S) URLs and logs a coverage summary per assembly.\nFilters, workers and log level are configured via environment variables.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Init configuration
			config, err := config.NewConfiguration()
			if err != nil {
				return err
			}
			logger.Infof("starting %s with config: %s", logging.AppName, config)

			// configure the Logger
			logging.SetLevel(config.Level())

			p, err := newParser(config)
			if err != nil {
				return err
			}
			return parseReports(p, args)
		},
	}
}

func newParser(config config.Configuration) (*parser.CoberturaParser, error) {
	assemblyFilter, err := filter.NewDefaultFilter(config.AssemblyFilters())
	if err != nil {
		return nil, errors.Wrap(err, "invalid assembly filter")
	}
	classFilter, err := filter.NewDefaultFilter(config.ClassFilters())
	if err != nil {
		return nil, errors.Wrap(err, "invalid class filter")
	}
	fileFilter, err := filter.NewDefaultFilter(config.FileFilters())
	if err != nil {
		return nil, errors.Wrap(err, "invalid file filter")
	}
	return parser.NewCoberturaParser(assemblyFilter, classFilter, fileFilter, config.Workers()), nil
}

// parseReports parses each report, a failing report is logged and skipped.
func parseReports(p *parser.CoberturaParser, locations []string) error {
	failed := 0
	for _, location := range locations {
		doc, err := report.RetrieveReport(location)
		if err != nil {
			logger.Errorf("unable to retrieve report from %s: %s", location, err)
			failed++
			continue
		}
		result, err := p.Parse(doc)
		if err != nil {
			logger.Errorf("unable to parse report %s: %s", location, err)
			failed++
			continue
		}
		logSummary(location, result)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d reports could not be processed", failed, len(locations))
	}
	return nil
}

func logSummary(location string, result *coverage.ParserResult) {
	for _, assembly := range result.Assemblies() {
		logger.WithFields(log.Fields{
			"report":           location,
			"assembly":         assembly.Name,
			"classes":          len(assembly.Classes()),
			"coverable-lines":  assembly.CoverableLines(),
			"covered-lines":    assembly.CoveredLines(),
			"total-branches":   assembly.TotalBranches(),
			"covered-branches": assembly.CoveredBranches(),
		}).Info("assembly coverage")
	}
	logger.Infof("successfully parsed %s with %s", location, result.ParserName)
}
