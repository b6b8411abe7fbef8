package cli

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fuzzdex"
	"fuzzdex/internal/display"
	"fuzzdex/internal/logger"
)

var (
	searchFile          string
	searchMust          string
	searchShould        []string
	searchConstraint    int64
	searchHasConstraint bool
	searchMaxDistance   int
	searchLimit         int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "load phrases from a CSV file and run a must/should query",
	Long: `search loads one phrase per line from a CSV file (id,text,constraint1|constraint2|...)
and runs a fuzzdex must/should query against the resulting index.

This is deliberately a single flat load, not a pluggable multi-source
ingestion pipeline: fuzzdexctl is a demo harness for the fuzzdex library,
not a reimplementation of a production ingestion system.`,
	RunE: searchExecute,
}

func init() {
	searchCmd.Flags().StringVar(&searchFile, "file", "", "path to a phrase CSV file (required)")
	searchCmd.Flags().StringVar(&searchMust, "must", "", "required query token (required)")
	searchCmd.Flags().StringArrayVar(&searchShould, "should", nil, "optional should-match token (repeatable)")
	searchCmd.Flags().Int64Var(&searchConstraint, "constraint", 0, "restrict results to phrases declaring this constraint value")
	searchCmd.Flags().IntVar(&searchMaxDistance, "max-distance", fuzzdex.DefaultMaxDistance, "maximum edit distance for a must-token match")
	searchCmd.Flags().IntVar(&searchLimit, "limit", fuzzdex.DefaultLimit, "maximum number of results")

	_ = searchCmd.MarkFlagRequired("file")
	_ = searchCmd.MarkFlagRequired("must")

	searchCmd.PreRun = func(cmd *cobra.Command, args []string) {
		searchHasConstraint = cmd.Flags().Changed("constraint")
	}
}

func searchExecute(cmd *cobra.Command, args []string) error {
	dex := fuzzdex.New()

	if err := loadPhrasesCSV(dex, searchFile); err != nil {
		return err
	}
	dex.Finish()

	var constraint *uint64
	if searchHasConstraint {
		c := uint64(searchConstraint)
		constraint = &c
	}

	maxDistance := searchMaxDistance
	limit := searchLimit
	results, err := dex.Search(searchMust, searchShould, constraint, &maxDistance, &limit)
	if err != nil {
		logger.PrintError("search failed: %v", err)
		return err
	}

	if len(results) == 0 {
		logger.Print("no matches")
		return nil
	}
	display.ResultTable(results)
	return nil
}

// loadPhrasesCSV reads one phrase per row from path: id,text,constraints,
// where constraints is a "|"-separated list of integers (may be empty).
func loadPhrasesCSV(dex *fuzzdex.FuzzDex, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if len(record) < 2 {
			continue
		}

		id, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			logger.Warnf("skipping row with invalid id %q: %v", record[0], err)
			continue
		}
		text := record[1]

		var constraints []uint64
		if len(record) >= 3 && strings.TrimSpace(record[2]) != "" {
			for _, part := range strings.Split(record[2], "|") {
				c, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
				if err != nil {
					logger.Warnf("skipping invalid constraint %q for id %d: %v", part, id, err)
					continue
				}
				constraints = append(constraints, c)
			}
		}

		if err := dex.AddPhrase(text, id, constraints...); err != nil {
			logger.Warnf("skipping phrase id %d: %v", id, err)
		}
	}

	return nil
}
