package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/internal/render"
	"github.com/gcbaptista/go-tab-search/internal/search"
	"github.com/gcbaptista/go-tab-search/model"
	"github.com/gcbaptista/go-tab-search/services"
)

type searchOptions struct {
	recordsPath string
	historyPath string
	configPath  string
	now         int64
	window      int64
	jsonOutput  bool
	recency     bool
	maxResults  int
}

func newSearchCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search a JSON record set",
		Long: `Search ranks the records in a JSON file against QUERY.

The records file holds an array of records; "-" reads it from stdin.
History entries may be supplied separately with --history; those whose
URL is already open are dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runSearch(cmd, opts, query)
		},
	}

	cmd.Flags().StringVarP(&opts.recordsPath, "records", "r", "", "JSON file with the records to search (- for stdin)")
	cmd.Flags().StringVar(&opts.historyPath, "history", "", "JSON file with browsing history entries")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().Int64Var(&opts.now, "now", 0, "reference time in ms since the epoch (default current time)")
	cmd.Flags().Int64Var(&opts.window, "window", 0, "current window ID; its records are listed first")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the full response as JSON")
	cmd.Flags().BoolVar(&opts.recency, "recency", false, "add the recency bonus to scores")
	cmd.Flags().IntVarP(&opts.maxResults, "limit", "n", 0, "maximum results to print (0 for all)")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions, query string) error {
	if opts.recordsPath == "-" && opts.historyPath == "-" {
		return errors.New("--records and --history cannot both read from stdin")
	}

	settings, err := searchSettings(opts)
	if err != nil {
		return err
	}
	service, err := search.NewService(&settings, nil)
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Flags().Changed("now") {
		now = time.UnixMilli(opts.now)
	}

	records, err := readRecords(cmd.InOrStdin(), opts.recordsPath)
	if err != nil {
		return err
	}
	if opts.historyPath != "" {
		history, err := readRecords(cmd.InOrStdin(), opts.historyPath)
		if err != nil {
			return err
		}
		unknownVisit := now.Add(-service.Settings().HistoryThreshold).UnixMilli()
		records = model.MergeHistory(records, history, unknownVisit)
	}
	if cmd.Flags().Changed("window") {
		records = model.SortForDisplay(records, opts.window)
	}

	response := service.Execute(services.SearchQuery{Records: records, Query: query, Now: now})

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	printResponse(out, response)
	return nil
}

// searchSettings loads search settings from the config file, then applies flags.
func searchSettings(opts *searchOptions) (config.SearchSettings, error) {
	cfg, err := config.LoadServerConfig(opts.configPath)
	if err != nil {
		return config.SearchSettings{}, err
	}

	settings := cfg.Search
	if opts.recency {
		settings.RecencyBonus = true
	}
	if opts.maxResults > 0 {
		settings.MaxResults = opts.maxResults
	}
	return settings, nil
}

func readRecords(stdin io.Reader, path string) ([]model.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records from %s: %w", path, err)
	}
	return records, nil
}

func printResponse(w io.Writer, response services.SearchResponse) {
	if len(response.Hits) == 0 {
		if response.Destination != "" {
			fmt.Fprintf(w, "%s %s\n", render.StyleMuted.Render("no matches, open:"), response.Destination)
		} else {
			fmt.Fprintln(w, render.StyleMuted.Render("no records"))
		}
		return
	}

	for _, hit := range response.Hits {
		fmt.Fprintln(w, render.ResultLine(hit))
	}
	if response.Total > len(response.Hits) {
		fmt.Fprintln(w, render.StyleMuted.Render(fmt.Sprintf("... %d more", response.Total-len(response.Hits))))
	}
}
