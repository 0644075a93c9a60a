package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sift/errors"
	"github.com/teranos/sift/logger"
	"github.com/teranos/sift/query"
)

var (
	compileFile  string
	compileJSON  bool
	compileWatch bool
)

// CompileCmd represents the compile command
var CompileCmd = &cobra.Command{
	Use:   "compile [QUERY]",
	Short: "Compile a query and print its term summary",
	Long: `Compile a boolean query: parse, normalize toward a disjunction of
conjunctions, and report which terms stand alone, which exclude content,
and which only matter together.

Examples:
  sift compile 'ale AND (hops OR malt)'
  sift compile --file watchlist.q
  cat watchlist.q | sift compile --file -
  sift compile --file watchlist.q --watch`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompile,
}

func init() {
	CompileCmd.Flags().StringVarP(&compileFile, "file", "f", "", "Read the query from a file (- for stdin)")
	CompileCmd.Flags().BoolVar(&compileJSON, "json", false, "Print the summary as JSON")
	CompileCmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "Recompile whenever --file changes")
}

func runCompile(cmd *cobra.Command, args []string) error {
	opts, cfg, err := loadOptions()
	if err != nil {
		return err
	}
	jsonOut := compileJSON || cfg.Output.JSON

	if compileWatch {
		if compileFile == "" || compileFile == "-" {
			return errors.New("--watch requires --file with a real path")
		}
		return watchAndCompile(compileFile, opts, jsonOut, cfg.Output.Color)
	}

	input, err := readInput(args, compileFile)
	if err != nil {
		return err
	}
	return compileOnce(input, opts, jsonOut, cfg.Output.Color)
}

func compileOnce(input string, opts query.Options, jsonOut, color bool) error {
	result, err := query.CompileWithOptions(input, opts)
	if err != nil {
		return err
	}

	if !result.Converged {
		fmt.Fprintln(os.Stderr, pterm.Yellow(
			"warning: normalization hit the pass ceiling; summary is best-effort"))
	}

	if jsonOut {
		data, err := json.MarshalIndent(result.Summary, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode summary")
		}
		fmt.Println(string(data))
		return nil
	}

	if color {
		fmt.Print(result.Summary.Render())
	} else {
		fmt.Print(result.Summary.Plain())
	}
	return nil
}

// watchAndCompile recompiles the query file on every change until the
// process is interrupted. Compilation failures are reported and watching
// continues, so a half-saved edit does not kill the loop.
func watchAndCompile(path string, opts query.Options, jsonOut, color bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return errors.Wrapf(err, "failed to watch %s", path)
	}

	recompile := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Errorw("failed to re-read query file", "path", path, "error", err)
			return
		}
		fmt.Println(pterm.Gray("--- " + time.Now().Format(time.TimeOnly) + " " + path))
		if err := compileOnce(string(data), opts, jsonOut, color); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	recompile()

	// Editors fire bursts of events per save; debounce them
	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, recompile)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("file watcher error", "error", err)
		}
	}
}
