// Command sm83conform renders the per-opcode cycle-count conformance
// table required by spec §4.4.11 as text and as a chart, and optionally
// re-renders it whenever a fixture under -testdata changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/fennelabs/sm83/internal/conformance"
)

func main() {
	testdata := flag.String("testdata", "testdata", "directory of fixtures to watch")
	chartPath := flag.String("chart", "conformance_chart.png", "path to write the cycle-count bar chart to")
	watch := flag.Bool("watch", false, "re-render whenever a fixture under -testdata changes")
	flag.Parse()

	if err := render(*chartPath); err != nil {
		fmt.Fprintf(os.Stderr, "sm83conform: %s\n", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	if err := watchAndRerender(*testdata, *chartPath); err != nil {
		fmt.Fprintf(os.Stderr, "sm83conform: %s\n", err)
		os.Exit(1)
	}
}

func render(chartPath string) error {
	printTable(conformance.CycleTable)
	if err := conformance.RenderChart(conformance.CycleTable, chartPath); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	fmt.Printf("sm83conform: wrote %s\n", chartPath)
	return nil
}

func printTable(table []conformance.CycleEntry) {
	for _, e := range table {
		prefix := ""
		if e.CB {
			prefix = "CB "
		}
		if e.Taken == e.NotTaken {
			fmt.Printf("%s0x%02X  %-16s  %d\n", prefix, e.Opcode, e.Name, e.Taken)
		} else {
			fmt.Printf("%s0x%02X  %-16s  %d/%d\n", prefix, e.Opcode, e.Name, e.Taken, e.NotTaken)
		}
	}
}

func watchAndRerender(testdata, chartPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(testdata); err != nil {
		return fmt.Errorf("watching %s: %w", testdata, err)
	}

	fmt.Printf("sm83conform: watching %s for changes\n", testdata)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("sm83conform: %s changed, re-rendering\n", filepath.Base(event.Name))
			if err := render(chartPath); err != nil {
				fmt.Fprintf(os.Stderr, "sm83conform: %s\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "sm83conform: watcher error: %s\n", err)
		}
	}
}
