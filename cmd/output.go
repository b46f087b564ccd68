package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/crowdfolio/renderer"
	"github.com/google/subcommands"
)

var raw = flag.Bool("raw", false, "Print reports as plain markdown, without terminal styling")

// printMarkdown prints a markdown report styled for the terminal.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// writeJSON writes v as indented JSON. With a query, only the JSONPath
// result is written.
func writeJSON(w io.Writer, v any, query string) error {
	if query != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var obj any
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		v, err = jsonpath.Get(query, obj)
		if err != nil {
			return fmt.Errorf("error querying %q: %w", query, err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeHTML writes a markdown report as an HTML page.
func writeHTML(file, title, md string) error {
	page, err := renderer.HTML(title, md)
	if err != nil {
		return err
	}
	return os.WriteFile(file, page, 0644)
}

// emit prints a report according to the output flags.
func emit(of *outputFlags, title string, data any, md func() string) subcommands.ExitStatus {
	if of.json || of.query != "" {
		if err := writeJSON(os.Stdout, data, of.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	report := md()
	if of.html != "" {
		if err := writeHTML(of.html, title, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", of.html, err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}
