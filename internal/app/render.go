package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/blackwell-systems/argpath/internal/output"
	"github.com/blackwell-systems/argpath/internal/pathargs"
)

// locationJSON is the JSON form of a normalized argument. Line and column
// are omitted when the argument had no locator.
type locationJSON struct {
	Path   string `json:"path"`
	Line   *int   `json:"line,omitempty"`
	Column *int   `json:"column,omitempty"`
}

// entryJSON is the JSON form of an explained argument.
type entryJSON struct {
	Input string `json:"input"`
	locationJSON
	Status pathargs.Status `json:"status"`
	Exists bool            `json:"exists"`
}

func toLocationJSON(loc pathargs.Location) locationJSON {
	j := locationJSON{Path: loc.Path}
	if loc.HasLine {
		line, col := loc.Line, loc.Column
		j.Line, j.Column = &line, &col
	}
	return j
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderPaths writes one path per line, or NUL-terminated paths.
func renderPaths(w io.Writer, paths []string, nul bool) error {
	sep := "\n"
	if nul {
		sep = "\x00"
	}
	for _, p := range paths {
		if _, err := io.WriteString(w, p+sep); err != nil {
			return err
		}
	}
	return nil
}

// renderLocationsJSON writes the kept entries as a JSON array.
func renderLocationsJSON(w io.Writer, entries []pathargs.Entry) error {
	out := make([]locationJSON, 0, len(entries))
	for _, e := range entries {
		if _, ok := e.Value(); ok {
			out = append(out, toLocationJSON(e.Location))
		}
	}
	return writeJSON(w, out)
}

func renderExplainJSON(w io.Writer, entries []pathargs.Entry) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{
			Input:        e.Input,
			locationJSON: toLocationJSON(e.Location),
			Status:       e.Status,
			Exists:       e.Exists,
		})
	}
	return writeJSON(w, out)
}

func renderExplainTable(w io.Writer, entries []pathargs.Entry) error {
	if _, err := fmt.Fprintln(w, output.Section("Arguments")); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tbl := output.NewTable("Input", "Path", "Line", "Col", "Status", "Exists")
	kept := 0
	for _, e := range entries {
		line, col := "", ""
		if e.Location.HasLine {
			line = strconv.Itoa(e.Location.Line)
			col = strconv.Itoa(e.Location.Column)
		}

		exists := output.StyleWarning.Render("new")
		if e.Exists {
			exists = output.StyleMuted.Render("yes")
		}

		tbl.AddRow(strconv.Quote(e.Input), e.Location.Path, line, col, statusLabel(e.Status), exists)
		if e.Status == pathargs.StatusKept {
			kept++
		}
	}
	if err := tbl.Fprint(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n %s %s\n",
		output.StyleBold.Render(fmt.Sprintf("%d of %d", kept, len(entries))),
		output.StyleMuted.Render("arguments kept"))
	return err
}

func statusLabel(s pathargs.Status) string {
	switch s {
	case pathargs.StatusKept:
		return output.StyleSuccess.Render(s.String())
	case pathargs.StatusDuplicate:
		return output.StyleWarning.Render(s.String())
	default:
		return output.StyleError.Render(s.String())
	}
}
