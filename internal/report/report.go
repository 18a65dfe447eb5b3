package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/hostprov/diskcat/internal/catalog"
)

// Write emits the stable catalog format consumed by provisioning
// automation: one "<name> <sizeBytes>" line per device, no header,
// no trailing summary.
func Write(w io.Writer, entries []catalog.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %d\n", e.Name, e.SizeBytes); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON emits the catalog as a JSON array.
func WriteJSON(w io.Writer, entries []catalog.Entry) error {
	if entries == nil {
		entries = []catalog.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// DetailRow is one device in the human-readable detail table.
type DetailRow struct {
	Name   string
	Size   uint64
	Type   string
	Vendor string
	Model  string
}

// WriteDetail prints a fixed-width table with humanized sizes. This is
// a convenience view for operators, not part of the output contract.
func WriteDetail(w io.Writer, rows []DetailRow) {
	fmt.Fprintf(w, "%-12s %-10s %-8s %-10s %s\n", "DEVICE", "SIZE", "TYPE", "VENDOR", "MODEL")
	fmt.Fprintln(w, "-----------------------------------------------------")
	for _, r := range rows {
		size := "-"
		if r.Size > 0 {
			size = humanize.IBytes(r.Size)
		}
		vendor := r.Vendor
		if vendor == "" {
			vendor = "-"
		}
		model := r.Model
		if model == "" {
			model = "-"
		}
		fmt.Fprintf(w, "%-12s %-10s %-8s %-10s %s\n", r.Name, size, r.Type, vendor, model)
	}
}
