package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hostprov/diskcat/internal/catalog"
	"github.com/hostprov/diskcat/internal/config"
	"github.com/hostprov/diskcat/internal/enumerate"
	"github.com/hostprov/diskcat/internal/report"
	"github.com/hostprov/diskcat/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "diskcat",
	Short: "Host block device catalog tool",
	Long: `diskcat produces a deterministic inventory of the directly-addressable
storage block devices on a host, for consumption by provisioning
automation. Device-mapper aggregates, optical drives, zram devices,
and software-RAID members are excluded.

Run with no arguments it prints one "<device> <bytes>" line per disk,
sorted by device name.`,
	Run: func(cmd *cobra.Command, args []string) {
		runList(cmd, false)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the device catalog",
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		runList(cmd, jsonOut)
	},
}

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show cataloged devices with sizes, types, and hardware info",
	Run:   runDetail,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the diskcat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

// newBuilder loads config and wires the catalog builder to the
// configured enumerator.
func newBuilder() (*catalog.Builder, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	b := catalog.New(enumerate.ForMode(cfg.Enumerator))
	b.ExtraPrefixes = cfg.ExcludePrefixes
	return b, nil
}

func runList(cmd *cobra.Command, jsonOut bool) {
	b, err := newBuilder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries, err := b.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOut {
		err = report.WriteJSON(os.Stdout, entries)
	} else {
		err = report.Write(os.Stdout, entries)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDetail(cmd *cobra.Command, args []string) {
	b, err := newBuilder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	devices, err := b.Enum.Enumerate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: enumerating block devices: %v\n", err)
		os.Exit(1)
	}

	sysfs := &enumerate.SysfsEnumerator{}
	seen := make(map[string]report.DetailRow)
	for _, d := range devices {
		if !b.Classify(d) {
			continue
		}
		name := catalog.ShortName(d.Path)
		if _, ok := seen[name]; ok {
			continue
		}
		attrs := sysfs.Attrs(name)
		seen[name] = report.DetailRow{
			Name:   name,
			Size:   d.SizeBytes,
			Type:   string(d.Type),
			Vendor: attrs.Vendor,
			Model:  attrs.Model,
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]report.DetailRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, seen[name])
	}
	report.WriteDetail(os.Stdout, rows)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/diskcat/config.yaml)")

	listCmd.Flags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
