package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/hostprov/diskcat/internal/enumerate"
)

// devPrefix is the device namespace directory stripped from catalog names.
const devPrefix = "/dev/"

// Path prefixes for device classes that never count as installable disks.
const (
	opticalPrefix = "/dev/sr"
	zramPrefix    = "/dev/zram"
	mdraidPrefix  = "/dev/md"
)

// Entry is one retained device in the catalog: the device name with the
// /dev/ prefix stripped, and its capacity in bytes.
type Entry struct {
	Name      string `json:"name"`
	SizeBytes uint64 `json:"size_bytes"`
}

// Builder turns raw enumeration results into the filtered, deduplicated,
// sorted device catalog.
type Builder struct {
	Enum enumerate.Enumerator

	// Stat returns the file mode for a device path. Defaults to a real
	// stat; injectable so classification is testable without device nodes.
	Stat func(path string) (uint32, error)

	// ExtraPrefixes are additional excluded path prefixes from config,
	// evaluated after the built-in rules.
	ExtraPrefixes []string
}

// New returns a Builder backed by the given enumerator.
func New(enum enumerate.Enumerator) *Builder {
	return &Builder{
		Enum: enum,
		Stat: statMode,
	}
}

func statMode(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return st.Mode, nil
}

// A rule excludes one class of device. Rules are evaluated in order;
// the first match excludes the device.
type rule struct {
	tag     string
	matches func(b *Builder, d enumerate.Device) bool
}

var excludeRules = []rule{
	{"non-block", func(b *Builder, d enumerate.Device) bool {
		mode, err := b.Stat(d.Path)
		if err != nil {
			// cannot inspect the device, exclude it rather than abort
			return true
		}
		return mode&unix.S_IFMT != unix.S_IFBLK
	}},
	{"device-mapper", func(b *Builder, d enumerate.Device) bool {
		return d.Type == enumerate.TypeDeviceMapper
	}},
	{"optical", func(b *Builder, d enumerate.Device) bool {
		return strings.HasPrefix(d.Path, opticalPrefix)
	}},
	{"zram", func(b *Builder, d enumerate.Device) bool {
		return strings.HasPrefix(d.Path, zramPrefix)
	}},
	{"md-raid", func(b *Builder, d enumerate.Device) bool {
		return strings.HasPrefix(d.Path, mdraidPrefix)
	}},
}

// Classify reports whether a device belongs in the catalog.
func (b *Builder) Classify(d enumerate.Device) bool {
	for _, r := range excludeRules {
		if r.matches(b, d) {
			return false
		}
	}
	for _, prefix := range b.ExtraPrefixes {
		if strings.HasPrefix(d.Path, prefix) {
			return false
		}
	}
	return true
}

// Build queries the enumerator, filters, deduplicates, and sorts.
// All-or-nothing: an enumeration failure returns an error and no
// entries. Safe to call repeatedly; every call recomputes from scratch.
func (b *Builder) Build() ([]Entry, error) {
	devices, err := b.Enum.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("enumerating block devices: %w", err)
	}

	sizes := make(map[string]uint64)
	for _, d := range devices {
		if !b.Classify(d) {
			continue
		}
		name := ShortName(d.Path)
		if _, seen := sizes[name]; !seen {
			sizes[name] = d.SizeBytes
		}
	}

	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, SizeBytes: sizes[name]})
	}
	return entries, nil
}

// ShortName strips the device namespace prefix from a device path.
// Paths outside /dev/ are returned unchanged.
func ShortName(path string) string {
	return strings.TrimPrefix(path, devPrefix)
}
