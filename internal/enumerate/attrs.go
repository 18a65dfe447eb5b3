package enumerate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hostprov/diskcat/internal/cache"
)

// Attrs holds descriptive device attributes used by the detail view.
// These come from per-device sysfs files and are not part of the
// catalog itself.
type Attrs struct {
	Model  string
	Vendor string
}

// Attrs reads model and vendor for a device from sysfs. Results are
// cached for the life of the process; missing attributes stay empty.
func (s *SysfsEnumerator) Attrs(name string) Attrs {
	c := cache.Global()
	cacheKey := "sysfs:attrs:" + name

	if cached := c.Get(cacheKey); cached != nil {
		return cached.(Attrs)
	}

	devicePath := filepath.Join(s.root(), name, "device")

	var attrs Attrs
	if data, err := os.ReadFile(filepath.Join(devicePath, "model")); err == nil {
		attrs.Model = strings.TrimSpace(string(data))
	}
	if data, err := os.ReadFile(filepath.Join(devicePath, "vendor")); err == nil {
		attrs.Vendor = strings.TrimSpace(string(data))
	}

	c.SetSlow(cacheKey, attrs)
	return attrs
}
