package enumerate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sectorSize = 512

// SysfsEnumerator lists block devices by reading /sys/block directly
// (no process spawning, no drive wake).
type SysfsEnumerator struct {
	Root   string // sysfs block directory, defaults to /sys/block
	DevDir string // device node directory, defaults to /dev
}

func (s *SysfsEnumerator) root() string {
	if s.Root != "" {
		return s.Root
	}
	return "/sys/block"
}

func (s *SysfsEnumerator) devDir() string {
	if s.DevDir != "" {
		return s.DevDir
	}
	return "/dev"
}

// Enumerate reads every entry under the sysfs block directory. A device
// whose attributes cannot be read is still reported with what is known;
// only an unreadable block directory fails the enumeration.
func (s *SysfsEnumerator) Enumerate() ([]Device, error) {
	entries, err := os.ReadDir(s.root())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.root(), err)
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		devices = append(devices, Device{
			Path:      filepath.Join(s.devDir(), name),
			Type:      s.deviceType(name),
			SizeBytes: s.sizeBytes(name),
		})
	}
	return devices, nil
}

// sizeBytes reads the device capacity from the sysfs size attribute,
// which is counted in 512-byte sectors regardless of the device's own
// block size. Returns 0 if the attribute is missing or malformed.
func (s *SysfsEnumerator) sizeBytes(name string) uint64 {
	data, err := os.ReadFile(filepath.Join(s.root(), name, "size"))
	if err != nil {
		return 0
	}
	sectors, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return sectors * sectorSize
}

// deviceType classifies a device from kernel-exposed markers: a dm/
// subdirectory marks device-mapper, SCSI device type 5 (ROM class)
// marks optical drives.
func (s *SysfsEnumerator) deviceType(name string) DeviceType {
	if info, err := os.Stat(filepath.Join(s.root(), name, "dm")); err == nil && info.IsDir() {
		return TypeDeviceMapper
	}
	if data, err := os.ReadFile(filepath.Join(s.root(), name, "device", "type")); err == nil {
		if strings.TrimSpace(string(data)) == "5" {
			return TypeOptical
		}
	}
	return TypeDisk
}
