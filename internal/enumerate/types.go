package enumerate

// DeviceType is the classification tag reported by the platform for a
// block device. Only the distinctions the catalog filter needs are kept.
type DeviceType string

const (
	TypeDisk         DeviceType = "disk"
	TypeDeviceMapper DeviceType = "device-mapper"
	TypeOptical      DeviceType = "optical"
	TypeUnknown      DeviceType = "unknown"
)

// Device is one block device as reported by an enumeration source.
// Records are produced fresh on every Enumerate call and never mutated.
type Device struct {
	Path      string     // absolute device node path, e.g. /dev/sda
	Type      DeviceType // platform classification
	SizeBytes uint64     // capacity as reported by the platform
}

// Enumerator lists every block device known to the platform.
// Implementations must return all devices or an error, never a partial
// list: callers treat an error as a failed enumeration.
type Enumerator interface {
	Enumerate() ([]Device, error)
}

// ForMode returns the enumerator for the configured discovery mode.
func ForMode(mode string) Enumerator {
	switch mode {
	case "sysfs":
		return &SysfsEnumerator{}
	case "lsblk":
		return &LsblkEnumerator{}
	default:
		return &AutoEnumerator{}
	}
}
