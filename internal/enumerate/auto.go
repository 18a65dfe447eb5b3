package enumerate

// AutoEnumerator tries sysfs first (more accurate, no process spawning)
// and falls back to lsblk when sysfs is unavailable.
type AutoEnumerator struct {
	Primary  Enumerator // defaults to SysfsEnumerator
	Fallback Enumerator // defaults to LsblkEnumerator
}

func (a *AutoEnumerator) Enumerate() ([]Device, error) {
	primary := a.Primary
	if primary == nil {
		primary = &SysfsEnumerator{}
	}
	devices, err := primary.Enumerate()
	if err == nil {
		return devices, nil
	}

	fallback := a.Fallback
	if fallback == nil {
		fallback = &LsblkEnumerator{}
	}
	return fallback.Enumerate()
}
