package enumerate

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// LsblkEnumerator lists block devices by parsing lsblk JSON output.
// Used as the fallback when sysfs is not available (e.g. restricted
// containers that still expose the lsblk binary).
type LsblkEnumerator struct{}

// Enumerate runs lsblk for whole devices only (-d) with byte sizes (-b).
func (l *LsblkEnumerator) Enumerate() ([]Device, error) {
	out, err := exec.Command("lsblk", "-d", "-b", "-o", "NAME,PATH,SIZE,TYPE", "-J").Output()
	if err != nil {
		return nil, fmt.Errorf("running lsblk: %w", err)
	}
	return parseLsblk(out)
}

func parseLsblk(out []byte) ([]Device, error) {
	var result struct {
		Blockdevices []struct {
			Name string `json:"name"`
			Path string `json:"path"`
			// lsblk emits size as a number or a quoted string depending on version
			Size json.RawMessage `json:"size"`
			Type string          `json:"type"`
		} `json:"blockdevices"`
	}

	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("parsing lsblk output: %w", err)
	}

	devices := make([]Device, 0, len(result.Blockdevices))
	for _, bd := range result.Blockdevices {
		path := bd.Path
		if path == "" {
			path = "/dev/" + bd.Name
		}
		dev := Device{
			Path: path,
			Type: mapLsblkType(bd.Type),
		}
		if raw := strings.Trim(string(bd.Size), `"`); raw != "" && raw != "null" {
			if size, err := strconv.ParseUint(raw, 10, 64); err == nil {
				dev.SizeBytes = size
			}
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// mapLsblkType converts lsblk's TYPE column to a DeviceType. lsblk
// reports device-mapper targets by their role (lvm, crypt, mpath).
func mapLsblkType(t string) DeviceType {
	switch t {
	case "disk", "loop":
		return TypeDisk
	case "rom":
		return TypeOptical
	case "dm", "lvm", "crypt", "mpath":
		return TypeDeviceMapper
	case "":
		return TypeUnknown
	default:
		return TypeDisk
	}
}
