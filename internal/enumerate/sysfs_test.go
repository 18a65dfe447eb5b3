package enumerate

import (
	"os"
	"path/filepath"
	"testing"
)

// writeSysfs lays out a fake /sys/block tree for one device.
func writeSysfs(t *testing.T, root, name string, files map[string]string, dirs ...string) {
	t.Helper()
	base := filepath.Join(root, name)
	if err := os.MkdirAll(base, 0755); err != nil {
		t.Fatal(err)
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(base, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for rel, content := range files {
		path := filepath.Join(base, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSysfsEnumerate(t *testing.T) {
	root := t.TempDir()

	// 976773168 sectors * 512 = 500107862016 bytes
	writeSysfs(t, root, "sda", map[string]string{"size": "976773168\n"})
	writeSysfs(t, root, "dm-0", map[string]string{"size": "41943040\n"}, "dm")
	writeSysfs(t, root, "sr0", map[string]string{
		"size":        "2097152\n",
		"device/type": "5\n",
	})
	// no size attribute at all
	writeSysfs(t, root, "sdb", nil)

	e := &SysfsEnumerator{Root: root, DevDir: "/dev"}
	devices, err := e.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	byPath := make(map[string]Device)
	for _, d := range devices {
		byPath[d.Path] = d
	}
	if len(byPath) != 4 {
		t.Fatalf("got %d devices, want 4", len(byPath))
	}

	sda := byPath["/dev/sda"]
	if sda.Type != TypeDisk || sda.SizeBytes != 500107862016 {
		t.Errorf("sda = %+v, want disk of 500107862016 bytes", sda)
	}

	dm := byPath["/dev/dm-0"]
	if dm.Type != TypeDeviceMapper {
		t.Errorf("dm-0 type = %q, want %q", dm.Type, TypeDeviceMapper)
	}

	sr := byPath["/dev/sr0"]
	if sr.Type != TypeOptical {
		t.Errorf("sr0 type = %q, want %q", sr.Type, TypeOptical)
	}

	sdb := byPath["/dev/sdb"]
	if sdb.Type != TypeDisk || sdb.SizeBytes != 0 {
		t.Errorf("sdb = %+v, want disk with unknown size 0", sdb)
	}
}

func TestSysfsEnumerateMalformedSize(t *testing.T) {
	root := t.TempDir()
	writeSysfs(t, root, "sda", map[string]string{"size": "not-a-number\n"})

	e := &SysfsEnumerator{Root: root, DevDir: "/dev"}
	devices, err := e.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(devices) != 1 || devices[0].SizeBytes != 0 {
		t.Errorf("got %+v, want one device with size 0", devices)
	}
}

func TestSysfsEnumerateUnavailable(t *testing.T) {
	e := &SysfsEnumerator{Root: filepath.Join(t.TempDir(), "missing"), DevDir: "/dev"}
	if _, err := e.Enumerate(); err == nil {
		t.Fatal("expected error for missing sysfs root")
	}
}

func TestAutoFallsBackToSecondary(t *testing.T) {
	primary := &SysfsEnumerator{Root: filepath.Join(t.TempDir(), "missing")}

	root := t.TempDir()
	writeSysfs(t, root, "vda", map[string]string{"size": "2048\n"})
	fallback := &SysfsEnumerator{Root: root, DevDir: "/dev"}

	a := &AutoEnumerator{Primary: primary, Fallback: fallback}
	devices, err := a.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(devices) != 1 || devices[0].Path != "/dev/vda" {
		t.Errorf("got %+v, want the fallback's /dev/vda", devices)
	}
}

func TestAutoPrefersPrimary(t *testing.T) {
	root := t.TempDir()
	writeSysfs(t, root, "sda", map[string]string{"size": "2048\n"})
	primary := &SysfsEnumerator{Root: root, DevDir: "/dev"}

	a := &AutoEnumerator{Primary: primary, Fallback: &LsblkEnumerator{}}
	devices, err := a.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(devices) != 1 || devices[0].Path != "/dev/sda" {
		t.Errorf("got %+v, want the primary's /dev/sda", devices)
	}
}
