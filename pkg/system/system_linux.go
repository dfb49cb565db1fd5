package system

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func fetchPlatform(info *Information) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		info.Name = unix.ByteSliceToString(uts.Sysname[:])
		info.Kernel = unix.ByteSliceToString(uts.Release[:])
		info.Version = unix.ByteSliceToString(uts.Version[:])
		info.Machine = unix.ByteSliceToString(uts.Machine[:])
	}
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil {
		unit := uint64(si.Unit)
		if unit == 0 {
			unit = 1
		}
		info.MemoryTotal = uint64(si.Totalram) * unit
		info.MemoryUsed = (uint64(si.Totalram) - uint64(si.Freeram)) * unit
	}
	info.CPUBrand = cpuBrand("/proc/cpuinfo")
}

func cpuBrand(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
