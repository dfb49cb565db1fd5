package system_test

import (
	"runtime"
	"testing"

	. "src.plugview.dev/pkg/system"
)

func TestFetch(t *testing.T) {
	info := Fetch(Graphics{Adapter: "headless", Backend: "memory"})
	if info.CPUCores != runtime.NumCPU() {
		t.Errorf("CPUCores = %d, want %d", info.CPUCores, runtime.NumCPU())
	}
	if info.GraphicsAdapter != "headless" || info.GraphicsBackend != "memory" {
		t.Errorf("graphics not carried over: %+v", info)
	}
	if info.Name == "" {
		t.Errorf("Name is empty")
	}
}
