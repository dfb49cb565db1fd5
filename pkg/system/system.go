// Package system collects information about the machine running the editor.
package system

import "runtime"

// Graphics describes the presentation backend.
type Graphics struct {
	Adapter string
	Backend string
}

// Information is a snapshot of the system.
type Information struct {
	Name            string
	Kernel          string
	Version         string
	Machine         string
	CPUBrand        string
	CPUCores        int
	MemoryTotal     uint64
	MemoryUsed      uint64
	GraphicsAdapter string
	GraphicsBackend string
}

// Fetch collects a snapshot of the system. It may block on the operating
// system and should not be called on the UI goroutine.
func Fetch(g Graphics) Information {
	info := Information{
		Name:            runtime.GOOS,
		Machine:         runtime.GOARCH,
		CPUCores:        runtime.NumCPU(),
		GraphicsAdapter: g.Adapter,
		GraphicsBackend: g.Backend,
	}
	fetchPlatform(&info)
	return info
}
