//go:build !linux

package system

func fetchPlatform(*Information) {}
