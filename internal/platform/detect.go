package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// kernelNames maps GOOS values to the uname -s style names the release
// pipeline keys its assets on.
var kernelNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Darwin",
	"windows": "Windows_NT",
}

// RealDetector implements Detector using actual host introspection.
type RealDetector struct{}

// NewDetector creates a new host detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect returns the raw kernel and machine hardware names for the
// running host. The kernel name comes from runtime.GOOS; a GOOS with no
// uname-style mapping is passed through raw for ResolvePlatform to
// reject. The machine name comes from the kernel via gopsutil and is
// left unnormalized so ResolveArch can decide whether to trust it.
func (d *RealDetector) Detect(ctx context.Context) (*Host, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("host detection cancelled: %w", err)
	}

	kernel, ok := kernelNames[runtime.GOOS]
	if !ok {
		kernel = runtime.GOOS
	}

	machine, err := host.KernelArch()
	if err != nil {
		return nil, fmt.Errorf("detect machine hardware name: %w", err)
	}

	return &Host{Kernel: kernel, Machine: machine}, nil
}
