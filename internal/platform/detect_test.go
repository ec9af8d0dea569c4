package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	detector := NewDetector()

	hostInfo, err := detector.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if hostInfo.Kernel == "" {
		t.Error("Detect returned empty kernel name")
	}
	if hostInfo.Machine == "" {
		t.Error("Detect returned empty machine name")
	}

	if want, ok := kernelNames[runtime.GOOS]; ok && hostInfo.Kernel != want {
		t.Errorf("kernel = %q, want %q for GOOS %q", hostInfo.Kernel, want, runtime.GOOS)
	}
}

func TestDetectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	detector := NewDetector()
	if _, err := detector.Detect(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
