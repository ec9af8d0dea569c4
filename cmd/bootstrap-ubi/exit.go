package main

import (
	"errors"

	"github.com/houseabsolute/bootstrap-ubi/internal/fetch"
	"github.com/houseabsolute/bootstrap-ubi/internal/install"
	"github.com/houseabsolute/bootstrap-ubi/internal/platform"
)

// Exit codes are part of the bootstrap contract: calling scripts
// distinguish failure causes by code.
const (
	exitFailure      = 1 // anything not covered below
	exitPrecondition = 3 // missing target directory or unrecognized kernel
	exitUnknownArch  = 4 // unrecognized CPU architecture
	exitTransport    = 5 // no HTTP status obtained at all
	exitHTTPStatus   = 6 // HTTP status other than 200
)

// exitCodeFor maps a run error to its process exit code.
func exitCodeFor(err error) int {
	var (
		targetErr    *install.TargetError
		kernelErr    *platform.UnknownKernelError
		archErr      *platform.UnknownArchError
		transportErr *fetch.TransportError
		statusErr    *fetch.StatusError
	)

	switch {
	case errors.As(err, &targetErr), errors.As(err, &kernelErr):
		return exitPrecondition
	case errors.As(err, &archErr):
		return exitUnknownArch
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &statusErr):
		return exitHTTPStatus
	default:
		return exitFailure
	}
}
