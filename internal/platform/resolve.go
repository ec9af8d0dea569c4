package platform

import "fmt"

// UnknownKernelError reports a kernel name no release assets exist for.
type UnknownKernelError struct {
	Kernel string
}

func (e *UnknownKernelError) Error() string {
	return fmt.Sprintf("cannot determine what binary to download for your kernel: %s", e.Kernel)
}

// UnknownArchError reports a machine hardware name that is not in the
// trusted set.
type UnknownArchError struct {
	Machine string
}

func (e *UnknownArchError) Error() string {
	return fmt.Sprintf("cannot determine what binary to download for your CPU architecture: %s", e.Machine)
}

// ResolvePlatform maps a kernel name to the platform identity used in
// release asset filenames. Linux assets are statically linked against
// musl, so that platform carries an ABI suffix.
func ResolvePlatform(kernel string) (Platform, error) {
	switch kernel {
	case "Linux":
		return Platform{Name: "Linux", Ext: "tar.gz", ABI: "-musl"}, nil
	case "Darwin":
		return Platform{Name: "Darwin", Ext: "tar.gz"}, nil
	case "Windows_NT":
		return Platform{Name: "Windows", Ext: "zip"}, nil
	default:
		return Platform{}, &UnknownKernelError{Kernel: kernel}
	}
}

// ResolveArch maps a machine hardware name to the normalized architecture
// tag used in release asset filenames. Machine name reporting is
// inconsistent across kernels (some report placeholder values), so only
// this small set is trusted; everything else fails rather than guesses.
func ResolveArch(machine string) (string, error) {
	switch machine {
	case "x86_64":
		return "x86_64", nil
	case "arm64", "aarch64":
		return "aarch64", nil
	default:
		return "", &UnknownArchError{Machine: machine}
	}
}
