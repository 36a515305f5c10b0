package conf

import "runtime"

// Platform describes the host OS. It is resolved once in the root command and
// handed to whatever composes process invocations, so composition itself does
// not depend on the machine it runs on.
type Platform struct {
	OS string
}

// HostPlatform returns the platform the CLI is running on.
func HostPlatform() Platform {
	return Platform{OS: runtime.GOOS}
}

func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// ExecutableSuffix is appended to node tool names: on Windows npm installs
// them as .cmd shims.
func (p Platform) ExecutableSuffix() string {
	if p.IsWindows() {
		return ".cmd"
	}
	return ""
}

// Executable returns name with the platform suffix.
func (p Platform) Executable(name string) string {
	return name + p.ExecutableSuffix()
}
