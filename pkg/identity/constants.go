package identity

// Fixed identity values for the browser sandbox
const (
	// Username is reported instead of the OS account name
	Username = "anonymous"

	// Realname is reported instead of the account's full name
	Realname = "Anonymous"
)

// Arch is the CPU architecture of the wasm target
type Arch string

const (
	// Wasm32 is reported on 32-bit pointer targets
	Wasm32 Arch = "wasm32"

	// Wasm64 is reported on 64-bit pointer targets
	Wasm64 Arch = "wasm64"
)

func (a Arch) String() string { return string(a) }

// DesktopEnv is the desktop shell hosting the program
type DesktopEnv string

// WebBrowser is the only desktop environment a browser program has
const WebBrowser DesktopEnv = "Web Browser"

func (d DesktopEnv) String() string { return string(d) }

// Fact names used in log records
const (
	FactUsername   = "username"
	FactRealname   = "realname"
	FactDevicename = "devicename"
	FactHostname   = "hostname"
	FactDistro     = "distro"
	FactPlatform   = "platform"
	FactArch       = "arch"
	FactDesktopEnv = "desktop_env"
	FactLang       = "lang"
)

// pointerBits is 64 on 64-bit pointer targets and 32 otherwise
const pointerBits = 32 << (^uintptr(0) >> 63)

// targetArch derives the architecture from the compiled pointer width.
func targetArch() Arch {
	if pointerBits == 64 {
		return Wasm64
	}
	return Wasm32
}
