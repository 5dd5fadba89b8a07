package provload

import (
	"log/slog"

	"github.com/aretw0/provload/internal/platform"
	"github.com/aretw0/provload/pkg/core"
)

// Version is the version of the library and CLI.
const Version = "0.3.0"

// --- Types ---

// Handle is a loaded, verified provider.
type Handle = core.Handle

// Provider is the operation interface every handle implements.
type Provider = core.Provider

// Table is the operation table a provider's bootstrap populates.
type Table = core.Table

// Bootstrap is the routine a provider library exports under BootstrapSymbol.
type Bootstrap = core.Bootstrap

// LogFunc receives the loader's log lines.
type LogFunc = core.LogFunc

// Loader loads and unloads providers with a fixed configuration.
type Loader = platform.Loader

// Config is the YAML loader configuration.
type Config = platform.Config

// --- Constants ---

const (
	// None is the sentinel spec selecting the built-in dummy provider.
	None             = core.None
	InterfaceVersion = core.InterfaceVersion
	BootstrapSymbol  = core.BootstrapSymbol
)

// --- Configuration ---

// Option defines a functional option for configuring the loader.
type Option = platform.Option

// WithLogger replaces the default stderr log sink.
func WithLogger(log LogFunc) Option {
	return platform.WithLogger(log)
}

// WithSlog routes loader log lines to a slog.Logger.
func WithSlog(logger *slog.Logger) Option {
	return platform.WithSlog(logger)
}

// WithOpener replaces the platform library opener.
func WithOpener(op core.Opener) Option {
	return platform.WithOpener(op)
}

// WithFallback replaces the bootstrap used for the sentinel spec.
func WithFallback(b Bootstrap) Option {
	return platform.WithFallback(b)
}

// WithMaxHandles caps the number of live handles; zero means no limit. Passed
// to the package-level Load, it caps the handles of the shared loader.
func WithMaxHandles(n int) Option {
	return platform.WithMaxHandles(n)
}

// WithEvents publishes load, unload and reject events to ch without blocking.
func WithEvents(ch chan<- core.Event) Option {
	return platform.WithEvents(ch)
}

// --- Factory ---

// New creates a Loader.
func New(opts ...Option) *Loader {
	return platform.New(opts...)
}

// std backs the package-level Load and Unload.
var std = platform.New()

// Default returns the loader shared by the package-level functions.
func Default() *Loader {
	return std
}

// Configure applies opts to the shared loader. They stay in effect for every
// later Load and Unload until replaced.
func Configure(opts ...Option) {
	std.Configure(opts...)
}

// Load applies opts to the shared loader and loads the provider named by
// spec. An empty spec or None selects the dummy provider.
func Load(spec string, opts ...Option) (*Handle, error) {
	std.Configure(opts...)
	return std.Load(spec)
}

// Unload applies opts to the shared loader and releases h. Without opts it
// logs through the sink installed by an earlier Load. A nil h is logged and
// ignored.
func Unload(h *Handle, opts ...Option) error {
	std.Configure(opts...)
	return std.Unload(h)
}

// Status converts a Load error into its numeric status (0, EINVAL, ENOMEM or
// the provider's own errno).
func Status(err error) int {
	return core.Status(err)
}

// Verify checks an operation table against the interface version and the
// required operations.
func Verify(t *Table, log LogFunc) error {
	return core.Verify(t, core.InterfaceVersion, log)
}

// --- Discovery ---

// Discover lists provider libraries under root matching a doublestar pattern
// (default "**/*.so").
func Discover(root, pattern string) ([]string, error) {
	return platform.Discover(root, pattern)
}

// FindProvider looks upwards from startDir for a library called name.
func FindProvider(startDir, name string) (string, error) {
	return platform.FindProvider(startDir, name)
}

// LoadConfig reads a YAML loader configuration.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}
