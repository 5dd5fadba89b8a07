// Package provload is the Composition Root for the provider loader.
//
// It connects the provider contract (pkg/core) with the adapters that supply
// implementations: provider libraries opened from disk (pkg/adapters/dl) and
// the built-in dummy provider (pkg/adapters/dummy).
//
// A provider library is a Go plugin exporting a Bootstrap under
// BootstrapSymbol. Loading opens the library, calls the bootstrap to populate
// an operation table, verifies the table against InterfaceVersion and the
// required operations, and returns a Handle. Any failure releases everything
// the call acquired and returns a nil handle.
//
// Usage:
//
//	h, err := provload.Load("/usr/lib/galera/libprovider.so",
//		provload.WithSlog(logger),
//	)
//	if err != nil {
//		os.Exit(provload.Status(err))
//	}
//	defer provload.Unload(h)
//
//	err = h.Init(core.InitArgs{NodeName: "node-1"})
package provload
