//go:build !(linux || darwin || freebsd)

package dl

import (
	"fmt"
	"runtime"

	"github.com/aretw0/provload/pkg/core"
)

func open(path string) (*Lib, error) {
	return nil, fmt.Errorf("%s: %w (%s)", path, core.ErrUnsupported, runtime.GOOS)
}
