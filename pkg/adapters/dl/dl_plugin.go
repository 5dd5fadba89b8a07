//go:build linux || darwin || freebsd

package dl

import "plugin"

func open(path string) (*Lib, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &Lib{
		name: path,
		lookup: func(symbol string) (any, error) {
			return p.Lookup(symbol)
		},
	}, nil
}
