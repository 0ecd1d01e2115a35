//go:build !unix

package terminal

import "errors"

// OpenLocal is only available on unix systems; use `termrex serve` and an
// SSH client elsewhere.
func OpenLocal() (*Terminal, error) {
	return nil, errors.New("local play is not supported on this platform")
}
