// Package entropy supplies the external entropy seed a draw derives its
// winning numbers from. The engine treats the seed as an opaque hex-like
// string; where it comes from is this package's concern.
package entropy

import "context"

// Source produces one entropy seed on demand. A seed should come from an
// unpredictable, publicly observable event (a recent block hash) so anyone
// can audit the draw that consumed it.
type Source interface {
	Seed(ctx context.Context) (string, error)
}

// Static is a fixed seed, used by the CLI --seed flag and tests.
type Static string

var _ Source = Static("")

func (s Static) Seed(context.Context) (string, error) {
	return string(s), nil
}
