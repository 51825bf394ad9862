package cache

import "github.com/katalvlaran/polycube/voxel"

// NullCache is a Cache that never persists anything: Exists always reports
// false and Store is a no-op. It satisfies callers (library consumers,
// --no-cache on the CLI) that want the Growth Engine's interface without
// any on-disk side effect.
type NullCache struct{}

// Exists always returns false.
func (NullCache) Exists(int) bool { return false }

// Load always fails, since nothing is ever stored.
func (NullCache) Load(n int) ([]voxel.Grid, error) {
	return nil, errNullCacheEmpty
}

// Store is a no-op that always succeeds.
func (NullCache) Store(int, []voxel.Grid) error { return nil }

var errNullCacheEmpty = &nullCacheError{}

type nullCacheError struct{}

func (*nullCacheError) Error() string { return "cache: NullCache has no entries" }
