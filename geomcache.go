package ink

import (
	"log/slog"

	"github.com/gogpu/ink/internal/cache"
)

// Derived-geometry side tables, keyed by point-sequence identity
// handles rather than point values. Rebinding a shape's points moves
// it to a fresh key, so stale entries are never served; the soft
// limits age out entries for discarded sequences, and ReleaseShape
// evicts a destroyed shape's entries eagerly.

// rotatedKey keys geometry derived from a point sequence at a given
// rotation.
type rotatedKey struct {
	geom     uint64
	rotation float64
}

// strokeKey keys geometry derived from a point sequence under a given
// style and completion state.
type strokeKey struct {
	geom  uint64
	style Style
	done  bool
}

var (
	boundsCache        = cache.New[uint64, Bounds](1024)
	rotatedBoundsCache = cache.New[rotatedKey, Bounds](1024)
	rotatedPointsCache = cache.New[rotatedKey, []Point](512)
	outlineCache       = cache.New[strokeKey, *Path](256)
	indicatorCache     = cache.New[strokeKey, *Path](256)
)

// ReleaseShape evicts every cached value derived from the shape's
// current point sequence. Call when a shape is destroyed; the caches
// would also age the entries out on their own, so skipping this is a
// memory-pressure concern, not a correctness one.
func ReleaseShape(s *Shape) {
	if s == nil || s.geomID == 0 {
		return
	}
	id := s.geomID
	removed := boundsCache.DeleteFunc(func(k uint64) bool { return k == id })
	removed += rotatedBoundsCache.DeleteFunc(func(k rotatedKey) bool { return k.geom == id })
	removed += rotatedPointsCache.DeleteFunc(func(k rotatedKey) bool { return k.geom == id })
	removed += outlineCache.DeleteFunc(func(k strokeKey) bool { return k.geom == id })
	removed += indicatorCache.DeleteFunc(func(k strokeKey) bool { return k.geom == id })
	if removed > 0 {
		Logger().Debug("ink: released shape geometry",
			slog.String("shape", s.ID),
			slog.Int("entries", removed))
	}
}
