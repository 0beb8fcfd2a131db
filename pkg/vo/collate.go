package vo

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A collator keeps internal buffers, so each one is guarded by its own lock.
type lockedCollator struct {
	mu sync.Mutex
	c  *collate.Collator
}

var collators sync.Map // language tag string -> *lockedCollator

// compareText orders two strings with the collation rules of tag.
func compareText(tag language.Tag, a, b string) int {
	if a == b {
		return 0
	}

	key := tag.String()
	lc, ok := collators.Load(key)
	if !ok {
		lc, _ = collators.LoadOrStore(key, &lockedCollator{c: collate.New(tag)})
	}

	l := lc.(*lockedCollator)
	l.mu.Lock()
	res := l.c.CompareString(a, b)
	l.mu.Unlock()

	if res == 0 {
		// Collation-equal but different code points; fall back to a stable order.
		return strings.Compare(a, b)
	}
	return res
}
