package knuth

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// All working state of a paragraph-breaking call lives in a scratch
// arena. Paragraph calls are short-lived and frequent during document
// layout, so we pool the arenas to avoid re-allocating the backing
// slices over and over.
type scratch struct {
	cands   []candidate
	nodes   []node
	actives []int
}

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &scratch{}
			return sc, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch fetches an arena from the pool, empty but with its
// backing slices intact.
func borrowScratch() *scratch {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	sc := o.(*scratch)
	return sc
}

// Clears the arena and puts it back into the pool.
func (sc *scratch) releaseIntoPool() {
	sc.cands = sc.cands[:0]
	sc.nodes = sc.nodes[:0]
	sc.actives = sc.actives[:0]
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, sc)
}
