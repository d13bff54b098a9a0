package khmerlegacy

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// workspace holds the intermediate buffers of a conversion.
type workspace struct {
	input  []rune
	middle []rune
	output []rune
	pooled bool
}

// Buffers larger than this are not kept in the pool.
const maxPooledBuffer = 1 << 16

// Conversions are short-lived and need three buffers each. To avoid
// re-allocating them for every call we will pool them.
type workspacePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWorkspacePool *workspacePool

func init() {
	globalWorkspacePool = &workspacePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			ws := &workspace{pooled: true}
			return ws, nil
		})
	globalWorkspacePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWorkspacePool.opool = pool.NewObjectPool(globalWorkspacePool.ctx, factory, config)
}

// borrowWorkspace returns a workspace with empty buffers.
func borrowWorkspace() *workspace {
	o, err := globalWorkspacePool.opool.BorrowObject(globalWorkspacePool.ctx)
	if err != nil {
		CT().Errorf("workspace pool: %v", err)
		return &workspace{}
	}
	return o.(*workspace)
}

// release clears the workspace and puts it back into the pool.
func (ws *workspace) release() {
	if !ws.pooled {
		return
	}
	ws.input = truncate(ws.input)
	ws.middle = truncate(ws.middle)
	ws.output = truncate(ws.output)
	_ = globalWorkspacePool.opool.ReturnObject(globalWorkspacePool.ctx, ws)
}

func truncate(buf []rune) []rune {
	if cap(buf) > maxPooledBuffer {
		return nil
	}
	return buf[:0]
}
