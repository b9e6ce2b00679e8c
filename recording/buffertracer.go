package recording

import (
	"fmt"

	"github.com/sarchlab/staticvec/hooking"
	"github.com/sarchlab/staticvec/naming"
	"github.com/sarchlab/staticvec/queueing"
)

// OpTrace is one recorded buffer operation.
type OpTrace struct {
	Seq       uint64
	Buffer    string
	Op        string
	Item      string
	SizeAfter int
}

// A BufferTracer is a hook that records buffer push and pop traffic with a
// DataRecorder. Attach it to a buffer with AcceptHook.
type BufferTracer struct {
	recorder  DataRecorder
	tableName string
	seq       uint64
}

// NewBufferTracer creates a BufferTracer that writes into the named table of
// the given recorder. The table is created immediately.
func NewBufferTracer(recorder DataRecorder, tableName string) *BufferTracer {
	t := &BufferTracer{
		recorder:  recorder,
		tableName: tableName,
	}

	recorder.CreateTable(tableName, OpTrace{})

	return t
}

// Func records one push or pop operation. Hooks firing from other positions
// are ignored.
func (t *BufferTracer) Func(ctx hooking.HookCtx) {
	var op string

	switch ctx.Pos {
	case queueing.HookPosBufPush:
		op = "push"
	case queueing.HookPosBufPop:
		op = "pop"
	default:
		return
	}

	t.seq++

	trace := OpTrace{
		Seq:       t.seq,
		Op:        op,
		Item:      fmt.Sprintf("%v", ctx.Item),
		SizeAfter: -1,
	}

	if named, ok := ctx.Domain.(naming.Named); ok {
		trace.Buffer = named.Name()
	}

	if s, ok := ctx.Domain.(interface{ Size() int }); ok {
		trace.SizeAfter = s.Size()
	}

	t.recorder.InsertData(t.tableName, trace)
}

var _ hooking.Hook = (*BufferTracer)(nil)
