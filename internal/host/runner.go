// Package host runs the optimizer guest module and speaks its buffer ABI.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"GasWhisperer/internal/abi"
)

const (
	exportAlloc    = "alloc"
	exportFree     = "free"
	exportOptimize = "optimize"

	// DefaultMemoryLimitPages caps guest memory at 64MB (64KB pages).
	DefaultMemoryLimitPages = 1024
)

// ErrMissingExport is returned when the guest lacks one of the ABI exports.
var ErrMissingExport = errors.New("guest module is missing an export")

type options struct {
	logger      *zap.SugaredLogger
	memoryPages uint32
}

// Option configures a Runner.
type Option func(*options)

// WithLogger sets the logger used for guest lifecycle messages.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithMemoryLimitPages caps guest linear memory.
func WithMemoryLimitPages(pages uint32) Option {
	return func(o *options) { o.memoryPages = pages }
}

// Runner owns one instantiated guest. Calls are serialized: a guest instance is
// single-threaded.
type Runner struct {
	mu       sync.Mutex
	runtime  wazero.Runtime
	module   api.Module
	memory   api.Memory
	alloc    api.Function
	free     api.Function
	optimize api.Function
	logger   *zap.SugaredLogger
}

// NewRunner compiles and instantiates the guest module in wasm.
func NewRunner(ctx context.Context, wasm []byte, opts ...Option) (*Runner, error) {
	o := &options{logger: zap.NewNop().Sugar(), memoryPages: DefaultMemoryLimitPages}
	for _, opt := range opts {
		opt(o)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().
		WithMemoryLimitPages(o.memoryPages).
		WithCloseOnContextDone(true))

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate wasi: %w", err)
	}

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("compile guest: %w", err)
	}

	// Reactor modules built with -buildmode=c-shared initialize through _initialize.
	modCfg := wazero.NewModuleConfig().
		WithName("gasopt").
		WithStartFunctions("_initialize").
		WithSysWalltime().
		WithSysNanotime()
	mod, err := rt.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate guest: %w", err)
	}

	r := &Runner{runtime: rt, module: mod, logger: o.logger}
	for name, fn := range map[string]*api.Function{
		exportAlloc:    &r.alloc,
		exportFree:     &r.free,
		exportOptimize: &r.optimize,
	} {
		if *fn = mod.ExportedFunction(name); *fn == nil {
			rt.Close(ctx)
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, name)
		}
	}
	if r.memory = mod.Memory(); r.memory == nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("%w: memory", ErrMissingExport)
	}

	r.logger.Infof("[INFO] guest module loaded: %d bytes, memory %d bytes", len(wasm), r.memory.Size())
	return r, nil
}

// Optimize sends a request through the guest and returns a copy of its response.
// Both the request and the response buffers are released before returning.
func (r *Runner) Optimize(ctx context.Context, input []byte) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.alloc.Call(ctx, uint64(len(input)))
	if err != nil {
		return nil, fmt.Errorf("alloc request buffer: %w", err)
	}
	inPtr := uint32(res[0])
	defer r.release(ctx, inPtr)

	if !r.memory.Write(inPtr, input) {
		return nil, fmt.Errorf("write request: %d bytes at %d out of range", len(input), inPtr)
	}

	res, err = r.optimize.Call(ctx, uint64(inPtr), uint64(len(input)))
	if err != nil {
		return nil, fmt.Errorf("call optimize: %w", err)
	}
	outPtr, outLen := abi.Unpack(res[0])
	defer r.release(ctx, outPtr)

	view, ok := r.memory.Read(outPtr, outLen)
	if !ok {
		return nil, fmt.Errorf("read response: %d bytes at %d out of range", outLen, outPtr)
	}
	// view aliases guest memory, which is reused once the buffer is freed.
	return append([]byte(nil), view...), nil
}

func (r *Runner) release(ctx context.Context, ptr uint32) {
	if _, err := r.free.Call(ctx, uint64(ptr)); err != nil {
		r.logger.Warnf("[WARN] free guest buffer %d: %v", ptr, err)
	}
}

// Close tears down the guest and its runtime.
func (r *Runner) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Infof("[INFO] closing guest module")
	return r.runtime.Close(ctx)
}
