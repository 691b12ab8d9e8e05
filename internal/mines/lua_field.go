package mines

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Shopify/go-lua"
)

//go:embed minefield.lua
var luaSource string

// LuaField answers sweeps by calling into an embedded Lua rendition of
// the minefield, the scripted counterpart of Field. A detonation comes
// back across the scripting boundary as a Lua error carrying the
// "detonated" signal; any other script failure is an oracle fault.
//
// Calls into the Lua state are serialized behind a single mutex.
type LuaField struct {
	mu     sync.Mutex
	state  *lua.State
	params GameParams
	swept  []bool
}

// NewLuaField loads the embedded script and initializes a field in the
// Lua state. A zero seed leaves the script's generator unseeded.
func NewLuaField(params GameParams, seed int64) (*LuaField, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("new lua field: %w", err)
	}
	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := lua.DoString(state, luaSource); err != nil {
		return nil, fmt.Errorf("load minefield script: %w", err)
	}
	state.Global("new_field")
	state.PushInteger(params.Width)
	state.PushInteger(params.Height)
	state.PushInteger(params.MineCount)
	state.PushInteger(int(seed))
	if err := state.ProtectedCall(4, 0, 0); err != nil {
		return nil, fmt.Errorf("init minefield script: %w", err)
	}
	return &LuaField{
		state:  state,
		params: params,
		swept:  make([]bool, params.CellCount()),
	}, nil
}

func (f *LuaField) Width() int     { return f.params.Width }
func (f *LuaField) Height() int    { return f.params.Height }
func (f *LuaField) MineCount() int { return f.params.MineCount }

func (f *LuaField) Sweep(col, row int) (Outcome, error) {
	if !f.params.PointInBounds(col, row) {
		return 0, AssertionError{fmt.Sprintf("sweep out of bounds: %d:%d", col, row)}
	}
	i := row*f.params.Width + col
	if f.swept[i] {
		return 0, AssertionError{fmt.Sprintf("cell %d:%d swept twice", col, row)}
	}
	f.swept[i] = true

	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Global("sweep_cell")
	f.state.PushInteger(col)
	f.state.PushInteger(row)
	if err := f.state.ProtectedCall(2, 1, 0); err != nil {
		if strings.Contains(err.Error(), "detonated") {
			return Detonated, nil
		}
		return 0, fmt.Errorf("sweep_cell(%d, %d): %w", col, row, err)
	}
	count, ok := f.state.ToInteger(-1)
	f.state.Pop(1)
	if !ok || count < 0 || count > 8 {
		return 0, fmt.Errorf("sweep_cell(%d, %d) returned a non-count", col, row)
	}
	return Outcome(count), nil
}
