// Package scripting provides a Script component that binds an entity to
// its own Lua virtual machine, grounded on the teacher's lua package but
// stripped to exactly what a storage-core component needs: compile on
// construction, tear down through the Pool's closer contract on removal.
package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Script is an entity's behavior script: a dedicated Lua VM loaded with
// Source. It implements closer (Close() error) so ecs.Pool[Script] runs
// its teardown automatically when the owning entity's Script component
// is removed or the entity is reclaimed by Refresh.
type Script struct {
	VM     *lua.LState
	Source string
}

// NewScript creates a fresh Lua VM and compiles+runs src on it, so a
// syntax error surfaces immediately at Add time rather than on first
// invocation. The caller owns the returned Script and must eventually
// call Close (normally done for it by Pool.remove/virtualRemove).
func NewScript(src string) (*Script, error) {
	vm := lua.NewState()
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("scripting: compile script: %w", err)
	}
	return &Script{VM: vm, Source: src}, nil
}

// Call invokes the named global function defined by the script with the
// given Lua-convertible arguments, discarding any return values.
func (s *Script) Call(fn string, args ...lua.LValue) error {
	if err := s.VM.CallByParam(lua.P{
		Fn:      s.VM.GetGlobal(fn),
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		return fmt.Errorf("scripting: call %s: %w", fn, err)
	}
	return nil
}

// Close closes the Lua VM. A panic raised while closing it (gopher-lua
// panics on certain internal faults rather than returning an error) is
// recovered and returned as an error, which Pool.closeSlot then logs and
// turns into a fatal panic via log.Panicf.
func (s *Script) Close() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scripting: lua VM panicked during close: %v", r)
		}
	}()
	s.VM.Close()
	return nil
}
