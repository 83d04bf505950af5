package wasm

import (
	"errors"

	"github.com/tetratelabs/wazero/api"
)

var errOutOfRange = errors.New("out of range of memory size")

// Memory provides bounds checked reads of a guest's linear memory.
//
// Reads return copies: slices handed out by wazero alias guest memory and are
// invalidated when the guest grows its memory.
type Memory struct {
	mem api.Memory
}

// NewMemory creates a memory helper.
func NewMemory(module api.Module) *Memory {
	return &Memory{mem: module.Memory()}
}

// Size returns the current memory size in bytes, 0 if the module has no
// memory.
func (m *Memory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

// ReadBytes copies length bytes starting at ptr.
// A zero length yields nil without touching memory, so a 0 pointer is valid.
func (m *Memory) ReadBytes(ptr, length uint32) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	if m.mem == nil {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length, Err: errors.New("module has no memory")}
	}
	buf, ok := m.mem.Read(ptr, length)
	if !ok {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length, Err: errOutOfRange}
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// ReadString reads a string of length bytes starting at ptr.
func (m *Memory) ReadString(ptr, length uint32) (string, error) {
	b, err := m.ReadBytes(ptr, length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
