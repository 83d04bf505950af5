package wasm

import (
	"encoding/binary"
	"math"

	abi "github.com/woxQAQ/wasm-bundle/api/wasm"
	"github.com/woxQAQ/wasm-bundle/internal/assets"
)

// Value types of the binary format.
const (
	i32 byte = 0x7f
	i64 byte = 0x7e
	f32 byte = 0x7d
)

// fakeFunc is an exported function whose body is a fixed instruction
// sequence.
type fakeFunc struct {
	name    string
	params  []byte
	results []byte
	body    []byte // without the final end
}

type fakeData struct {
	offset uint32
	bytes  []byte
}

// fakeModule assembles a minimal Wasm binary exporting one page of memory
// named "memory" and the given functions.
func fakeModule(funcs []fakeFunc, data []fakeData) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	// One type per function keeps indices aligned.
	types := uleb(uint64(len(funcs)))
	for _, f := range funcs {
		types = append(types, 0x60)
		types = append(types, vec(f.params)...)
		types = append(types, vec(f.results)...)
	}
	out = section(out, 1, types)

	fns := uleb(uint64(len(funcs)))
	for i := range funcs {
		fns = append(fns, uleb(uint64(i))...)
	}
	out = section(out, 3, fns)

	out = section(out, 5, []byte{0x01, 0x00, 0x01})

	exports := uleb(uint64(len(funcs) + 1))
	for i, f := range funcs {
		exports = append(exports, vec([]byte(f.name))...)
		exports = append(exports, 0x00)
		exports = append(exports, uleb(uint64(i))...)
	}
	exports = append(exports, vec([]byte("memory"))...)
	exports = append(exports, 0x02, 0x00)
	out = section(out, 7, exports)

	code := uleb(uint64(len(funcs)))
	for _, f := range funcs {
		body := append([]byte{0x00}, f.body...)
		body = append(body, 0x0b)
		code = append(code, vec(body)...)
	}
	out = section(out, 10, code)

	if len(data) > 0 {
		segs := uleb(uint64(len(data)))
		for _, d := range data {
			segs = append(segs, 0x00)
			segs = append(segs, i32Const(int32(d.offset))...)
			segs = append(segs, 0x0b)
			segs = append(segs, vec(d.bytes)...)
		}
		out = section(out, 11, segs)
	}

	return out
}

func section(out []byte, id byte, content []byte) []byte {
	out = append(out, id)
	out = append(out, uleb(uint64(len(content)))...)
	return append(out, content...)
}

func vec(b []byte) []byte {
	return append(uleb(uint64(len(b))), b...)
}

func uleb(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func sleb(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func i32Const(v int32) []byte { return append([]byte{0x41}, sleb(int64(v))...) }

func i64Const(v int64) []byte { return append([]byte{0x42}, sleb(v)...) }

func f32Const(v float32) []byte {
	return binary.LittleEndian.AppendUint32([]byte{0x43}, math.Float32bits(v))
}

func constU32(name string, v uint32) fakeFunc {
	return fakeFunc{name: name, results: []byte{i32}, body: i32Const(int32(v))}
}

// fakeBundle describes the content of a fake bundle module.
type fakeBundle struct {
	version string
	assets  map[assets.Name][]byte
	// total overrides the reported total when non-zero.
	total uint32
	// omit drops an export.
	omit string
	// nodes adds a stub layout node API.
	nodes bool
}

const (
	fakeVersionAddr = 1024
	fakeAssetBase   = 4096
	fakeNodeHandle  = 7
	fakeChildCount  = 3
	fakeNodeWidth   = 42.5
)

func (fb fakeBundle) build() []byte {
	var funcs []fakeFunc
	var data []fakeData

	data = append(data, fakeData{offset: fakeVersionAddr, bytes: []byte(fb.version)})
	funcs = append(funcs, fakeFunc{
		name:    abi.ExportVersion,
		results: []byte{i64},
		body:    i64Const(int64(abi.PackString(fakeVersionAddr, uint32(len(fb.version))))),
	})

	var total uint32
	next := uint32(fakeAssetBase)
	for _, name := range assets.Names() {
		b := fb.assets[name]
		var ptr uint32
		if len(b) > 0 {
			ptr = next
			data = append(data, fakeData{offset: ptr, bytes: b})
			next += uint32(len(b)) + 16
		}
		total += uint32(len(b))
		funcs = append(funcs,
			constU32(abi.AssetPtrExport(name), ptr),
			constU32(abi.AssetSizeExport(name), uint32(len(b))),
		)
	}
	if fb.total != 0 {
		total = fb.total
	}
	funcs = append(funcs, constU32(abi.ExportTotalEmbeddedSize, total))

	if fb.nodes {
		handleParam := []byte{i32}
		funcs = append(funcs,
			constU32(abi.ExportNodeNew, fakeNodeHandle),
			fakeFunc{
				name:    abi.NodeExport(abi.MethodGetChildCount),
				params:  handleParam,
				results: []byte{i32},
				body:    i32Const(fakeChildCount),
			},
			fakeFunc{
				name:    abi.NodeExport(abi.MethodGetComputedWidth),
				params:  handleParam,
				results: []byte{f32},
				body:    f32Const(fakeNodeWidth),
			},
			fakeFunc{
				// Echoes the handle back, so GetParent returns the node itself.
				name:    abi.NodeExport(abi.MethodGetParent),
				params:  handleParam,
				results: []byte{i32},
				body:    []byte{0x20, 0x00}, // local.get 0
			},
			fakeFunc{
				name:   abi.NodeExport(abi.MethodSetWidth),
				params: []byte{i32, f32},
			},
		)
	}

	if fb.omit != "" {
		kept := funcs[:0]
		for _, f := range funcs {
			if f.name != fb.omit {
				kept = append(kept, f)
			}
		}
		funcs = kept
	}

	return fakeModule(funcs, data)
}
