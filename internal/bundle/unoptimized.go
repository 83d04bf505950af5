//go:build unoptimized_wasm

package bundle

func init() {
	optimized = false
}
