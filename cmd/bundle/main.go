// Command bundle is the WebAssembly module that embeds the model assets and
// exports the layout node API.
//
// It is a reactor: the host instantiates it, calls _initialize once and then
// invokes exports directly. main is never run.
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o bundle.wasm ./cmd/bundle
//
// Add -tags to select assets, see internal/bundle, and
// -ldflags "-X github.com/woxQAQ/wasm-bundle/internal/bundle.Version=..." to
// stamp the version.
package main

import (
	_ "github.com/woxQAQ/wasm-bundle/api/wasm"
)

func main() {}
