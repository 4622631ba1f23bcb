// Package dom binds the tracker and viewport packages to the browser through
// syscall/js. It only has content when built for GOOS=js GOARCH=wasm.
package dom
