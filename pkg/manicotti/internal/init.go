// Package internal contains shared infrastructure for the manicotti
// menu library: logging and the hang-up watcher. Types and functions
// in this package are not part of the public API.
package internal

// Disabled: every published version of certifiable declares `go >= 1.24`,
// which the available Go 1.21 toolchain refuses to build.
// import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
