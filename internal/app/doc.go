// Package app wires the manifest/resolve/cmake pipeline into a runnable
// application: configuration, an isolated logger, and the load → resolve →
// generate → emit lifecycle, decoupled from any specific entrypoint.
package app
