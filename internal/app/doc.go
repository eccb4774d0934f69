// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run lifecycle that turns a validated
// Config into printed passwords, decoupled from any specific entrypoint
// like a CLI.
package app
