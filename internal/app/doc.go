// Package app wires application dependencies for the CLI.
//
// It loads the optional YAML config from the home directory and builds the
// concrete store and services from Config, exposing them via the Wire struct
// for commands to use.
package app
