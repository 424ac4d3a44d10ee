// Package client implements the command-line client runtime.
//
// It wires the vault service, key management, and background workers into a
// single process lifecycle and exposes them through a small command driver
// (list, add, show, delete, backup, restore and friends).
package client
