// Package interop exposes small OS shims to scripts: the clipboard, process
// launching, environment variables, the active window title and basic file
// system helpers.
package interop
