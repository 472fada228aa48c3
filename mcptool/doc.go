// Package mcptool exposes the lookup diagnosis engine as a Model Context
// Protocol server over stdio, so coding agents can ask "why did running this
// program fail" and receive the structured report.
package mcptool
