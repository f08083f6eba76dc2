// ABOUTME: Wire types for out-of-process plugins: one JSON line each way over stdio
// ABOUTME: Kept in their own file for easyjson codegen

//go:generate easyjson -all protocol.go

package plugin

// Request is written to the plugin's stdin followed by a newline.
type Request struct {
	Prompt  string            `json:"prompt"`
	Options map[string]string `json:"options,omitempty"`
}

// Response is the first non-empty line the plugin writes to stdout.
type Response struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}
