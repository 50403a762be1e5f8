// cmd/tokbench/main.go
package main

import (
	cmd "github.com/mwiater/tokbench/internal/cli"
)

// main starts the tokbench CLI application by delegating to the
// cobra root command defined in the tokbench package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
