// cmd/main.go
package main

import cmd "github.com/mwiater/benchit/cmd/benchit"

// main starts the benchit CLI application by delegating to the
// cobra root command defined in the benchit package.
func main() {
	cmd.Execute()
}
