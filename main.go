// main.go
package main

import cmd "github.com/benchkit/perfdelta/cmd/perfdelta"

// main starts the perfdelta CLI application by delegating to the
// cobra root command defined in the perfdelta package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
