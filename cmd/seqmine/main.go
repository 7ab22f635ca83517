// Command seqmine is the sequential pattern mining CLI.
package main

import "github.com/mesh-intelligence/seqmine/internal/cli"

func main() {
	cli.Execute()
}
