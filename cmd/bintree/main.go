// Command bintree prints, queries and checks binary trees stored in YAML
// tree files.
package main

import "github.com/npillmayer/bintree/internal/cli"

func main() {
	cli.Execute()
}
