// Command flagset registers its options on a named flag set.
package main

import (
	"flag"
	"os"
)

var serveFlags = flag.NewFlagSet("serve", flag.ExitOnError)

var dir = serveFlags.String("dir", ".", "directory to serve")

func main() {
	_ = serveFlags.Parse(os.Args[1:])
	_ = *dir
}
