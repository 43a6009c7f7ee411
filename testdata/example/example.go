// Command example serves a directory over HTTP for manpager's tests.
// It declares its options through the standard flag package so the
// static introspector has something to find.
package main

import (
	"flag"
	"fmt"
)

var (
	bind    = flag.String("bind", "127.0.0.1", "address to bind")
	port    = flag.Int("port", 8080, "port to listen on")
	verbose = flag.Bool("verbose", false, "enable verbose logging")
)

func main() {
	flag.Parse()
	fmt.Println(*bind, *port, *verbose)
}
