// Command sample copies files around. It exists to exercise static
// introspection of flag declarations, including defaults and booleans.
package main

import "flag"

var (
	from  = flag.String("from", "", "source path")
	count = flag.Int("count", 1, "number of copies")
	force = flag.Bool("force", false, "overwrite existing files")
)

func main() {
	flag.Parse()
	_ = *from
	_ = *count
	_ = *force
}
