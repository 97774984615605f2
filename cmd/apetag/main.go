// Command apetag prints the APE tags of media files.
package main

import (
	"github.com/simonhull/apetag/cmd/apetag/cmd"
)

func main() {
	cmd.Execute()
}
