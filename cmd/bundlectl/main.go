// Command bundlectl inspects bundle modules on the host and prepares the
// asset manifest they are built against.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
