// Command atelierctl bootstraps a fresh deployment: it hashes the setup token,
// pushes backend credentials and checks that every backend answers.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
