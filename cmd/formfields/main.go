// Package main provides the formfields CLI: print field markup, list tags,
// serve a demo page with the validation endpoint, or fill the fields in a
// terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
