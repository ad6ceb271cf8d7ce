package main

import (
	"github.com/pkg/browser"
)

// openInBrowser opens path (a file on disk) in the user's default browser.
func openInBrowser(path string) error {
	return browser.OpenFile(path)
}
