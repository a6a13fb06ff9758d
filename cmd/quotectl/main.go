// Command quotectl runs the form pipeline offline: fee estimates, validation
// and the email report, without an SMTP relay.
//
// Usage:
//
//	quotectl estimate quote.json
//	quotectl validate --form contact contact.json
//	quotectl render quote --locale zh-HK quote.json
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
