/*
Command khmerconv converts Khmer text files between legacy font encodings
and Unicode.

	khmerconv convert --font "Limon S1" --to unicode legacy.txt > unicode.txt
	khmerconv convert --font "Limon S1" --to legacy  unicode.txt > legacy.txt
	khmerconv check "Limon S1" "ABC-TEXT-05"
	khmerconv fonts

Font descriptions are read from the file given with --fontdata. Every flag
may also be set through the environment (prefix KHMERCONV_, e.g.
KHMERCONV_FONTDATA) or in a configuration file given with --config.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/viper"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
