// seehuhn.de/go/utf8all - every UTF-8 encoded scalar value in one file
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Gen-utf8 writes a file which contains the UTF-8 encoding of every Unicode
// scalar value, in order of increasing code point.
//
// Usage:
//
//	gen-utf8 [-o utf-8.txt]
//
// The program refuses to overwrite an existing file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/term"

	"seehuhn.de/go/utf8all"
	"seehuhn.de/go/utf8all/internal/buildinfo"
)

const toolName = "gen-utf8"

func main() {
	log.SetPrefix(buildinfo.Short(toolName) + ": ")
	log.SetFlags(0)

	out := flag.String("o", "utf-8.txt", "output file name")
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [-o file]\n", toolName)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	var summary io.Writer
	if term.IsTerminal(int(os.Stdout.Fd())) {
		summary = os.Stdout
	}

	err := run(*out, summary)
	if err != nil {
		log.Fatal(err)
	}
}

// run writes the fixture to fname.  If summary is not nil, a short
// description of the new file is printed there.
func run(fname string, summary io.Writer) error {
	err := utf8all.WriteFile(fname)
	if err != nil {
		return err
	}
	if summary == nil {
		return nil
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	counts, err := utf8all.LenCounts(data)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	_, err = fmt.Fprintf(summary, "wrote %d bytes to %s (%s)\n",
		len(data), fname, formatCounts(counts))
	return err
}

func formatCounts(counts map[int]int) string {
	lengths := maps.Keys(counts)
	slices.Sort(lengths)

	parts := make([]string, len(lengths))
	for i, k := range lengths {
		parts[i] = fmt.Sprintf("%d-byte: %d", k, counts[k])
	}
	return strings.Join(parts, ", ")
}
