//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Bitdump prints the bits of a protocol output file as hex bytes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/mpcverify/bits"
	"github.com/markkurossi/mpcverify/dump"
	"github.com/markkurossi/mpcverify/env"
	"github.com/markkurossi/mpcverify/report"
)

type options struct {
	style dump.Style
	table bool
	stats bool
}

func usage() {
	fmt.Printf("usage: bitdump [options] <output_file>\n")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	minimal := flag.Bool("minimal", false, "print bytes without leading zeros")
	table := flag.Bool("table", false, "print bytes as a table")
	stats := flag.Bool("stats", false, "print timing statistics")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	opts := options{
		table: *table,
		stats: *stats,
	}
	if *minimal {
		opts.style = dump.Minimal
	}

	err := decode(&env.Config{}, flag.Arg(0), opts)
	if err != nil {
		log.Fatal(err)
	}
}

func decode(config *env.Config, file string, opts options) error {
	timing := report.NewTiming()

	seq, err := bits.ReadFile(file, bits.NoHeader)
	if err != nil {
		return err
	}
	timing.Sample("Read", report.FileSize(len(seq)/8))

	data, err := bits.Pack(seq)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	timing.Sample("Pack", report.FileSize(len(data)))

	out := config.GetOutput()
	fmt.Fprintln(out, dump.List(data, opts.style))
	if opts.table {
		dump.Table(out, data, opts.style)
	}
	if opts.stats {
		timing.Sample("Print", 0)
		timing.Print(out)
	}
	return nil
}
