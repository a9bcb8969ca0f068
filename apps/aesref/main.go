//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Aesref computes the reference ciphertext for the two parties'
// input files. The first party's input is the key and the second
// party's input is the plaintext.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/mpcverify/bits"
	"github.com/markkurossi/mpcverify/dump"
	"github.com/markkurossi/mpcverify/env"
	"github.com/markkurossi/mpcverify/reference"
	"github.com/markkurossi/mpcverify/report"
	"github.com/markkurossi/text/superscript"
)

type options struct {
	cipher string
	header bits.HeaderMode
	expect string
	style  dump.Style
	table  bool
	stats  bool
}

func usage() {
	fmt.Printf("usage: aesref [options] <input_file_P1> <input_file_P2>\n")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	cipher := flag.String("cipher", "aes",
		"block cipher: "+strings.Join(reference.Ciphers(), ", "))
	strict := flag.Bool("strict", false,
		"verify the input count header of the input files")
	expect := flag.String("expect", "",
		"compare the result against the protocol output `file`")
	minimal := flag.Bool("minimal", false, "print bytes without leading zeros")
	table := flag.Bool("table", false, "print the ciphertext as a table")
	stats := flag.Bool("stats", false, "print timing statistics")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}

	opts := options{
		cipher: *cipher,
		header: bits.SkipHeader,
		expect: *expect,
		table:  *table,
		stats:  *stats,
	}
	if *strict {
		opts.header = bits.CheckHeader
	}
	if *minimal {
		opts.style = dump.Minimal
	}
	config := &env.Config{
		Verbose: *verbose,
	}

	err := computeReference(config, flag.Args(), opts)
	if err != nil {
		log.Fatal(err)
	}
}

func party(idx int) string {
	return "P" + superscript.Itoa(idx+1)
}

func computeReference(config *env.Config, files []string,
	opts options) error {

	if len(files) != 2 {
		return fmt.Errorf("expected 2 input files, got %d", len(files))
	}
	enc, err := reference.NewEncrypter(opts.cipher)
	if err != nil {
		return err
	}

	out := config.GetOutput()
	timing := report.NewTiming()

	var inputs [][]byte
	var size report.FileSize
	for _, file := range files {
		data, err := bits.ReadBytes(file, opts.header)
		if err != nil {
			return err
		}
		inputs = append(inputs, data)
		size += report.FileSize(len(data))
	}
	sample := timing.Sample("Read", size)
	for idx, input := range inputs {
		sample.SubSample(party(idx), report.FileSize(len(input)))
	}

	ciphertext, err := reference.Compute(enc, inputs[0], inputs[1])
	if err != nil {
		return err
	}
	timing.Sample("Encrypt", report.FileSize(len(ciphertext)))

	if len(opts.expect) > 0 {
		actual, err := bits.ReadBytes(opts.expect, bits.NoHeader)
		if err != nil {
			return err
		}
		err = reference.Compare(ciphertext, actual)
		if err != nil {
			return fmt.Errorf("%s: %w", opts.expect, err)
		}
		timing.Sample("Compare", report.FileSize(len(actual)))
	}

	if config.Verbose {
		fmt.Fprintf(out, "Cipher:\t%s\n", opts.cipher)
		for idx, input := range inputs {
			fmt.Fprintf(out, "Input %s:\t%x\n", party(idx), input)
		}
	}
	fmt.Fprintln(out, dump.List(ciphertext, opts.style))
	if opts.table {
		dump.Table(out, ciphertext, opts.style)
	}
	if len(opts.expect) > 0 {
		fmt.Fprintf(out, "%s: match\n", opts.expect)
	}
	if opts.stats {
		timing.Print(out)
	}
	return nil
}
