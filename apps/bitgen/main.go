//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Bitgen writes party input files: an optional bit count header line
// followed by one bit per line.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/mpcverify/bits"
	"github.com/markkurossi/mpcverify/dump"
	"github.com/markkurossi/mpcverify/env"
)

type options struct {
	hex    string
	random int
	header bool
}

func usage() {
	fmt.Printf("usage: bitgen [options] <file>\n")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	value := flag.String("hex", "", "input `value` in hex")
	random := flag.Int("random", 0, "generate random input of `n` bytes")
	header := flag.Bool("header", true, "write the bit count header line")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	config := &env.Config{
		Verbose: *verbose,
	}
	err := generate(config, flag.Arg(0), options{
		hex:    *value,
		random: *random,
		header: *header,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func inputValue(config *env.Config, opts options) ([]byte, error) {
	if len(opts.hex) > 0 && opts.random > 0 {
		return nil, errors.New("options -hex and -random are exclusive")
	}
	if opts.random > 0 {
		data := make([]byte, opts.random)
		_, err := io.ReadFull(config.GetRandom(), data)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	if len(opts.hex) == 0 {
		return nil, errors.New("no input value, use -hex or -random")
	}
	val := strings.TrimPrefix(strings.TrimPrefix(opts.hex, "0x"), "0X")
	data, err := hex.DecodeString(val)
	if err != nil {
		return nil, fmt.Errorf("invalid hex value '%s': %w", opts.hex, err)
	}
	return data, nil
}

func generate(config *env.Config, file string, opts options) error {
	data, err := inputValue(config, opts)
	if err != nil {
		return err
	}
	err = bits.WriteFile(file, bits.Unpack(data), opts.header)
	if err != nil {
		return err
	}
	if config.Verbose {
		fmt.Fprintf(config.GetOutput(), "%s: %d bits\n%s\n",
			file, len(data)*8, dump.List(data, dump.Padded))
	}
	return nil
}
