// Command huffpack compresses and decompresses text files using the
// huffpack container format.
//
// Usage:
//
//	huffpack [-v] pack <input> <output>
//	huffpack [-v] [-strict] unpack <input> <output>
//
// pack reads a UTF-8 text file and writes a container; unpack does the
// reverse. An unpacked file that fails integrity verification is still
// written (the container stores the text regardless), but a warning is
// logged and, with -strict, the exit code is nonzero.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/huffpack/huffpack"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	strict := flag.Bool("strict", false, "exit nonzero when unpack verification fails")
	flag.Usage = usage
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	var err error
	switch action := flag.Arg(0); action {
	case "pack":
		err = pack(log, flag.Arg(1), flag.Arg(2))
	case "unpack":
		err = unpack(log, flag.Arg(1), flag.Arg(2), *strict)
	default:
		log.Errorf("unknown action %q, expected \"pack\" or \"unpack\"", action)
		os.Exit(2)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: huffpack [-v] pack <input> <output>\n")
	fmt.Fprintf(os.Stderr, "       huffpack [-v] [-strict] unpack <input> <output>\n")
	flag.PrintDefaults()
}

func pack(log *logrus.Logger, input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	containerBytes, err := huffpack.Compress(string(data), filepath.Base(input))
	if err != nil {
		return fmt.Errorf("compress %s: %w", input, err)
	}

	if err := os.WriteFile(output, containerBytes, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.WithFields(logrus.Fields{
		"input_bytes":     len(data),
		"container_bytes": len(containerBytes),
	}).Debugf("packed %s", input)
	log.Infof("packed %s -> %s (%d -> %d bytes)", input, output, len(data), len(containerBytes))
	return nil
}

func unpack(log *logrus.Logger, input, output string, strict bool) error {
	containerBytes, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	res, err := huffpack.Decompress(containerBytes)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", input, err)
	}

	if err := os.WriteFile(output, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.WithFields(logrus.Fields{
		"stored_filename": res.Filename,
		"symbols":         res.DecodedSymbolCount,
	}).Debugf("unpacked %s", input)

	if !res.Verified {
		log.WithFields(logrus.Fields{
			"digest_ok":       res.DigestOK,
			"count_ok":        res.CountOK,
			"stored_symbols":  res.OriginalSymbolCount,
			"decoded_symbols": res.DecodedSymbolCount,
		}).Warnf("integrity verification failed for %s; output written anyway", input)
		if strict {
			return fmt.Errorf("verification failed for %s", input)
		}
		return nil
	}

	log.Infof("unpacked %s -> %s (%d symbols, verified)", input, output, res.DecodedSymbolCount)
	return nil
}
