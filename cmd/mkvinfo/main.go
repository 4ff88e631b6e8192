// Command mkvinfo prints the metadata sections of a Matroska file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	matroska "github.com/ririsoft/matroska-go"
)

func main() {
	var (
		dump    = flag.Bool("dump", false, "spew.Dump the full parsed Matroska value instead of printing JSON")
		verbose = flag.Bool("v", false, "log parse diagnostics to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-dump] [-v] file.mkv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []matroska.Option{}
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, matroska.WithLogger(logger))
	}

	mkv, err := matroska.Open(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkvinfo: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		spew.Dump(mkv)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mkv); err != nil {
		fmt.Fprintf(os.Stderr, "mkvinfo: encoding output: %v\n", err)
		os.Exit(1)
	}
}
