// This tool prints the PCM layout of the passed wav file and the chunks the
// decoder skipped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/wavpcm"
	"github.com/sirupsen/logrus"
)

const missingPathMessage = "You must pass the path of the file to decode"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	logrus.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	verbose := flagSet.Bool("v", false, "log skipped chunks while decoding")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	path := flagSet.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	registry := wavpcm.DefaultRegistry()
	registry.Register("wav", func(r io.Reader) (*wavpcm.Audio, error) {
		dec := wavpcm.NewDecoder(r)
		dec.SetLogger(logger.WithField("file", path))

		return dec.Decode()
	})

	a, err := registry.Decode(path, file)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	fmt.Fprintf(out, "Format: %s\n", a.AudioFormat())
	fmt.Fprintf(out, "Channels: %d\n", a.NumChans())
	fmt.Fprintf(out, "Sample rate: %d Hz\n", a.SampleRate())
	fmt.Fprintf(out, "Bit depth: %d\n", a.BitDepth())
	fmt.Fprintf(out, "Samples: %d\n", a.NumSamples())
	fmt.Fprintf(out, "Duration: %s\n", a.Duration())

	skipped := a.SkippedChunks()
	if len(skipped) == 0 {
		fmt.Fprintln(out, "No skipped chunks")
		return nil
	}

	for i, c := range skipped {
		fmt.Fprintf(out, "\tskipped chunk [%d]:\t%q (%d bytes)\n", i, c.ID[:], c.Size)
	}

	return nil
}
