// This tool converts a PCM wav file into a 16 bit aiff file and stores it in
// the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavpcm"
	"github.com/go-audio/aiff"
	"github.com/sirupsen/logrus"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagPath := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *flagPath == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*flagPath)
	if err != nil {
		return err
	}

	file, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}
	defer file.Close()

	a, err := wavpcm.Decode(file)
	if err != nil {
		return fmt.Errorf("invalid WAV file: %w", err)
	}

	outPath := aiffPath(sourcePath)

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	buf := a.IntBuffer(!a.IsMono())

	encoder := aiff.NewEncoder(outFile, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels)

	err = encoder.Write(buf)
	if err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"source":   sourcePath,
		"frames":   buf.NumFrames(),
		"channels": buf.Format.NumChannels,
	}).Debug("converted")

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

func aiffPath(sourcePath string) string {
	return sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
}
