package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/wavpcm"
	"github.com/sirupsen/logrus"
)

const sampleRate = 48000

func main() {
	err := run(os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	bitDepth := flagSet.Int("bits", 16, "bits per sample (8, 16 or 32)")
	numChans := flagSet.Int("channels", 1, "number of channels (1 or 2)")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"length":    *length,
		"frequency": *frequency,
		"bits":      *bitDepth,
		"channels":  *numChans,
	}).Info("generating sine wav")

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	wavOut := wavpcm.NewEncoder(file, sampleRate, *bitDepth, *numChans)
	numSamples := int(sampleRate * *length)

	for i := range numSamples {
		fv := math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi)

		// the encoder takes unsigned fractions in [0, 1]
		v := 0.5 + 0.5*fv

		for range *numChans {
			err := wavOut.WriteFrame(v)
			if err != nil {
				return err
			}
		}
	}

	return wavOut.Close()
}
