// Command quicframedump decodes a single QUIC draft-14 packet payload
// and prints the frames it contains. It exists so the library's
// ambient stack - config flags, structured error reporting, metrics -
// has somewhere to run outside of tests; the core parser itself takes
// no dependency on this command.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/callbay/gen-quic/internal/metrics"
	"github.com/callbay/gen-quic/internal/utils"
	"github.com/callbay/gen-quic/internal/wire"
)

func main() {
	var (
		hexInput    = flag.String("hex", "", "hex-encoded packet payload")
		file        = flag.String("file", "", "path to a file containing the raw packet payload")
		metricsPath = flag.String("metrics", "", "if set, write a Prometheus text-format dump of decode counters to this path")
		verbose     = flag.Bool("v", false, "enable debug logging (takes precedence over QUIC_FRAME_LOG_LEVEL)")
	)
	flag.Parse()

	if *verbose {
		utils.SetLogLevel(utils.LogLevelDebug)
	}

	payload, err := readPayload(*hexInput, *file)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("quicframedump: %v", err))
		os.Exit(1)
	}

	frames, err := wire.ParseFrames(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("quicframedump: parse failed: %v", err))
		os.Exit(1)
	}

	reg := metrics.NewRegistry()
	metrics.Observe("regular", len(frames.Frames))
	metrics.Observe("ack", len(frames.Acks))
	metrics.Observe("tls", len(frames.TLS))

	printSection("frames", len(frames.Frames))
	for _, f := range frames.Frames {
		wire.LogFrame(f)
		fmt.Println(describeFrame(f))
	}
	printSection("acks", len(frames.Acks))
	for _, f := range frames.Acks {
		fmt.Println(describeFrame(f))
	}
	printSection("tls", len(frames.TLS))
	for _, f := range frames.TLS {
		fmt.Println(describeFrame(f))
	}

	if *metricsPath != "" {
		f, err := os.Create(*metricsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("quicframedump: writing metrics: %v", err))
			os.Exit(1)
		}
		defer f.Close()
		if err := metrics.WriteText(f, reg); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("quicframedump: writing metrics: %v", err))
			os.Exit(1)
		}
	}
}

func readPayload(hexInput, file string) ([]byte, error) {
	switch {
	case hexInput != "":
		b, err := hex.DecodeString(hexInput)
		if err != nil {
			return nil, fmt.Errorf("decoding -hex: %w", err)
		}
		return b, nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading -file: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("one of -hex or -file is required")
	}
}

func printSection(name string, n int) {
	color.New(color.Bold).Printf("%s (%d)\n", name, n)
}
