package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/apuconv/hardware/spec"
	"github.com/jetsetilly/apuconv/logger"
	"github.com/jetsetilly/apuconv/pipeline"
	"github.com/jetsetilly/apuconv/report"
	"github.com/jetsetilly/apuconv/stream"
	"github.com/jetsetilly/apuconv/trace"
	"github.com/jetsetilly/apuconv/version"
)

const programName = "apuconv"

func main() {
	if err := launch(os.Args[1:]); err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(1)
	}
}

func launch(args []string) (rerr error) {
	var output string
	var specID string
	var colour string
	var quiet bool
	var echoLog bool
	var showVersion bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&output, "o", "", "file to write packed events to")
	flgs.StringVar(&specID, "spec", "NTSC", "TV specification of the console that produced the trace: NTSC or PAL")
	flgs.StringVar(&colour, "color", report.ColorAuto, "colour output: AUTO, ALWAYS or NEVER")
	flgs.BoolVar(&quiet, "quiet", false, "do not print a description of every event")
	flgs.BoolVar(&echoLog, "log", false, "echo log to stderr")
	flgs.BoolVar(&showVersion, "version", false, "print version and exit")
	flgs.Usage = func() {
		fmt.Fprintf(flgs.Output(), "usage: %s [flags] <trace file>\n", programName)
		flgs.PrintDefaults()
	}
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if showVersion {
		fmt.Println(version.String())
		return nil
	}

	if len(args) == 0 {
		flgs.Usage()
		return fmt.Errorf("no trace file specified")
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}

	if echoLog {
		logger.SetEcho(os.Stderr, false)
		defer logger.SetEcho(nil, false)
	}

	ctx := &context{}
	ctx.spec, err = spec.Lookup(specID)
	if err != nil {
		return err
	}

	rep, err := report.NewReport(os.Stdout, ctx.spec, colour)
	if err != nil {
		return err
	}
	rep.Quiet = quiet

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer in.Close()
	logger.Logf(ctx, "trace", "reading from %s", args[0])

	// the sink must be a nil interface rather than a nil *stream.Writer if
	// there is no output file
	var sink pipeline.Sink
	var sw *stream.Writer

	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		sw = stream.NewWriter(out)
		sink = sw

		// the output is closed on every return path, including when the
		// pipeline fails part way through the trace
		defer func() {
			err := sw.Close()
			if err != nil && rerr == nil {
				rerr = fmt.Errorf("output: %w", err)
			}
			logger.Logf(ctx, "stream", "%d events written to %s", sw.Len(), output)
		}()
	}

	rd := trace.NewReader(in, ctx)
	p := pipeline.NewPipeline(ctx, sink)

	err = p.Run(rd, func(res pipeline.Result) {
		rep.Event(res)
		if res.Emit {
			ticks, reg, data := stream.Unpack(res.Packed)
			logger.Logf(ctx, "stream", "%d: tick %d reg %x data %02x", res.Packed, ticks, reg, data)
		}
	})
	if err != nil {
		return err
	}

	if rd.Malformed > 0 {
		rep.Message(fmt.Sprintf("%d malformed lines skipped", rd.Malformed))
	}
	logger.Logf(ctx, "trace", "%d lines, %d discarded", rd.Line, rd.Discarded)

	rep.Summary(p.Summary())

	return nil
}
