// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/talwat/transiteer"
	"github.com/talwat/transiteer/internal/config"
	"github.com/talwat/transiteer/internal/mapfile"
	"github.com/talwat/transiteer/internal/server"
	"github.com/viant/afs"
)

const logo = `  ===o=====o=====o===
        \           \
  transiteer         o===
`

type options struct {
	in       string
	out      string
	format   string
	document bool
	demo     bool
	serve    bool
	addr     string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("transiteer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s\n", logo)
		fmt.Fprintf(stderr, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.in, "i", "-", "Path or URL of the map definition. If set to \"-\" (hyphen), stdin is used.")
	fs.StringVar(&o.out, "o", "-", "Path to output SVG file. If set to \"-\" (hyphen), stdout is used.")
	fs.StringVar(&o.format, "format", "", "Definition format, yaml or json. Defaults to the input extension, or yaml for stdin.")
	fs.BoolVar(&o.document, "document", false, "Write the full SVG document instead of the embeddable fragment.")
	fs.BoolVar(&o.demo, "demo", false, "Write the demo output instead of reading a definition.")
	fs.BoolVar(&o.serve, "serve", false, "Serve the HTTP API instead of rendering once.")
	fs.StringVar(&o.addr, "addr", "", "Listen address for -serve. Overrides TRANSITEER_ADDR.")
	fs.BoolVar(&o.verbose, "v", false, "Log debug output to stderr.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.LogLevel = logrus.DebugLevel
	}
	if o.addr != "" {
		cfg.Addr = o.addr
	}
	log := cfg.NewLogger()
	log.SetOutput(stderr)
	transiteer.SetLogger(log)
	defer transiteer.SetLogger(nil)

	if o.serve {
		return server.Run(ctx, cfg, log)
	}

	out, err := render(ctx, o, stdin)
	if err != nil {
		return err
	}
	if o.out == "-" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	return os.WriteFile(o.out, []byte(out), 0666)
}

func render(ctx context.Context, o *options, stdin io.Reader) (string, error) {
	if o.demo {
		if o.document {
			return transiteer.DemoDocument(), nil
		}
		return transiteer.DemoFragment(), nil
	}

	m, err := loadMap(ctx, o, stdin)
	if err != nil {
		return "", err
	}
	if o.document {
		return transiteer.Serialize(m), nil
	}
	return transiteer.RenderFragment(m), nil
}

func loadMap(ctx context.Context, o *options, stdin io.Reader) (*transiteer.Map, error) {
	if o.in != "-" && o.format == "" {
		return mapfile.Load(ctx, afs.New(), o.in)
	}

	format := mapfile.Format(o.format)
	if format == "" {
		format = mapfile.FormatYAML
	}
	var data []byte
	var err error
	if o.in == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = afs.New().DownloadWithURL(ctx, o.in)
	}
	if err != nil {
		return nil, err
	}
	return mapfile.Decode(data, format)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "transiteer: %s\n", err)
		os.Exit(1)
	}
}
