package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"

	"github.com/indigo-web/gurt"
	"github.com/indigo-web/gurt/client"
	"github.com/indigo-web/gurt/config"
	"github.com/indigo-web/gurt/method"
	json "github.com/json-iterator/go"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gurtc: ")

	var (
		methodName  = flag.String("X", "GET", "request method")
		data        = flag.String("d", "", "request body")
		contentType = flag.String("H", "", "content-type of the request body")
		pretty      = flag.Bool("json", false, "pretty-print a JSON response body")
		insecure    = flag.Bool("k", false, "skip certificate verification")
		userAgent   = flag.String("A", "", "user-agent, defaults to the library's one")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: gurtc [flags] gurt://host[:port]/path")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, options{
		target:      flag.Arg(0),
		method:      *methodName,
		body:        *data,
		contentType: *contentType,
		userAgent:   *userAgent,
		pretty:      *pretty,
		insecure:    *insecure,
	}, os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	target, method, body, contentType, userAgent string
	pretty, insecure                             bool
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	target, err := url.Parse(opts.target)
	if err != nil || target.Scheme != "gurt" || target.Host == "" {
		return fmt.Errorf("bad url: %q", opts.target)
	}

	m := method.Parse(opts.method)
	if m == method.Unknown {
		return fmt.Errorf("unknown method: %s", opts.method)
	}

	cfg := config.Default()
	cfg.TLS.InsecureSkipVerify = opts.insecure
	if len(opts.userAgent) > 0 {
		cfg.UserAgent = opts.userAgent
	}

	session, err := gurt.Connect(ctx, target.Host, cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	resp, err := session.Do(client.Request{
		Method:      m,
		Path:        target.RequestURI(),
		ContentType: opts.contentType,
		Body:        []byte(opts.body),
	})
	if err != nil {
		return err
	}

	return printResponse(resp, opts.pretty, stdout, stderr)
}

// printResponse writes the status line and headers to stderr, so the body on stdout can
// be piped further as is.
func printResponse(resp client.Response, pretty bool, stdout, stderr io.Writer) error {
	fmt.Fprintf(stderr, "%d %s\n", resp.Code, resp.Code.Reason())
	for it := resp.Headers.Iter(); ; {
		pair, cont := it.Next()
		if !cont {
			break
		}

		fmt.Fprintf(stderr, "%s: %s\n", pair.Key, pair.Value)
	}
	fmt.Fprintln(stderr)

	body := resp.Body
	if pretty && len(body) > 0 {
		var err error
		if body, err = indent(body); err != nil {
			return fmt.Errorf("response body: %w", err)
		}
	}

	_, err := stdout.Write(body)
	return err
}

func indent(body []byte) ([]byte, error) {
	var model any
	if err := json.Unmarshal(body, &model); err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(bytes.TrimSpace(out), '\n'), nil
}
