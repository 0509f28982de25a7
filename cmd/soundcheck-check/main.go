// Command soundcheck-check validates one utterance against a running API
// and prints the result. Reads text from -text or stdin
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"soundcheck/internal/adapters/agent"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		addr    = flag.String("addr", "http://localhost:4000", "base URL of the soundcheck API")
		text    = flag.String("text", "", "utterance to validate; reads stdin when empty")
		timeout = flag.Duration("timeout", 10*time.Second, "overall request timeout")
		pretty  = flag.Bool("pretty", true, "pretty-print JSON")
	)
	flag.Parse()

	in := strings.TrimSpace(*text)
	if in == "" {
		b, err := io.ReadAll(os.Stdin)
		must(err)
		in = strings.TrimSpace(string(b))
	}
	if in == "" {
		must(fmt.Errorf("no text given; pass -text or pipe on stdin"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	hook := agent.New(agent.Options{BaseURL: *addr, Timeout: *timeout})
	res, err := hook.Validate(ctx, in)
	must(err)

	var enc []byte
	if *pretty {
		enc, err = json.MarshalIndent(res, "", "  ")
	} else {
		enc, err = json.Marshal(res)
	}
	must(err)
	fmt.Println(string(enc))
}
