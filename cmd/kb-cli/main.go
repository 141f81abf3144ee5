package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"kb-app/internal/client"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8000", "kb service base URL")
	topic := flag.String("topic", "", "topic name (required)")
	subtopic := flag.String("subtopic", "", "subtopic name (required)")
	content := flag.String("content", "", "markdown content; use - to read from stdin")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	if *topic == "" || *subtopic == "" {
		fmt.Fprintln(os.Stderr, "error: --topic and --subtopic are required")
		os.Exit(1)
	}

	body := *content
	if body == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: read stdin:", err)
			os.Exit(1)
		}
		body = string(data)
	}

	c := client.NewHTTPClient(*server, &http.Client{Timeout: *timeout})
	message, err := c.Submit(context.Background(), *topic, *subtopic, body)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(message)
}
