package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/akulik/mailpeek/gmail"
	"github.com/akulik/mailpeek/internal/htmltext"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <message-id>", os.Args[0])
	}

	ctx := context.Background()
	gc, err := gmail.NewClient(ctx, os.Getenv("GMAIL_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("gmail client: %v", err)
	}

	e, err := gc.FetchMessage(ctx, os.Args[1])
	if err != nil {
		var pe *gmail.ParseError
		if errors.As(err, &pe) && pe.Syntax() {
			log.Fatalf("failed to decode JSON response: %s", pe.Raw)
		}
		log.Fatalf("fetch message: %v", err)
	}

	body := e.Body
	if strings.HasPrefix(strings.TrimSpace(body), "<") {
		// first-found body may be text/html, render it for the terminal
		body = htmltext.Render(body)
	}
	fmt.Printf("From: %s\nSubject: %s\n\n%s\n", e.From, e.Subject, body)
}
