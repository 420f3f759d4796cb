package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blogem/keysubmit/config"
)

const usage = `Usage: keysubmit <command> [flags]

Commands:
  submit [-values file.yaml] [-prompt] [-verbose] [name=value ...]
        fill the page form and submit it once
  serve
        host the page and submit it on POST /submit
  history [-limit n]
        print recent submissions from the audit database
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Load environment variables from .env file when present
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load the env vars: %v", err)
	}

	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "submit":
		failed, err := runSubmit(cfg, args)
		if err != nil {
			log.Fatalf("Submit failed: %v", err)
		}
		if failed > 0 {
			os.Exit(1)
		}
	case "serve":
		if err := runServe(cfg); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case "history":
		if err := runHistory(cfg, args, os.Stdout); err != nil {
			log.Fatalf("History failed: %v", err)
		}
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
}
