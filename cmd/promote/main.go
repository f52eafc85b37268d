package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fitstack/fittrack/internal/promote"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var src string
	flag.StringVar(&src, "src", ".", "source checkout to promote from")
	var dest string
	flag.StringVar(&dest, "dest", "", "destination checkout to promote into")
	var ci bool
	flag.BoolVar(&ci, "ci", false, "skip the confirmation prompt")
	flag.Parse()

	usage := `
Copy the release subset of a source checkout into a sibling checkout
and append an entry to the promotion log under the destination.

Usage:

promote [-h] [-ci] [-src SOURCE_DIR] -dest DEST_DIR

example
  promote -src . -dest ../fittrack-stage
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if dest == "" {
		log.Fatalf("A destination checkout is required (-dest)")
	}

	if !ci {
		fmt.Printf("Promote %s -> %s? [y/N] ", src, dest)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return
		}
	}

	result, err := promote.Run(promote.Options{Source: src, Dest: dest})
	if err != nil {
		log.Fatalf("Promotion failed: %v", err)
	}

	fmt.Printf("Copied %d files\n", len(result.Copied))
	if len(result.Failures) > 0 {
		fmt.Printf("%d files failed to copy:\n", len(result.Failures))
		for rel, ferr := range result.Failures {
			fmt.Printf("  %s: %v\n", rel, ferr)
		}
		os.Exit(1)
	}
}
