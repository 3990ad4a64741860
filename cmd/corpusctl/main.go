// Command corpusctl builds and analyzes the tiered reading corpus: it
// fetches Wikipedia lead sections, cleans them into tier files, carves the
// medium tier out of the hard tier by composite difficulty, and reports how
// well the readability metrics separate the tiers.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "corpusctl: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "fetch":
		return runFetch(args[1:])
	case "build":
		return runBuild(args[1:])
	case "ingest":
		return runIngest(args[1:])
	case "carve":
		return runCarve(args[1:])
	case "score":
		return runScore(args[1:])
	case "analyze":
		return runAnalyze(args[1:])
	default:
		return usageError()
	}
}

func usageError() error {
	return errors.New("usage: corpusctl <fetch|build|ingest|carve|score|analyze> [flags]")
}
