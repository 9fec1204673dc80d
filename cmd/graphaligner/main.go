// Command graphaligner provides a CLI for sequence-graph alignment.
//
// Usage:
//
//	graphaligner [command] [options]
//
// Commands:
//
//	align       Align a query against a flat reference or a graph
//	batch       Align a FASTA file of queries against a graph
//	version     Show version information
package main

import (
	"fmt"
	"os"

	"github.com/aria-lang/graphaligner-go/pkg/graphaligner"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "align":
		alignCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	case "version":
		fmt.Println(graphaligner.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`graphaligner - Sequence-graph alignment tool

Usage:
  graphaligner <command> [options]

Commands:
  align     Align a query against a flat reference or a JSON graph
  batch     Align a FASTA file of queries against a JSON graph
  version   Show version information
  help      Show this help message

Use "graphaligner <command> -h" for more information about a command.`)
}
