package main

import (
	"fmt"
	"os"

	"github.com/nate-maxwell/core-utils/feature/natsort"
)

func main() {
	names := os.Args[1:]
	if len(names) == 0 {
		fmt.Println("usage: debug_natsort NAME [NAME...]")
		os.Exit(1)
	}

	// Show how each name tokenizes
	fmt.Println("=== Tokenization ===")
	for _, name := range names {
		fmt.Printf("%q\n", name)
		for i, tok := range natsort.Split(name) {
			kind := "text"
			if tok.Digits {
				kind = "digits"
			}
			fmt.Printf("  [%d] %-6s %q\n", i, kind, tok.Text)
		}
	}

	if len(names) < 2 {
		return
	}

	// Compare each adjacent pair the way the sorter would
	fmt.Println("\n=== Pairwise Comparison ===")
	for i := 0; i+1 < len(names); i++ {
		op := "=="
		switch c := natsort.Compare(names[i], names[i+1]); {
		case c < 0:
			op = "<"
		case c > 0:
			op = ">"
		}
		fmt.Printf("%q %s %q\n", names[i], op, names[i+1])
	}

	sorted := append([]string(nil), names...)
	natsort.Sort(sorted)

	fmt.Println("\n=== Sorted Order ===")
	for _, name := range sorted {
		fmt.Println(name)
	}
}
