package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nate-maxwell/core-utils/feature/version"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_version DIR EXT [CONTAINS]")
		os.Exit(1)
	}
	dir, ext := os.Args[1], os.Args[2]
	contains := ""
	if len(os.Args) > 3 {
		contains = os.Args[3]
	}

	// Step 1: Raw directory listing
	fmt.Println("=== STEP 1: Directory Entries ===")
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Total entries: %d\n", len(entries))
	for _, entry := range entries {
		kind := "file"
		if !entry.Type().IsRegular() {
			kind = entry.Type().String()
		}
		fmt.Printf("  %-8s %s\n", kind, entry.Name())
	}

	// Step 2: Trailing digit extraction per entry
	fmt.Println("\n=== STEP 2: Trailing Digits ===")
	for _, entry := range entries {
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		digits, ok := version.TrailingNumber(stem)
		if ok {
			fmt.Printf("  %s -> digits=%q (width %d)\n", name, digits, len(digits))
		} else {
			fmt.Printf("  %s -> no trailing digits\n", name)
		}
	}

	// Step 3: Latest resolution
	fmt.Println("\n=== STEP 3: Latest Version ===")
	latest, ok, err := version.LatestFileInDir(dir, ext, contains)
	if err != nil {
		log.Fatal(err)
	}
	if ok {
		fmt.Printf("Latest: %s\n", latest)
	} else {
		fmt.Printf("No %s file with a trailing version number matched (contains=%q)\n", ext, contains)
	}

	// Step 4: Next version at common paddings
	fmt.Println("\n=== STEP 4: Next Version by Padding ===")
	for padding := 1; padding <= 4; padding++ {
		next, err := version.NextInDir(dir, ext, contains, padding)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  padding %d -> %s\n", padding, next)
	}
}
