// Command packstat scans a node store and reports the distribution of
// the pack formats, together with projected sizes under the two
// candidate node encodings.
package main

import (
	"fmt"
	"os"

	"github.com/bsm/packstat"
	"github.com/bsm/packstat/store"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: packstat <store>")
		fmt.Println("Shows the distribution of the different pack formats.")
		os.Exit(2)
	}

	fmt.Println("Waiting for read lock ...")

	db, err := store.Open(os.Args[1])
	if err != nil {
		fmt.Println("Could not open store:", err)
		os.Exit(1)
	}
	defer db.Close()

	cur, err := db.Scan()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer cur.Release()

	fmt.Println("Scanning ...")

	tally, err := packstat.Profile(cur, &packstat.ProfileOptions{
		OnProgress: func(int64) { fmt.Fprint(os.Stderr, ".") },
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if err := packstat.WriteReport(os.Stdout, tally); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
