// Command packcopy copies all records from one node store to another.
package main

import (
	"fmt"
	"os"

	"github.com/bsm/packstat/store"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: packcopy <src> <dst>")
		fmt.Println("Copies records from src to dst.")
		if len(os.Args) < 3 {
			os.Exit(2)
		}
	}

	fmt.Println("Waiting for read lock ...")
	src, err := store.Open(os.Args[1])
	if err != nil {
		fmt.Println("Could not open source store:", err)
		os.Exit(1)
	}
	defer src.Close()

	fmt.Println("Waiting for write lock ...")
	dst, err := store.Create(os.Args[2])
	if err != nil {
		fmt.Println("Could not open target store:", err)
		os.Exit(1)
	}

	fmt.Println("Copying ...")

	_, err = store.Copy(dst, src, &store.CopyOptions{
		OnProgress: func(int64) { fmt.Fprint(os.Stderr, ".") },
	})
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if err := dst.Close(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
}
