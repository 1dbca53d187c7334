// Command packgen fills a store with random fixed-size records for
// testing. The target must accept writes in any key order, i.e. a
// LevelDB or Badger directory or a .cdb file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/bsm/packstat/store"
)

func main() {
	num := flag.Int64("n", 1000000, "number of records to generate")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: packgen [-n num] <store>")
		os.Exit(1)
	}

	db, err := store.Create(flag.Arg(0))
	if err != nil {
		fmt.Println("Could not open store:", err)
		os.Exit(2)
	}
	defer db.Close()

	fmt.Println("Generating ...")

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	key := make([]byte, 16)
	val := make([]byte, 8)

	for i := int64(0); i < *num; i++ {
		if i%50000 == 0 {
			fmt.Fprint(os.Stderr, ".")
		}

		rnd.Read(key)
		rnd.Read(val)

		if err := db.Set(key, val); err != nil {
			fmt.Println("Error:", err)
			os.Exit(2)
		}
	}

	fmt.Fprintln(os.Stderr)
}
