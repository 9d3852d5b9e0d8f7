// Command restream-bench measures the restream block encoder on a raw
// framebuffer dump.
//
//	restream-bench [flags] <image file> <slow|fast|parallel>
//
// The file is read into memory once and encoded --iterations times. The
// command prints elapsed time, throughput in frames per second, original and
// compressed sizes, the compression ratio and an xxHash64 digest of the
// encoded stream so runs of different modes can be compared.
package main

import (
	"log"
	"os"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("restream-bench: %s", err)
	}
}
