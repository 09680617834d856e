//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/Ian-Polito/OpenRCT2/sawyer"
	"github.com/Ian-Polito/OpenRCT2/sea"
)

var param struct {
	output   string
	chunks   bool
	checksum bool
}

func init() {
	pflag.StringVarP(&param.output, "output", "o", "", "Output file (single input only; default swaps .sea for .sc4)")
	pflag.BoolVarP(&param.chunks, "chunks", "c", false, "List chunk headers of the decoded payload")
	pflag.BoolVarP(&param.checksum, "checksum", "k", false, "Print the stored trailing checksum")
}

func outputName(input string) (output string) {
	ext := filepath.Ext(input)
	if strings.EqualFold(ext, ".sea") {
		output = strings.TrimSuffix(input, ext) + ".sc4"
	} else {
		output = input + ".sc4"
	}

	return
}

func evaluate(input string, output string) (err error) {
	raw, err := os.ReadFile(input)
	if err != nil {
		return
	}

	// The cipher is keyed by the name as shipped, not the path.
	plain, checksum, err := sea.DecodeFileChecksum(filepath.Base(input), raw)
	if err != nil {
		return
	}

	err = os.WriteFile(output, plain, 0644)
	if err != nil {
		return
	}

	fmt.Printf("%s: %v bytes -> %s\n", input, len(plain), output)

	if param.checksum {
		fmt.Printf("%s: stored checksum %08x\n", input, checksum)
	}

	if param.chunks {
		var chunks []*sawyer.Chunk
		chunks, err = sawyer.ReadChunks(bytes.NewReader(plain))
		if err != nil {
			err = fmt.Errorf("%s: %w", input, err)
			return
		}

		for n, chunk := range chunks {
			var decoded []byte
			decoded, err = chunk.Decode()
			if err != nil {
				err = fmt.Errorf("%s: chunk %v: %w", input, n, err)
				return
			}
			fmt.Printf("%s: chunk %v: encoding %v, %v -> %v bytes\n",
				input, n, chunk.Header.Encoding, len(chunk.Data), len(decoded))
		}
	}

	return
}

func main() {
	pflag.Parse()

	inputs := pflag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: seadecrypt [options] file.sea ...")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	if len(param.output) > 0 && len(inputs) != 1 {
		fmt.Fprintln(os.Stderr, "--output: requires exactly one input")
		os.Exit(1)
	}

	// Masks are independent per file name, so files decode in parallel.
	group := errgroup.Group{}
	for _, input := range inputs {
		input := input
		output := param.output
		if len(output) == 0 {
			output = outputName(input)
		}
		group.Go(func() error { return evaluate(input, output) })
	}

	err := group.Wait()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
