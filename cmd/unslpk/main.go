// Command unslpk extracts an SLPK scene layer package into a folder named
// after the package.
package main

import (
	"fmt"
	"os"

	"github.com/slpkit/unslpk"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	concurrency int
)

var rootCmd = &cobra.Command{
	Use:   "unslpk [flags] <package.slpk>",
	Short: "Extract an SLPK scene layer package",
	Long: `Extract an SLPK scene layer package into a folder next to it,
named after the package file. Gzipped entries are decompressed and
*.json.gz documents are pretty-printed with two-space indentation.

An output folder left behind by a previous run is deleted first, so
extracting the same package twice always yields the same tree.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return unpack(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print one line per extracted entry")
	rootCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "number of extraction workers (default GOMAXPROCS)")
}

func unpack(cmd *cobra.Command, filename string) error {
	var opts []unslpk.UnpackerOption
	if concurrency > 0 {
		opts = append(opts, unslpk.WithConcurrency(concurrency))
	}
	if verbose {
		opts = append(opts, unslpk.WithProgressHandler(func(op, source, target string) {
			label := "Copy"
			if op == unslpk.OpDecompress {
				label = "Decompress"
			}
			fmt.Printf("%s: %s -> %s\n", label, source, target)
		}))
	}

	fmt.Printf("Unpacking package: %s\n", filename)

	u, err := unslpk.NewUnpacker(filename, opts...)
	if err != nil {
		return err
	}
	defer u.Close()

	n, err := u.Unpack(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%d files unpacked\n", n)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
