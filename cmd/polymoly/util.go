package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathanmweiss/polymoly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configure applies the flags every subcommand shares.
func configure(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// ringSpec reads the ring selected by --ring and --modulus.
func ringSpec(cmd *cobra.Command) polymoly.RingSpec {
	kind, err := polymoly.ParseRingKind(getString(cmd, "ring"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	spec := polymoly.RingSpec{Kind: kind, Modulus: getUint64(cmd, "modulus")}
	if kind.NeedsModulus() && spec.Modulus == 0 {
		fmt.Printf("ring %v needs --modulus\n", kind)
		os.Exit(2)
	}

	return spec
}

// calculator builds a Calculator limited by --max-degree.
func calculator(cmd *cobra.Command) *polymoly.Calculator {
	return polymoly.NewCalculator(polymoly.WithMaxDegree(getInt(cmd, "max-degree")))
}

// checkArgs prints usage and exits unless exactly n arguments were given.
func checkArgs(cmd *cobra.Command, args []string, n int) {
	if len(args) != n {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

// report prints res, or reports err and exits.
func report(cmd *cobra.Command, res *polymoly.Result, err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	asJSON := getFlag(cmd, "json") || !term.IsTerminal(int(os.Stdout.Fd()))
	if err := writeResult(os.Stdout, res, asJSON); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func writeResult(w io.Writer, res *polymoly.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	}

	_, err := fmt.Fprintln(w, res.String())

	return err
}
