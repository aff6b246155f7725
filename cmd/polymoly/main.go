package main

import (
	"fmt"
	"os"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/jonathanmweiss/polymoly"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is filled in by the linker, but *not* when installing via "go
// install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "polymoly",
	Short: "Polynomial arithmetic over the reals, the integers and integers modulo n.",
	Long: `Exact polynomial arithmetic over R, Z, Z/nZ and Z/pZ.
	Polynomials are written as sums of terms such as "3x^2 + -1x + 5".
	Arguments starting with a minus sign and a digit, such as -30, are
	numbers rather than flags. Anything after "--" is never a flag.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("polymoly ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()

			return
		}

		fmt.Println(cmd.UsageString())
	},
}

func main() {
	rootCmd.SetArgs(separateNegatives(os.Args[1:], valueFlags(rootCmd)))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// negativeArg matches numbers and polynomials with a leading minus sign.
var negativeArg = regexp.MustCompile(`^-[0-9.]`)

// separateNegatives moves positional arguments behind "--" when one of them
// would otherwise be read as a shorthand flag, e.g. "egcd -30 48". The
// subcommand stays in front and flags keep their values.
func separateNegatives(args []string, takesValue map[string]bool) []string {
	var (
		flags, positional []string
		negative          bool
	)

loop:
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			break loop
		case negativeArg.MatchString(arg):
			negative = true
			positional = append(positional, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if !negative || negativeArg.MatchString(positional[0]) {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, positional[0])
	out = append(out, flags...)
	out = append(out, "--")

	return append(out, positional[1:]...)
}

// valueFlags lists the spellings of every flag of cmd and its subcommands
// that takes a separate value.
func valueFlags(cmd *cobra.Command) map[string]bool {
	names := make(map[string]bool)

	add := func(f *pflag.Flag) {
		// bool flags have an implicit value.
		if f.NoOptDefVal != "" {
			return
		}

		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}

	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(add)
		c.PersistentFlags().VisitAll(add)

		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(cmd)

	return names
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().StringP("ring", "r", "reals", "coefficient ring: reals, integers, mod-n or mod-p")
	rootCmd.PersistentFlags().Uint64P("modulus", "m", 0, "modulus for mod-n and mod-p")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("json", false, "always print results as JSON")
	rootCmd.PersistentFlags().Int("max-degree", polymoly.DefaultMaxDegree, "largest degree accepted or produced")
}
