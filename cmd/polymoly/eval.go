package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] polynomial x",
	Short: "evaluate a polynomial at a point.",
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		checkArgs(cmd, args, 2)

		spec := ringSpec(cmd)
		log.Debugf("evaluating %q at %s over %v", args[0], args[1], spec)

		res, err := calculator(cmd).EvaluateAt(spec, args[0], args[1])
		report(cmd, res, err)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [flags]",
	Short: "describe the selected ring.",
	Long: `Print the characteristic of the selected ring and, for --ring mod-p,
	a generator of its multiplicative group.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		checkArgs(cmd, args, 0)

		res, err := calculator(cmd).RingInfo(ringSpec(cmd))
		report(cmd, res, err)
	},
}

var interpolateCmd = &cobra.Command{
	Use:   "interpolate [flags] x1,y1 x2,y2 ...",
	Short: "find the polynomial of least degree through the given points.",
	Long: `Find the polynomial of least degree through the given points by Lagrange
	interpolation. The x values must be distinct and the ring must be a field.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)

		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		xs, ys, err := splitPoints(args)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		spec := ringSpec(cmd)
		log.Debugf("interpolating %d points over %v", len(xs), spec)

		res, err := calculator(cmd).InterpolatePoints(spec, xs, ys)
		report(cmd, res, err)
	},
}

// splitPoints splits arguments of the form "x,y".
func splitPoints(args []string) (xs, ys []string, err error) {
	xs = make([]string, len(args))
	ys = make([]string, len(args))

	for i, arg := range args {
		x, y, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, nil, fmt.Errorf("point %q is not of the form x,y", arg)
		}

		xs[i], ys[i] = strings.TrimSpace(x), strings.TrimSpace(y)
	}

	return xs, ys, nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(interpolateCmd)
	rootCmd.AddCommand(infoCmd)
}
