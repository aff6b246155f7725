package main

import (
	"time"

	"github.com/jonathanmweiss/polymoly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var egcdCmd = &cobra.Command{
	Use:   "egcd [flags] a b",
	Short: "extended Euclidean algorithm on two integers or two polynomials.",
	Long: `Find gcd, s and t with s*a + t*b = gcd.
	With --ring integers, a and b are integers and the gcd is non-negative.
	With a field ring, a and b are polynomials.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			res *polymoly.Result
			err error
		)

		configure(cmd)
		checkArgs(cmd, args, 2)

		spec := ringSpec(cmd)
		start := time.Now()

		if spec.Kind == polymoly.Integers {
			res, err = polymoly.IntegerGcd(args[0], args[1])
		} else {
			res, err = calculator(cmd).Calculate(spec, polymoly.Gcd, args[0], args[1])
		}

		log.WithFields(log.Fields{
			"ring":    spec,
			"elapsed": time.Since(start),
		}).Debug("extended gcd")

		report(cmd, res, err)
	},
}

func init() {
	rootCmd.AddCommand(egcdCmd)
}
