package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathanmweiss/polymoly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [flags] operation lhs rhs",
	Short: "apply add, sub, mul, div or gcd to two polynomials.",
	Long: `Apply an operation to two polynomials over the selected ring.
	Operations are add (+), sub (-), mul (*), div (/) and gcd.
	div and gcd need a field, i.e. --ring reals or --ring mod-p.`,
	Run: func(cmd *cobra.Command, args []string) {
		configure(cmd)
		checkArgs(cmd, args, 3)

		op, err := polymoly.ParseOperation(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		spec := ringSpec(cmd)
		start := time.Now()

		res, err := calculator(cmd).Calculate(spec, op, args[1], args[2])
		log.WithFields(log.Fields{
			"ring":      spec,
			"operation": op,
			"elapsed":   time.Since(start),
		}).Debug("calculated")

		report(cmd, res, err)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
