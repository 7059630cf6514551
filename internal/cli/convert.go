package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/govalues/cash"
	"github.com/govalues/cash/internal/logging"
)

type convertResult struct {
	Amount string `json:"amount"`
	Rate   string `json:"rate"`
	Result string `json:"result"`
}

func newConvertCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert AMOUNT BASE QUOTE RATE",
		Short: "Convert an amount at an exchange rate",
		Long: `Convert an amount in the base currency to the quote currency.
RATE is the number of units of the quote currency per unit of the base
currency. The result keeps all digits unless --round is given.`,
		Example: `  cash convert 100 EUR USD 1.0995
  cash convert 100 EUR USD 1.0995 --round`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runConvert(cmd, args)
		},
	}
	cmd.Flags().Bool("round", false, "round the result to the minor unit of the quote currency")
	return cmd
}

func (e *env) runConvert(cmd *cobra.Command, args []string) error {
	r, err := cash.ParseExchRate(args[1], args[2], args[3])
	if err != nil {
		return err
	}
	a, err := cash.ParseAmount(args[1], args[0])
	if err != nil {
		return err
	}
	b, err := r.Conv(a)
	if err != nil {
		return err
	}
	if round, _ := cmd.Flags().GetBool("round"); round {
		b = b.RoundToCurr()
	}
	e.log.WithFields(logging.Fields{
		"amount": a.String(),
		"rate":   r.String(),
	}).Debug("amount converted")

	res := convertResult{Amount: a.String(), Rate: r.String(), Result: b.String()}
	return e.print(cmd.OutOrStdout(), res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, res.Result)
		return err
	})
}
