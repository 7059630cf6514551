package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/govalues/cash"
)

type currencyResult struct {
	Code          string   `json:"code"`
	Num           string   `json:"num"`
	Scale         int      `json:"scale"`
	MinUnit       string   `json:"min_unit"`
	Denominations []string `json:"denominations,omitempty"`
}

func newCurrencyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "currency CODE",
		Short:   "Show a currency and its configured denominations",
		Example: "  cash currency usd\n  cash currency 392",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runCurrency(cmd, args)
		},
	}
}

func (e *env) runCurrency(cmd *cobra.Command, args []string) error {
	c, err := cash.ParseCurr(args[0])
	if err != nil {
		return err
	}
	res := currencyResult{
		Code:    c.Code(),
		Num:     c.Num(),
		Scale:   c.Scale(),
		MinUnit: c.MinUnit().String(),
	}
	ds, _, err := e.cfg.Denominations(c)
	if err != nil {
		return err
	}
	for _, d := range ds {
		res.Denominations = append(res.Denominations, d.String())
	}

	return e.print(cmd.OutOrStdout(), res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "code\t%s\nnum\t%s\nscale\t%d\nmin unit\t%s\n", res.Code, res.Num, res.Scale, res.MinUnit)
		if err != nil || len(res.Denominations) == 0 {
			return err
		}
		_, err = fmt.Fprintf(w, "denominations\t%v\n", res.Denominations)
		return err
	})
}
