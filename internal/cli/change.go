package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/cash"
	"github.com/govalues/cash/internal/logging"
)

type changePart struct {
	Denomination string `json:"denomination"`
	Quantity     int    `json:"quantity"`
}

// changeResult is the JSON form of both kinds of change solutions.
type changeResult struct {
	Amount    string       `json:"amount"`
	Method    string       `json:"method"`
	Parts     []changePart `json:"parts"`
	Pieces    int          `json:"pieces"`
	Remainder string       `json:"remainder,omitempty"`
	Solution  bool         `json:"solution"`
	Partial   bool         `json:"partial"`
}

func toChangeParts(parts []cash.QuantifiedDenomination) []changePart {
	res := make([]changePart, len(parts))
	for i, p := range parts {
		res[i] = changePart{Denomination: p.Denomination.String(), Quantity: p.Quantity}
	}
	return res
}

func (res changeResult) writeText(w io.Writer) error {
	if !res.Solution {
		_, err := fmt.Fprintf(w, "no %s change for %s\n", res.Method, res.Amount)
		return err
	}
	for _, p := range res.Parts {
		if _, err := fmt.Fprintf(w, "%s\tx %d\n", p.Denomination, p.Quantity); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "pieces\t%d\n", res.Pieces); err != nil {
		return err
	}
	if res.Remainder != "" {
		if _, err := fmt.Fprintf(w, "remainder\t%s\n", res.Remainder); err != nil {
			return err
		}
	}
	return nil
}

func newChangeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "change AMOUNT CURRENCY",
		Short: "Make change from coins and notes",
		Long: `Represent an amount with coins and notes.

The optimal method finds the fewest pieces that sum up to the amount exactly,
or reports that there are none. The greedy method takes the largest piece that
fits, one after another, and reports what is left over.
Denominations default to the set configured for the currency.`,
		Example: `  cash change 30 USD --denominations 25,15,1
  cash change 0.30 USD --denominations 0.25,0.10 --optimal=false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runChange(cmd, args)
		},
	}
	cmd.Flags().StringSliceP("denominations", "d", nil, "comma-separated face values (default from config)")
	cmd.Flags().Bool("optimal", true, "use the optimal method instead of the greedy one (default from config)")
	cmd.Flags().Int("max-units", 0, "largest amount in integer units for the optimal method (default from config)")
	return cmd
}

func (e *env) denominations(cmd *cobra.Command, curr cash.Currency) ([]cash.Denomination, error) {
	if cmd.Flags().Changed("denominations") {
		values, _ := cmd.Flags().GetStringSlice("denominations")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		return cash.ParseDenominations(values...)
	}
	ds, ok, err := e.cfg.Denominations(curr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no denominations configured for %v, use --denominations", curr)
	}
	return ds, nil
}

func (e *env) runChange(cmd *cobra.Command, args []string) error {
	a, err := cash.ParseAmount(args[1], args[0])
	if err != nil {
		return err
	}
	ds, err := e.denominations(cmd, a.Curr())
	if err != nil {
		return err
	}
	optimal := e.cfg.Change.Optimal
	if cmd.Flags().Changed("optimal") {
		optimal, _ = cmd.Flags().GetBool("optimal")
	}
	maxUnits := e.cfg.Change.MaxUnits
	if cmd.Flags().Changed("max-units") {
		maxUnits, _ = cmd.Flags().GetInt("max-units")
	}

	log := e.log.WithFields(logging.Fields{
		"amount":        a.String(),
		"denominations": len(ds),
		"optimal":       optimal,
	})
	var res changeResult
	if optimal {
		m := cash.OptimalChangeMaker{MaxUnits: maxUnits}
		s, err := m.Solve(a.Decimal(), ds...)
		if err != nil {
			return err
		}
		res = changeResult{
			Amount:   a.String(),
			Method:   "optimal",
			Parts:    toChangeParts(s.Parts()),
			Pieces:   s.TotalCount(),
			Solution: s.IsSolution(),
		}
	} else {
		s, err := cash.MakeChange(a, ds...)
		if err != nil {
			return err
		}
		res = changeResult{
			Amount:    a.String(),
			Method:    "greedy",
			Parts:     toChangeParts(s.Parts()),
			Pieces:    s.TotalCount(),
			Remainder: s.Remainder().String(),
			Solution:  s.IsSolution(),
			Partial:   s.IsPartial(),
		}
	}
	log.WithFields(logging.Fields{
		"pieces":   res.Pieces,
		"solution": res.Solution,
	}).Debug("change made")
	if !res.Solution {
		log.Info("amount cannot be represented with the denominations")
	}
	return e.print(cmd.OutOrStdout(), res, res.writeText)
}
