package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/cash"
	"github.com/govalues/cash/internal/config"
	"github.com/govalues/cash/internal/logging"
)

// allocationResult is the JSON form of an allocation.
type allocationResult struct {
	Amount        string   `json:"amount"`
	Shares        []string `json:"shares"`
	Remainder     string   `json:"remainder"`
	Complete      bool     `json:"complete"`
	QuasiComplete bool     `json:"quasi_complete"`
	Policy        string   `json:"policy"`
}

func newAllocationResult(r cash.Allocation, policy string) allocationResult {
	shares := make([]string, r.Len())
	for i, s := range r.Shares() {
		shares[i] = s.String()
	}
	return allocationResult{
		Amount:        r.Amount().String(),
		Shares:        shares,
		Remainder:     r.Remainder().String(),
		Complete:      r.IsComplete(),
		QuasiComplete: r.IsQuasiComplete(),
		Policy:        policy,
	}
}

func (res allocationResult) writeText(w io.Writer) error {
	for i, s := range res.Shares {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i+1, s); err != nil {
			return err
		}
	}
	status := "incomplete"
	switch {
	case res.Complete:
		status = "complete"
	case res.QuasiComplete:
		status = "quasi-complete"
	}
	_, err := fmt.Fprintf(w, "remainder\t%s (%s)\n", res.Remainder, status)
	return err
}

func addRemainderFlags(cmd *cobra.Command) {
	cmd.Flags().String("remainder", "", "remainder policy: first, last, random or none (default from config)")
	cmd.Flags().Uint64("seed", 0, "seed of the random remainder policy, 0 for a random seed")
}

// remainderAllocator returns the policy selected by the flags or the config.
// The policy "none" yields a nil allocator.
func (e *env) remainderAllocator(cmd *cobra.Command) (cash.RemainderAllocator, string, error) {
	policy := e.cfg.Allocation.Remainder
	if cmd.Flags().Changed("remainder") {
		policy, _ = cmd.Flags().GetString("remainder")
	}
	policy, err := config.ParseRemainder(policy)
	if err != nil {
		return nil, "", err
	}
	seed := e.cfg.Allocation.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	switch policy {
	case config.RemainderFirst:
		return cash.FirstToLast, policy, nil
	case config.RemainderLast:
		return cash.LastToFirst, policy, nil
	case config.RemainderRandom:
		if seed == 0 {
			return cash.NewRandomRemainder(nil), policy, nil
		}
		return cash.NewRandomRemainder(rand.NewPCG(seed, seed)), policy, nil
	default:
		return nil, policy, nil
	}
}

// complete distributes the remainder of r and prints the result.
func (e *env) complete(cmd *cobra.Command, r cash.Allocation) error {
	ra, policy, err := e.remainderAllocator(cmd)
	if err != nil {
		return err
	}
	log := e.log.WithFields(logging.Fields{
		"amount":    r.Amount().String(),
		"shares":    r.Len(),
		"remainder": r.Remainder().String(),
		"policy":    policy,
	})
	log.Debug("shares truncated to the minor unit")
	if ra != nil {
		if r, err = ra.Complete(r); err != nil {
			return err
		}
	}
	if !r.IsComplete() {
		log.WithField("left", r.Remainder().String()).Info("allocation is not complete")
	}
	res := newAllocationResult(r, policy)
	return e.print(cmd.OutOrStdout(), res, res.writeText)
}

func newSplitCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split AMOUNT CURRENCY",
		Short: "Split an amount into equal shares",
		Long: `Split an amount into nominally equal shares truncated to the minor unit of
the currency, then hand the remainder out with the selected policy.`,
		Example: `  cash split 8.30 USD --parts 4
  cash split 100 JPY --parts 3 --remainder last`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runSplit(cmd, args)
		},
	}
	cmd.Flags().IntP("parts", "n", 2, "number of shares")
	addRemainderFlags(cmd)
	return cmd
}

func (e *env) runSplit(cmd *cobra.Command, args []string) error {
	a, err := cash.ParseAmount(args[1], args[0])
	if err != nil {
		return err
	}
	parts, _ := cmd.Flags().GetInt("parts")
	r, err := cash.AllocateEven(a, parts)
	if err != nil {
		return err
	}
	return e.complete(cmd, r)
}

func newProRataCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prorata AMOUNT CURRENCY",
		Short: "Split an amount in proportion to ratios",
		Long: `Split an amount into shares proportional to ratios that sum up to exactly 1,
truncated to the minor unit of the currency, then hand the remainder out
with the selected policy.`,
		Example: `  cash prorata 100 USD --ratios 0.5,0.4,0.05,0.05`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runProRata(cmd, args)
		},
	}
	cmd.Flags().StringSliceP("ratios", "r", nil, "comma-separated ratios summing up to 1")
	_ = cmd.MarkFlagRequired("ratios")
	addRemainderFlags(cmd)
	return cmd
}

func (e *env) runProRata(cmd *cobra.Command, args []string) error {
	a, err := cash.ParseAmount(args[1], args[0])
	if err != nil {
		return err
	}
	values, _ := cmd.Flags().GetStringSlice("ratios")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	ratios, err := cash.ParseRatios(values...)
	if err != nil {
		return err
	}
	r, err := cash.AllocateProRata(a, ratios)
	if err != nil {
		return err
	}
	return e.complete(cmd, r)
}
