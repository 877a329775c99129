package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yuya-isaka/chibisearch/bsearch"
	"github.com/yuya-isaka/chibisearch/config"
)

type result struct {
	op     config.Op
	target int
	index  int
	found  bool
	count  int
}

func (r result) String() string {
	switch {
	case r.op == config.OpCount:
		return fmt.Sprintf("%s %d: %d", r.op, r.target, r.count)
	case !r.found:
		return fmt.Sprintf("%s %d: not found", r.op, r.target)
	default:
		return fmt.Sprintf("%s %d: index %d", r.op, r.target, r.index)
	}
}

func (r result) fields() []zap.Field {
	return []zap.Field{
		zap.String("op", string(r.op)),
		zap.Int("target", r.target),
		zap.Int("index", r.index),
		zap.Bool("found", r.found),
		zap.Int("count", r.count),
	}
}

// query runs q against values, checking their order first.
func query(values []int, q config.Query) (result, error) {
	r := result{op: q.Op, target: q.Target, index: -1}

	var err error
	switch q.Op {
	case config.OpSearch:
		r.index, r.found, err = bsearch.Search(values, q.Target)
	case config.OpRecursive:
		r.index, r.found, err = bsearch.RecursiveSearch(values, q.Target)
	case config.OpFirst:
		r.index, r.found, err = bsearch.FindFirstOccurrence(values, q.Target)
	case config.OpLast:
		r.index, r.found, err = bsearch.FindLastOccurrence(values, q.Target)
	case config.OpCount:
		r.count, err = bsearch.CountOccurrences(values, q.Target)
	default:
		err = fmt.Errorf("%w: unknown op %q", config.ErrInvalidConfig, q.Op)
	}
	return r, err
}

// querySorted is query over an already checked sequence.
func querySorted(s *bsearch.Sorted[int], q config.Query) result {
	r := result{op: q.Op, target: q.Target, index: -1}

	switch q.Op {
	case config.OpSearch:
		r.index, r.found = s.Search(q.Target)
	case config.OpRecursive:
		r.index, r.found = s.RecursiveSearch(q.Target)
	case config.OpFirst:
		r.index, r.found = s.First(q.Target)
	case config.OpLast:
		r.index, r.found = s.Last(q.Target)
	case config.OpCount:
		r.count = s.Count(q.Target)
	}
	return r
}

func (a *app) searchCmd() *cobra.Command {
	var (
		opName string
		target int
		values []int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search operation over the given values",
		Example: `  chibisearch search --values 1,2,3,4,5,6,7,8,9,10 --target 7
  chibisearch search --op count --values 1,2,2,2,3 --target 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := config.ParseOp(opName)
			if err != nil {
				return err
			}

			r, err := query(values, config.Query{Op: op, Target: target})
			if err != nil {
				a.logger.Debug("search rejected", zap.String("op", string(op)), zap.Int("target", target), zap.Error(err))
				return err
			}
			a.logger.Debug("search finished", r.fields()...)

			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVar(&opName, "op", string(config.OpSearch), "operation: "+config.OpNames())
	cmd.Flags().IntVar(&target, "target", 0, "value to search for")
	cmd.Flags().IntSliceVar(&values, "values", nil, "sorted values, comma separated")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
