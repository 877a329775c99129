package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuya-isaka/chibisearch/bsearch"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print example searches and their results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("running demonstration")
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "Binary Search Demonstration")
	fmt.Fprintln(w, "------------------------")

	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	fmt.Fprintf(w, "Array: %s\n", formatValues(arr))

	fmt.Fprintln(w, "\nBasic Search:")
	target := 7
	index, _, err := bsearch.Search(arr, target)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d found at index: %d\n", target, index)

	fmt.Fprintln(w, "\nRecursive Search:")
	target = 4
	index, _, err = bsearch.RecursiveSearch(arr, target)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d found at index: %d\n", target, index)

	dupArr := []int{1, 2, 2, 2, 3, 4, 4, 5, 5, 5, 6}
	fmt.Fprintf(w, "\nArray with Duplicates: %s\n", formatValues(dupArr))

	target = 2
	first, _, err := bsearch.FindFirstOccurrence(dupArr, target)
	if err != nil {
		return err
	}
	last, _, err := bsearch.FindLastOccurrence(dupArr, target)
	if err != nil {
		return err
	}
	count, err := bsearch.CountOccurrences(dupArr, target)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "First occurrence of %d: index %d\n", target, first)
	fmt.Fprintf(w, "Last occurrence of %d: index %d\n", target, last)
	fmt.Fprintf(w, "Total occurrences of %d: %d\n", target, count)

	_, _, err = bsearch.Search([]int{5, 3, 1, 4, 2}, 3)
	if !errors.Is(err, bsearch.ErrInvalidInput) {
		return fmt.Errorf("expected unsorted input to be rejected, got %v", err)
	}
	fmt.Fprintln(w, "\nError Handling:")
	fmt.Fprintf(w, "Attempted to search unsorted array - %v\n", err)

	return nil
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
