// Package main demonstrates the colstat engines on small columns,
// rendering each result set as an aligned table.
package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/veldran/colstat/column"
	"github.com/veldran/colstat/kernel"
	"github.com/veldran/colstat/stats"
)

var printer = message.NewPrinter(language.English)

func main() {
	dense := column.New(column.Float64, []float64{1, 2, 3, 4, 5})
	sparse := column.NewNullable(column.Float64,
		[]float64{1, 2, 0, 4, 5},
		[]bool{true, true, false, true, true})
	skewed := column.New(column.Float64, []float64{1, 2, 3, 4, 10})

	printTable("Reductions on [1 2 3 4 5]", []string{"Mean", "Variance", "Std"}, map[string]string{
		"Mean":     printer.Sprintf("%.4f", stats.Mean(dense)),
		"Variance": printer.Sprintf("%.4f", stats.Variance(dense)),
		"Std":      printer.Sprintf("%.4f", stats.Std(dense)),
	})

	printTable("Reductions on [1 2 _ 4 5] (null at index 2)", []string{"Mean (skip nulls)", "Mean (keep nulls)", "Null count"}, map[string]string{
		"Mean (skip nulls)": printer.Sprintf("%.4f", stats.Mean(sparse)),
		"Mean (keep nulls)": printer.Sprintf("%v", stats.MeanOpts(sparse, stats.ReduceOptions{SkipNulls: false, DDof: 1})),
		"Null count":        printer.Sprintf("%d", sparse.NullCount()),
	})

	q25, _ := stats.Quantile(dense, 0.25, kernel.InterpLinear, true)
	q75, _ := stats.Quantile(dense, 0.75, kernel.InterpLinear, true)
	printTable("Order statistics on [1 2 3 4 5]", []string{"Q1", "Median", "Q3"}, map[string]string{
		"Q1":     printer.Sprintf("%.4f", q25),
		"Median": printer.Sprintf("%.4f", stats.Median(dense, true)),
		"Q3":     printer.Sprintf("%.4f", q75),
	})

	printTable("Moments on [1 2 3 4 10]", []string{"Skew", "Kurtosis"}, map[string]string{
		"Skew":     printer.Sprintf("%.4f", stats.Skew(skewed, true)),
		"Kurtosis": printer.Sprintf("%.4f", stats.Kurtosis(skewed, true)),
	})

	printTable("Pairwise on dense vs skewed", []string{"Cov", "Corr", "Self corr"}, map[string]string{
		"Cov":       printer.Sprintf("%.4f", stats.Cov(dense, skewed)),
		"Corr":      printer.Sprintf("%.4f", stats.Corr(dense, skewed)),
		"Self corr": printer.Sprintf("%.4f", stats.Corr(dense, dense)),
	})

	cum := stats.Scan(stats.CumSum, sparse)
	printTable("Cumulative sum of [1 2 _ 4 5]", []string{"Values", "DType"}, map[string]string{
		"Values": formatColumn(cum),
		"DType":  cum.DType().String(),
	})

	rounded := stats.Round(column.New(column.Float64, []float64{0.5, 1.5, 2.5, 2.675}), 0, kernel.RoundHalfEven)
	printTable("Round half-even of [0.5 1.5 2.5 2.675]", []string{"Values"}, map[string]string{
		"Values": formatColumn(rounded),
	})

	desc := stats.Describe(skewed)
	printTable("Describe [1 2 3 4 10]", []string{"Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"}, map[string]string{
		"Count":  printer.Sprintf("%d", desc.Count),
		"Mean":   printer.Sprintf("%.4f", desc.Mean),
		"Std":    printer.Sprintf("%.4f", desc.Std),
		"Min":    printer.Sprintf("%.4f", desc.Min),
		"Q1":     printer.Sprintf("%.4f", desc.Q1),
		"Median": printer.Sprintf("%.4f", desc.Median),
		"Q3":     printer.Sprintf("%.4f", desc.Q3),
		"Max":    printer.Sprintf("%.4f", desc.Max),
	})
}

func formatColumn(c *column.Column) string {
	parts := make([]string, c.Len())
	for i := range parts {
		if !c.IsValid(i) {
			parts[i] = "_"
			continue
		}
		parts[i] = printer.Sprintf("%g", c.Value(i))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func printTable(title string, keys []string, msg map[string]string) {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+"
	fmt.Println(title)
	fmt.Println(divider)
	for _, k := range keys {
		fmt.Printf("| %s%s | %s%s |\n",
			k, blank(maxKeyLen-2-runewidth.StringWidth(k)),
			msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmt.Println(divider)
	fmt.Println()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
