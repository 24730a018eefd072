// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command bounds inspects bounded integer types and evaluates expressions over bounded values.
//
//	bounds eval 'i32[1,10](2)' + 'i32[1,6](2)'
//	bounds type 'i32[1,2147483647]' '*' 'i32[1,6]'
//	bounds ladder
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/avdva/bounded"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bounds",
		Short:         "Bounded integer calculator.",
		Long:          "Derives result types of bounded integer arithmetic and evaluates expressions.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("json", false, "print results as json")
	rootCmd.AddCommand(newEvalCmd(), newTypeCmd(), newLadderCmd())
	return rootCmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval <value> [<op> <value>]...",
		Short:   "Evaluate an expression from left to right.",
		Example: `  bounds eval 'i32[1,10](2)' + 'i32[1,6](2)' '*' 'i8[-3,3](-1)'`,
		Args:    chainArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evalChain(args)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "type <type> [<op> <type>]...",
		Short:   "Derive the result type of an expression from left to right.",
		Example: `  bounds type 'i32[1,2147483647]' + 'i32[1,6]'`,
		Args:    chainArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := typeChain(args)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func newLadderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ladder",
		Short: "Print the supported widths.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printLadder(cmd.OutOrStdout())
		},
	}
}

// chainArgs accepts "operand (op operand)*".
func chainArgs(cmd *cobra.Command, args []string) error {
	if len(args)%2 == 0 {
		return fmt.Errorf("expected an odd number of arguments, got %d", len(args))
	}
	return nil
}

// evalChain evaluates "value (op value)*" from left to right.
func evalChain(args []string) (bounded.Int, error) {
	acc, err := bounded.ParseInt(args[0])
	if err != nil {
		return bounded.Int{}, err
	}
	for i := 1; i+1 < len(args); i += 2 {
		op, err := bounded.ParseOp(args[i])
		if err != nil {
			return bounded.Int{}, err
		}
		rhs, err := bounded.ParseInt(args[i+1])
		if err != nil {
			return bounded.Int{}, err
		}
		result, err := bounded.Apply(op, acc, rhs)
		if err != nil {
			return bounded.Int{}, fmt.Errorf("%s %s %s: %w", acc, op, rhs, err)
		}
		log.Debugf("%s %s %s = %s", acc, op, rhs, result)
		acc = result
	}
	return acc, nil
}

// typeChain derives the type of "type (op type)*" from left to right.
func typeChain(args []string) (bounded.Type, error) {
	acc, err := bounded.ParseType(args[0])
	if err != nil {
		return bounded.Type{}, err
	}
	for i := 1; i+1 < len(args); i += 2 {
		op, err := bounded.ParseOp(args[i])
		if err != nil {
			return bounded.Type{}, err
		}
		rhs, err := bounded.ParseType(args[i+1])
		if err != nil {
			return bounded.Type{}, err
		}
		result, err := bounded.ResultType(op, acc, rhs)
		if err != nil {
			return bounded.Type{}, fmt.Errorf("%s %s %s: %w", acc, op, rhs, err)
		}
		log.Debugf("%s %s %s -> %s", acc, op, rhs, result)
		acc = result
	}
	return acc, nil
}

func printResult(cmd *cobra.Command, result fmt.Stringer) error {
	out := cmd.OutOrStdout()
	if !getFlag(cmd, "json") {
		_, err := fmt.Fprintln(out, result)
		return err
	}
	defer func(mode int) { bounded.JSONMode = mode }(bounded.JSONMode)
	bounded.JSONMode = bounded.JSONModeObject
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printLadder(out io.Writer) {
	for _, w := range bounded.Widths() {
		next, ok := w.Next()
		nextStr := "-"
		if ok {
			nextStr = next.String()
		}
		fmt.Fprintf(out, "%-4s [%d,%d] next: %s\n", w, w.Min(), w.Max(), nextStr)
	}
}

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}
