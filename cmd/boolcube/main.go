// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command boolcube runs a JSON command script against the cube-list algebra
// engine. It reads the script named on the command line, executes it, and
// prints the final command's reply to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/godoctor/boolcube/cube"
	"github.com/godoctor/boolcube/script"
)

var (
	seed     int64
	outPath  string
	selfTest bool
)

func main() {
	root := &cobra.Command{
		Use:   "boolcube [script.json]",
		Short: "Run a boolean cube-list command script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().Int64Var(&seed, "seed", 1, "PRNG seed for --self-test")
	root.Flags().StringVarP(&outPath, "out", "o", "", "write the reply JSON here instead of stdout")
	root.Flags().BoolVar(&selfTest, "self-test", false, "run the random-tautology regression instead of a script")

	if err := root.Execute(); err != nil {
		color.Red("boolcube: %s", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if selfTest {
		return runSelfTest()
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one script path")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		color.Red("could not open %s: %s", args[0], err)
		os.Exit(2)
	}

	reply, err := script.Run(data)
	if err != nil {
		color.Red("script failed: %s", err)
		os.Exit(3)
	}

	out, err := json.MarshalIndent(reply, "", "  ")
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, out, 0o644)
	}
	color.Green("OK")
	fmt.Println(string(out))
	return nil
}

// runSelfTest builds random tautologies of widths 17..25, mutates each into
// a non-tautology, and checks IsTautology agrees both times, as spec.md's
// scenario 5 regression prescribes.
func runSelfTest() error {
	rng := rand.New(rand.NewSource(seed))
	for v := 17; v <= 25; v++ {
		p := cube.NewProblem(v)
		l := p.RandomTautology(rng, v+2)
		ok, err := p.IsTautology(l)
		if err != nil {
			color.Red("V=%d: %s", v, err)
			return err
		}
		if !ok {
			color.Red("V=%d: RandomTautology failed to build a tautology", v)
			return fmt.Errorf("self-test failed at V=%d", v)
		}
		p.MutateDontCareToOne(rng, l, v)
		ok, err = p.IsTautology(l)
		if err != nil {
			color.Red("V=%d: %s", v, err)
			return err
		}
		if ok {
			color.Red("V=%d: mutated list is still a tautology", v)
			return fmt.Errorf("self-test failed at V=%d", v)
		}
		color.Green("V=%d: OK", v)
	}
	return nil
}
