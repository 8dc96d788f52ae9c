package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/0xhunterkiller/turinglib/def"
)

var showCmd = &cobra.Command{
	Use:   "show <definition-file>",
	Short: "Validate a machine definition and print its transition table",
	Args:  cobra.ExactArgs(1),
	RunE:  showMachine,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showMachine(cmd *cobra.Command, args []string) error {
	d, err := def.LoadFile(args[0])
	if err != nil {
		return err
	}

	if d.Name != "" {
		fmt.Println(d.Name)
	}
	fmt.Printf("start: %s\n", d.Start)
	if len(d.Tape) > 0 {
		fmt.Printf("tape:  %v (head at %d)\n", d.Tape, d.Head)
	}

	names := make([]string, 0, len(d.States))
	for name := range d.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s:\n", name)
		if len(d.States[name]) == 0 {
			fmt.Println("  (no rules: halting state)")
		}
		for _, r := range d.States[name] {
			fmt.Printf("  read %-4s -> %s, write %s, move %s\n", r.Read, r.Next, r.Write, r.Move)
		}
	}
	return nil
}
