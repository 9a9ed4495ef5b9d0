package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mos6502/cpu"
)

// loadProgramFile reads a program given as whitespace-separated hex bytes,
// e.g. "A9 05 00".
func loadProgramFile(path string) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return cpu.ParseHex(string(text))
}

func printState(c *cpu.Cpu) {
	fmt.Printf("A=%02X X=%02X Y=%02X SP=%04X PC=%04X P=%s\n",
		c.Accumulator, c.X, c.Y, c.StackAddr(), c.ProgramCounter, c.Status)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "m6502",
		Short: "MOS 6502 interpreter -- run, step, and inspect machine-code programs",
	}

	var trace bool
	var realtime bool
	runCmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Execute a program until it halts on BRK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgramFile(args[0])
			if err != nil {
				return err
			}

			c := cpu.New()
			c.Load(program)
			c.Reset()

			var lastClock uint64
			err = c.RunWithCallback(func(c *cpu.Cpu) {
				if trace {
					for _, line := range c.Disassemble(c.ProgramCounter, c.ProgramCounter) {
						fmt.Printf("%-24s A=%02X X=%02X Y=%02X P=%s\n",
							line, c.Accumulator, c.X, c.Y, c.Status)
					}
				}
				if realtime {
					time.Sleep(cpu.Tick * time.Duration(c.ClockCount-lastClock))
					lastClock = c.ClockCount
				}
			})
			if err != nil {
				return err
			}

			fmt.Printf("halted after %d cycles\n", c.ClockCount)
			printState(c)
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&trace, "trace", "t", false, "Print each instruction before it executes")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Pace execution at the NES CPU clock instead of running flat out")

	debugCmd := &cobra.Command{
		Use:   "debug <program>",
		Short: "Single-step a program in an interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgramFile(args[0])
			if err != nil {
				return err
			}
			cpu.New().Debug(program)
			return nil
		},
	}

	disasmCmd := &cobra.Command{
		Use:   "disasm <program>",
		Short: "Print a listing of a program without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgramFile(args[0])
			if err != nil {
				return err
			}
			if len(program) == 0 {
				return fmt.Errorf("empty program")
			}

			c := cpu.New()
			c.Load(program)
			for _, line := range c.Disassemble(cpu.LoadBase, cpu.LoadBase+uint16(len(program))-1) {
				fmt.Println(line)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, debugCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
