package cmd

import (
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/insides/chyp8"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "list the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := chyp8.ReadROM(args[0])
		if err != nil {
			return err
		}
		return cpu.Disassemble(cmd.OutOrStdout(), rom)
	},
}
