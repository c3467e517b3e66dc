package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperborg/hyperborg/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a hyperborg workspace",
	Long:  "Creates the artifacts/ tree and a .hyperborg/ folder with the workspace configuration.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Init(projectRoot())
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render("Initialized hyperborg workspace in " + cfg.ProjectDir))
	fmt.Println()
	fmt.Println(subtleStyle.Render("Next steps:"))
	fmt.Println(subtleStyle.Render(`  1. Run: hyperborg log <phase-id> --init --title "..."`))
	fmt.Println(subtleStyle.Render("  2. Run: hyperborg plan <phase-id> --init"))
	return nil
}
