package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ziadkadry99/craftfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize craftfolio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure craftfolio for your site and generates a .craftfolio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Serving %s on port %d. Run `craftfolio serve` to start.\n", cfg.SiteDir, cfg.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
