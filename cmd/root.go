package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "craftfolio",
	Short: "Serve and operate the craftfolio portfolio site",
	Long: `Craftfolio serves a static portfolio site together with its contact
endpoint and live clock feed. It can also submit contact forms from the
terminal through the same remote, local file and download fallbacks the
browser uses, and simulate the scroll reveal of a page layout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".craftfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
