package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/provload"
)

var (
	discoverPattern string
	discoverProbe   bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover [root]",
	Short: "List provider libraries under a directory",
	Long: `List the files under root matching --pattern (doublestar syntax).
With --probe each candidate is loaded, verified and unloaded, and reported
as OK or FAIL. Root and pattern default to the discover section of --config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root := cfg.Discover.Root
		if len(args) == 1 {
			root = args[0]
		}
		if root == "" {
			root = "."
		}
		pattern := cfg.Discover.Pattern
		if cmd.Flags().Changed("pattern") || pattern == "" {
			pattern = discoverPattern
		}

		found, err := provload.Discover(root, pattern)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !discoverProbe {
			for _, path := range found {
				fmt.Fprintln(out, path)
			}
			return nil
		}

		loader := newLoader(cfg)
		failed := 0
		for _, path := range found {
			h, err := loader.Load(path)
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "OK   %s (version %s)\n", path, h.Version())
			if err := loader.Unload(h); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d candidates failed to load", failed, len(found))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringVarP(&discoverPattern, "pattern", "p", "**/*.so", "Glob matched against paths relative to root")
	discoverCmd.Flags().BoolVar(&discoverProbe, "probe", false, "Load and verify each candidate")
}
