package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/provload"
	"github.com/aretw0/provload/pkg/core"
)

var (
	loadJSON bool
)

var loadCmd = &cobra.Command{
	Use:   "load [spec]",
	Short: "Load a provider, report its state and unload it",
	Long: `Load a provider library (or "none" for the built-in dummy provider),
verify it, apply the configured variables, print the handle state and unload it.
Without an argument the provider from --config is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		spec := cfg.Provider
		if len(args) == 1 {
			spec = args[0]
		}

		loader := newLoader(cfg)
		h, err := loader.Load(spec)
		if err != nil {
			return fmt.Errorf("load %q: %w", spec, err)
		}
		defer loader.Unload(h)

		if err := cfg.Apply(h); err != nil {
			return err
		}

		state := h.State().(core.HandleState)
		out := cmd.OutOrStdout()
		if loadJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(state)
		}

		fmt.Fprintf(out, "id:      %s\n", state.ID)
		fmt.Fprintf(out, "spec:    %s\n", displaySpec(state.Spec))
		fmt.Fprintf(out, "kind:    %s\n", state.Kind)
		fmt.Fprintf(out, "version: %s\n", state.Version)
		return nil
	},
}

func displaySpec(spec string) string {
	if spec == "" {
		return provload.None
	}
	return spec
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "Output in JSON format")
}
