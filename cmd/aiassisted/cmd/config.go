package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rstlix0x0/aiassisted/internal/cmd/table"
	"github.com/rstlix0x0/aiassisted/pkg/config"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// configCmd represents the config command group.
var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage persistent settings",
	GroupID: "management",
}

// configShowCmd represents the config show command.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := configStore(store.NewOS())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(config.Keys()))
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			rows = append(rows, []string{key, value})
		}

		return renderTable(table.Data{
			Headers: []string{"Key", "Value"},
			Rows:    rows,
		})
	},
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := configStore(store.NewOS())
		if err != nil {
			return err
		}

		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := configStore(store.NewOS())
		if err != nil {
			return err
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

// configPathCmd represents the config path command.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := configStore(store.NewOS())
		if err != nil {
			return err
		}
		fmt.Println(cfg.Path())
		return nil
	},
}

// configResetCmd represents the config reset command.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := configStore(store.NewOS())
		if err != nil {
			return err
		}
		if err := cfg.Reset(); err != nil {
			return err
		}
		fmt.Println("Settings reset to defaults.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
