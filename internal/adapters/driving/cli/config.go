package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage obsync configuration",
	Long: `Show and change configuration values stored in config.toml.

Recognised keys:
  user_id                   iNaturalist login whose observations are synced
  content_dir               directory of per-observation markdown files
  data_dir                  directory for obsync state (run history)
  api_base_url              API endpoint (default ` + domain.DefaultBaseURL + `)
  request_interval_seconds  spacing between API requests (default 1)
  http_timeout_seconds      per-request timeout (default 30)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// intKeys are config keys whose values are stored as integers.
var intKeys = map[string]bool{
	domain.ConfigKeyRequestInterval: true,
	domain.ConfigKeyHTTPTimeout:     true,
}

// stringKeys are config keys whose values are stored as strings.
var stringKeys = map[string]bool{
	domain.ConfigKeyUserID:     true,
	domain.ConfigKeyContentDir: true,
	domain.ConfigKeyDataDir:    true,
	domain.ConfigKeyBaseURL:    true,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	keys := store.Keys()
	if len(keys) == 0 {
		cmd.Println("No configuration set. Use 'obsync config set <key> <value>'.")
		return nil
	}

	for _, key := range keys {
		value, _ := store.Get(key)
		cmd.Printf("%s = %v\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	store, err := openConfigStore()
	if err != nil {
		return err
	}

	var value any
	switch {
	case stringKeys[key]:
		value = raw
	case intKeys[key]:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		value = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}
