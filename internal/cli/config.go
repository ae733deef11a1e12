// Config loading for the invobs CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix scopes environment overrides, e.g. INVOBS_FLAVOR.
	envPrefix = "INVOBS"

	cfgKeyFlavor      = "flavor"
	cfgKeyItems       = "items"
	cfgKeyUseVariants = "use_variants"

	flagUseVariants = "use-variants"
)

// defaultItems is the vocabulary used when no config names one: the materials
// and tools along the path to an iron pickaxe.
var defaultItems = []string{
	"coal",
	"cobblestone",
	"crafting_table",
	"dirt",
	"furnace",
	"iron_axe",
	"iron_ingot",
	"iron_ore",
	"iron_pickaxe",
	"log",
	"planks",
	"stick",
	"stone",
	"stone_axe",
	"stone_pickaxe",
	"torch",
	"wooden_axe",
	"wooden_pickaxe",
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Flavor      string   `yaml:"flavor"`
	UseVariants bool     `yaml:"use_variants"`
	Items       []string `yaml:"items"`
}

// splitItems flattens item lists that arrive as comma-joined strings, as
// INVOBS_ITEMS=log,dirt does. Viper splits env values on whitespace only.
func splitItems(raw []string) []string {
	items := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, item := range strings.Split(entry, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// loadConfig reads config.yaml from configDir using Viper. Precedence is
// changed flag > INVOBS_* env > config.yaml > default. A missing config.yaml is
// not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFlavor, types.FlavorFlat)
	v.SetDefault(cfgKeyItems, defaultItems)
	v.SetDefault(cfgKeyUseVariants, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	bindings := map[string]string{
		cfgKeyFlavor:      cfgKeyFlavor,
		cfgKeyItems:       cfgKeyItems,
		cfgKeyUseVariants: flagUseVariants,
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(configDir string, cfg types.Config) (bool, error) {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Flavor:      cfg.Flavor,
		UseVariants: cfg.UseVariants,
		Items:       cfg.Items,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := "# invobs configuration\n# flavor: flat or variant; variant items are written as type#variant.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
