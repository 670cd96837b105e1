package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// UserConfig is a wrapper around the user-specific configuration values
// for cidiff.
type UserConfig struct {
	userViper *viper.Viper
	path      string
}

// Token returns the code-host token for this user if it exists
func (uc *UserConfig) Token() string {
	return uc.userViper.GetString("token")
}

// SetToken saves a code-host token for this user, writing it to the
// user config file, creating it if necessary
func (uc *UserConfig) SetToken(token string) error {
	// Technically Set works here, due to how overrides work, but use merge for consistency
	if err := uc.userViper.MergeConfigMap(map[string]interface{}{"token": token}); err != nil {
		return err
	}
	return uc.write()
}

// Internal call to save this config data to the user config file.
func (uc *UserConfig) write() error {
	if err := os.MkdirAll(filepath.Dir(uc.path), 0755); err != nil {
		return err
	}
	return uc.userViper.WriteConfig()
}

// Delete deletes the config file. This user config shouldn't be used
// afterwards, it needs to be re-initialized
func (uc *UserConfig) Delete() error {
	return os.Remove(uc.path)
}

// ReadUserConfigFile creates a UserConfig using the specified path as the
// user config file. Note that the path or its parents do not need to exist.
// On a write to this configuration, they will be created.
func ReadUserConfigFile(path string) (*UserConfig, error) {
	userViper := viper.New()
	userViper.SetConfigFile(path)
	userViper.SetConfigType("json")
	if err := userViper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return &UserConfig{
		userViper: userViper,
		path:      path,
	}, nil
}

// AddUserConfigFlags adds per-user configuration item flags to the given flagset
func AddUserConfigFlags(flags *pflag.FlagSet) {
	flags.String("token", "", "Set the code-host token for API calls")
}

// DefaultUserConfigPath returns the default platform-dependent place that
// we store the user-specific configuration.
func DefaultUserConfigPath() string {
	path, err := xdg.ConfigFile(filepath.Join("cidiff", "config.json"))
	if err != nil {
		return filepath.Join(xdg.ConfigHome, "cidiff", "config.json")
	}
	return path
}
