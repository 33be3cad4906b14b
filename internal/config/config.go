package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// TextSource is inline text or the path of a file holding it. In config
// files it is either a plain string or a table with a "path" key.
type TextSource struct {
	Value string `mapstructure:"-"`
	Path  string `mapstructure:"path"`
}

type HeaderConfig struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Features    []string `mapstructure:"features"`
}

type SectionConfig struct {
	DisplayName string `mapstructure:"display_name"`
	Order       *int   `mapstructure:"order"`
}

type DeclarationConfig struct {
	Ref         string `mapstructure:"ref"`
	Label       string `mapstructure:"label"`
	Description string `mapstructure:"description"`
}

type DocsConfig struct {
	Dirs            []string `mapstructure:"dirs"`
	URLPrefix       string   `mapstructure:"url_prefix"`
	DefaultCategory string   `mapstructure:"default_category"`
	Aggregator      string   `mapstructure:"aggregator"`
	Language        string   `mapstructure:"language"`
}

type Config struct {
	Enable         bool                     `mapstructure:"enable"`
	Output         string                   `mapstructure:"output"`
	OutDir         string                   `mapstructure:"out_dir"`
	BaseURL        string                   `mapstructure:"base_url"`
	Project        string                   `mapstructure:"project"`
	Manifest       string                   `mapstructure:"manifest"`
	Readme         string                   `mapstructure:"readme"`
	Strict         bool                     `mapstructure:"strict"`
	Header         HeaderConfig             `mapstructure:"header"`
	Sections       map[string]SectionConfig `mapstructure:"sections"`
	Declarations   []DeclarationConfig      `mapstructure:"declarations"`
	QuickReference TextSource               `mapstructure:"quick_reference"`
	Template       TextSource               `mapstructure:"template"`
	Docs           DocsConfig               `mapstructure:"docs"`
}

// ConfigFile overrides the search path when set, e.g. from --config.
var ConfigFile string

func InitializeViper() error {
	if ConfigFile != "" {
		viper.SetConfigFile(ConfigFile)
	} else {
		viper.SetConfigName("llmsgen")
		viper.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			viper.AddConfigPath(filepath.Join(xdg, "llmsgen"))
		} else if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "llmsgen"))
		}
	}

	viper.SetDefault("enable", true)
	viper.SetDefault("output", "llms.txt")
	viper.SetDefault("out_dir", "docs")
	viper.SetDefault("project", "project.json")
	viper.SetDefault("docs.url_prefix", "documents")
	viper.SetDefault("docs.default_category", "Documentation")
	viper.SetDefault("docs.aggregator", "index")
	viper.SetDefault("docs.language", "en")

	viper.SetEnvPrefix("LLMSGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func stringToTextSourceHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(TextSource{}) {
			return data, nil
		}
		if f.Kind() == reflect.String {
			return TextSource{Value: data.(string)}, nil
		}
		return data, nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}
	return Decode(viper.AllSettings())
}

// Decode builds a Config from raw settings and reads file-backed text.
func Decode(settings map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToTextSourceHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := resolveText(&config.QuickReference); err != nil {
		return nil, fmt.Errorf("failed to resolve quick reference: %w", err)
	}
	if err := resolveText(&config.Template); err != nil {
		return nil, fmt.Errorf("failed to resolve template: %w", err)
	}

	return &config, nil
}

func resolveText(src *TextSource) error {
	if src.Path == "" || src.Value != "" {
		return nil
	}
	p := src.Path
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p, err)
	}
	src.Value = string(data)
	return nil
}
