package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

type (
	// Config describes the stubs to generate for a package.
	Config struct {
		Dir     string  `path:"dir"`
		Pattern string  `path:"pattern" validate:"required"`
		Output  string  `path:"output" validate:"required"`
		Proxies []Proxy `path:"proxies" validate:"required,min=1,dive"`
		Verbose int     `path:"verbose" validate:"gte=0"`
	}

	// Proxy names a stub and the contracts it satisfies.
	Proxy struct {
		Name      string   `path:"name" validate:"required"`
		Contracts []string `path:"contracts" validate:"required,min=1,dive,required"`
	}
)

// Defaults used for settings not configured.
var Defaults = Config{
	Dir:     ".",
	Pattern: ".",
	Output:  "proxy_gen.go",
}

var ErrInvalidProxyFlag = errors.New("proxy must be Name=Contract[,Contract...]")

// LoadConfig reads the configuration from an optional yaml
// file overridden by the changed flags.
// Proxies given with the "proxy" flag are appended to the
// ones from the file.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k,
			func(f *pflag.Flag) (string, any) {
				if f.Name == "proxy" || f.Name == "config" {
					return "", nil
				}
				return strings.ReplaceAll(f.Name, "-", ""), posflag.FlagVal(flags, f)
			}), nil); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "path"}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if flags != nil {
		if specs, err := flags.GetStringArray("proxy"); err == nil {
			for _, spec := range specs {
				p, err := ParseProxy(spec)
				if err != nil {
					return Config{}, err
				}
				cfg.Proxies = append(cfg.Proxies, p)
			}
		}
	}

	if err := mergo.Merge(&cfg, Defaults); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseProxy parses Name=ContractA,ContractB.
func ParseProxy(spec string) (Proxy, error) {
	name, contracts, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Proxy{}, fmt.Errorf("%w: %q", ErrInvalidProxyFlag, spec)
	}
	p := Proxy{Name: name}
	for _, c := range strings.Split(contracts, ",") {
		if c = strings.TrimSpace(c); c != "" {
			p.Contracts = append(p.Contracts, c)
		}
	}
	if len(p.Contracts) == 0 {
		return Proxy{}, fmt.Errorf("%w: %q", ErrInvalidProxyFlag, spec)
	}
	return p, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	names := make(map[string]struct{}, len(c.Proxies))
	for _, p := range c.Proxies {
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("config: duplicate proxy %q", p.Name)
		}
		names[p.Name] = struct{}{}
	}
	return nil
}

var validate = validator.New()
