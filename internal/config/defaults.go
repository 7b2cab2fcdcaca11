package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/project"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// candidates are tried in order; the first file that exists wins.
var candidates = []struct {
	name   string
	format Format
}{
	{"config.toml", FormatTOML},
	{"config.yaml", FormatYAML},
	{"config.yml", FormatYAML},
}

// Defaults are user preferences applied when a value is neither passed
// on the command line nor asked for. Empty fields mean "no preference".
type Defaults struct {
	Compiler       string `toml:"compiler" yaml:"compiler"`
	PackageManager string `toml:"package_manager" yaml:"package_manager"`
	Install        *bool  `toml:"install" yaml:"install"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
}

// Handle records where defaults were read from.
type Handle struct {
	Path   string
	Format Format
}

// LoadDefaults reads the defaults file from Dir().
func LoadDefaults() (Defaults, Handle, error) {
	return LoadDefaultsFrom(Dir())
}

// LoadDefaultsFrom reads the first defaults file found in dir. A missing
// file is not an error and yields zero Defaults with an empty Handle.
func LoadDefaultsFrom(dir string) (Defaults, Handle, error) {
	for _, c := range candidates {
		p := filepath.Join(dir, c.name)
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Defaults{}, Handle{}, errdef.Wrap(errdef.CodeConfig, err, "read %s", p)
		}
		h := Handle{Path: p, Format: c.format}
		d, err := decode(data, c.format)
		if err != nil {
			return Defaults{}, h, errdef.Wrap(errdef.CodeConfig, err, "parse %s", p)
		}
		if err := d.validate(); err != nil {
			return Defaults{}, h, errdef.Wrap(errdef.CodeConfig, err, "%s", p)
		}
		return d, h, nil
	}
	return Defaults{}, Handle{}, nil
}

func decode(data []byte, f Format) (Defaults, error) {
	var d Defaults
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return Defaults{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty YAML document decodes to io.EOF.
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return Defaults{}, err
		}
	default:
		return Defaults{}, errors.New("unsupported config format " + string(f))
	}
	d.Compiler = strings.TrimSpace(d.Compiler)
	d.PackageManager = strings.TrimSpace(d.PackageManager)
	d.LogLevel = strings.ToLower(strings.TrimSpace(d.LogLevel))
	return d, nil
}

func (d Defaults) validate() error {
	if d.Compiler != "" {
		if _, err := project.ParseCompiler(d.Compiler); err != nil {
			return err
		}
	}
	if d.PackageManager != "" {
		if _, err := project.ParsePackageManager(d.PackageManager); err != nil {
			return err
		}
	}
	switch d.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log_level " + d.LogLevel + ": must be 'debug', 'info', 'warn', or 'error'")
	}
	return nil
}

// CompilerOr returns the configured compiler or def.
func (d Defaults) CompilerOr(def project.Compiler) project.Compiler {
	if c, err := project.ParseCompiler(d.Compiler); err == nil {
		return c
	}
	return def
}

// PackageManagerOr returns the configured package manager or def.
func (d Defaults) PackageManagerOr(def project.PackageManager) project.PackageManager {
	if pm, err := project.ParsePackageManager(d.PackageManager); err == nil {
		return pm
	}
	return def
}

// InstallOr returns the configured install preference or def.
func (d Defaults) InstallOr(def bool) bool {
	if d.Install != nil {
		return *d.Install
	}
	return def
}
