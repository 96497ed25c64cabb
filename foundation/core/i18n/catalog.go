// File: catalog.go
// Title: Embedded Unit Catalogs
// Description: Per-locale names for byte-size units and duration units,
//              embedded in the binary. Catalogs are written in YAML or TOML;
//              the file extension selects the decoder.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-01 v0.1.0: ru and en catalogs in YAML
// - 2026-10-14 v0.2.0: de catalog in TOML, validation on load

package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// DefaultLocale is used when no locale is requested
const DefaultLocale = "ru"

//go:embed locales
var localeFS embed.FS

// Format represents the catalog file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// formatFromExt maps a file extension to a catalog format
func formatFromExt(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Catalog holds the unit names of one locale. Catalogs returned by
// LoadCatalog are shared and must not be modified.
type Catalog struct {
	Locale   string        `yaml:"locale" toml:"locale"`
	Size     SizeNames     `yaml:"size" toml:"size"`
	Duration DurationNames `yaml:"duration" toml:"duration"`
}

// SizeNames lists the plural forms of "byte" and the larger unit symbols
// starting at kilobytes.
type SizeNames struct {
	Bytes []string `yaml:"bytes" toml:"bytes"`
	Units []string `yaml:"units" toml:"units"`
}

// DurationNames holds plural forms for each unit plus short suffixes
type DurationNames struct {
	Day    []string   `yaml:"day" toml:"day"`
	Hour   []string   `yaml:"hour" toml:"hour"`
	Minute []string   `yaml:"minute" toml:"minute"`
	Second []string   `yaml:"second" toml:"second"`
	Short  ShortNames `yaml:"short" toml:"short"`
}

type ShortNames struct {
	Day    string `yaml:"day" toml:"day"`
	Hour   string `yaml:"hour" toml:"hour"`
	Minute string `yaml:"minute" toml:"minute"`
	Second string `yaml:"second" toml:"second"`
}

// Agree returns the entry of forms that agrees with n in the catalog locale
func (c *Catalog) Agree(n int64, forms []string) string {
	return Plural(c.Locale, int(n), forms...)
}

// ParseCatalog decodes a catalog and checks that every unit has names
func ParseCatalog(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&c)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&c)
	default:
		err = fmt.Errorf("unsupported catalog format %d", format)
	}
	if err != nil {
		return nil, mdwerrors.I18nCatalogInvalid(c.Locale, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	missing := func(what string) error {
		return mdwerrors.I18nCatalogInvalid(c.Locale, fmt.Errorf("missing %s", what))
	}

	if strings.TrimSpace(c.Locale) == "" {
		return missing("locale")
	}
	if len(c.Size.Bytes) == 0 {
		return missing("size.bytes")
	}
	if len(c.Size.Units) == 0 {
		return missing("size.units")
	}
	d := c.Duration
	for name, forms := range map[string][]string{
		"duration.day":    d.Day,
		"duration.hour":   d.Hour,
		"duration.minute": d.Minute,
		"duration.second": d.Second,
	} {
		if len(forms) == 0 {
			return missing(name)
		}
	}
	if d.Short.Day == "" || d.Short.Hour == "" || d.Short.Minute == "" || d.Short.Second == "" {
		return missing("duration.short")
	}
	return nil
}

var (
	catalogsOnce sync.Once
	catalogs     map[string]*Catalog
	catalogsErr  error
)

func loadEmbedded() {
	catalogs = make(map[string]*Catalog)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		catalogsErr = mdwerror.Wrap(err, "read embedded catalogs").WithCode(mdwerror.CodeCatalogInvalid)
		return
	}

	for _, entry := range entries {
		format, ok := formatFromExt(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			catalogsErr = mdwerror.Wrap(err, "read embedded catalog").WithCode(mdwerror.CodeCatalogInvalid)
			return
		}
		c, err := ParseCatalog(data, format)
		if err != nil {
			catalogsErr = err
			return
		}

		stem := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if c.Locale != stem {
			catalogsErr = mdwerrors.I18nCatalogInvalid(stem, fmt.Errorf("file declares locale %q", c.Locale))
			return
		}
		catalogs[stem] = c
	}
}

// LoadCatalog returns the catalog for locale. An empty locale selects
// DefaultLocale; region and script subtags are ignored, so "ru-RU" and
// "ru_RU.UTF-8" both select "ru".
func LoadCatalog(locale string) (*Catalog, error) {
	catalogsOnce.Do(loadEmbedded)
	if catalogsErr != nil {
		return nil, catalogsErr
	}

	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	key, err := NormalizeLocale(locale)
	if err != nil {
		return nil, mdwerrors.I18nUnknownLocale(locale)
	}
	c, ok := catalogs[key]
	if !ok {
		return nil, mdwerrors.I18nUnknownLocale(locale)
	}
	return c, nil
}

// Locales lists the locales that have a catalog, sorted
func Locales() []string {
	catalogsOnce.Do(loadEmbedded)

	out := make([]string, 0, len(catalogs))
	for k := range catalogs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
