package phpdate

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LocaleNames holds the display-name tables a locale contributes to textual
// specifiers. Weekdays are Sunday-first, months January-first.
type LocaleNames struct {
	WeekdaysLong  [7]string
	WeekdaysShort [7]string
	MonthsLong    [12]string
	MonthsShort   [12]string
	AM            string
	PM            string
}

// LocaleProvider resolves locale tags to display-name tables. Implementations
// must be safe for concurrent use; the built-in provider is immutable after
// construction.
type LocaleProvider interface {
	// Names resolves a BCP 47 tag, applying whatever fallback the provider
	// supports, and fails with ErrUnknownLocale when nothing matches.
	Names(locale string) (LocaleNames, error)

	// Locales lists the canonical tags the provider can serve.
	Locales() []string
}

//go:embed locales
var localeFS embed.FS

var defaultProvider = sync.OnceValue(func() LocaleProvider {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}
	p, err := LoadLocales(sub)
	if err != nil {
		panic(err)
	}
	return p
})

// DefaultProvider returns the provider backed by the embedded locale tables
// (en, de, fr, es, ja). The tables are loaded once per process.
func DefaultProvider() LocaleProvider {
	return defaultProvider()
}

// tableProvider matches requested tags against a fixed table set with
// golang.org/x/text language matching, so "en-US" and "en-GB" both land on
// the "en" table when no regional table exists.
type tableProvider struct {
	locales []string
	names   map[string]LocaleNames
	matcher language.Matcher
}

func newTableProvider(names map[string]LocaleNames) (*tableProvider, error) {
	locales := make([]string, 0, len(names))
	for tag := range names {
		locales = append(locales, tag)
	}
	sort.Strings(locales)

	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("%w: bad tag %q: %v", ErrInvalidLocaleFile, l, err)
		}
		tags = append(tags, tag)
	}

	return &tableProvider{
		locales: locales,
		names:   names,
		matcher: language.NewMatcher(tags),
	}, nil
}

func (p *tableProvider) Names(locale string) (LocaleNames, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return LocaleNames{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	_, idx, conf := p.matcher.Match(tag)
	if conf == language.No {
		return LocaleNames{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	return p.names[p.locales[idx]], nil
}

func (p *tableProvider) Locales() []string {
	out := make([]string, len(p.locales))
	copy(out, p.locales)
	return out
}

// localeFile is the YAML schema of one locale table.
type localeFile struct {
	Weekdays struct {
		Long  []string `yaml:"long"`
		Short []string `yaml:"short"`
	} `yaml:"weekdays"`
	Months struct {
		Long  []string `yaml:"long"`
		Short []string `yaml:"short"`
	} `yaml:"months"`
	DayPeriods struct {
		AM string `yaml:"am"`
		PM string `yaml:"pm"`
	} `yaml:"dayperiods"`
}

// LoadLocales reads locale name tables from YAML files in fsys and returns a
// provider over them. Each file holds one locale and is named by its tag:
// en.yaml, de.yaml, pt-BR.yaml. Files must list seven weekday and twelve
// month names in both long and short form.
func LoadLocales(fsys fs.FS) (LocaleProvider, error) {
	names := make(map[string]LocaleNames)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var lf localeFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return fmt.Errorf("%w: parsing %q: %v", ErrInvalidLocaleFile, filePath, err)
		}

		ln, err := lf.names()
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidLocaleFile, filePath, err)
		}

		tag := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		names[tag] = ln
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no locale files found", ErrInvalidLocaleFile)
	}

	return newTableProvider(names)
}

func (lf localeFile) names() (LocaleNames, error) {
	var ln LocaleNames

	if len(lf.Weekdays.Long) != 7 || len(lf.Weekdays.Short) != 7 {
		return ln, fmt.Errorf("expected 7 weekday names, got %d long / %d short",
			len(lf.Weekdays.Long), len(lf.Weekdays.Short))
	}
	if len(lf.Months.Long) != 12 || len(lf.Months.Short) != 12 {
		return ln, fmt.Errorf("expected 12 month names, got %d long / %d short",
			len(lf.Months.Long), len(lf.Months.Short))
	}
	if lf.DayPeriods.AM == "" || lf.DayPeriods.PM == "" {
		return ln, fmt.Errorf("missing day-period names")
	}

	copy(ln.WeekdaysLong[:], lf.Weekdays.Long)
	copy(ln.WeekdaysShort[:], lf.Weekdays.Short)
	copy(ln.MonthsLong[:], lf.Months.Long)
	copy(ln.MonthsShort[:], lf.Months.Short)
	ln.AM = lf.DayPeriods.AM
	ln.PM = lf.DayPeriods.PM

	return ln, nil
}
