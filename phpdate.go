package phpdate

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when no option overrides them.
const (
	DefaultTimezone = "America/New_York"
	DefaultLocale   = "en-US"
)

// Formatter renders timestamps with PHP date() templates for one fixed
// timezone and locale. It is immutable after creation and safe for
// concurrent use; all per-call state lives on the stack of Format.
type Formatter struct {
	timezone string
	locale   string
	provider LocaleProvider

	loc   *time.Location
	names LocaleNames
}

// Option configures a Formatter during construction.
type Option func(*Formatter) error

// WithTimezone sets the IANA timezone identifier, e.g. "Europe/Berlin".
func WithTimezone(id string) Option {
	return func(f *Formatter) error {
		f.timezone = id
		return nil
	}
}

// WithLocale sets the BCP 47 locale tag used for textual specifiers,
// e.g. "de-DE". The tag is matched against the provider's locales with
// language fallback.
func WithLocale(tag string) Option {
	return func(f *Formatter) error {
		f.locale = tag
		return nil
	}
}

// WithProvider replaces the built-in locale provider.
func WithProvider(p LocaleProvider) Option {
	return func(f *Formatter) error {
		if p == nil {
			return fmt.Errorf("%w: nil provider", ErrUnknownLocale)
		}
		f.provider = p
		return nil
	}
}

// WithProviderFS loads locale name tables from YAML files in fsys and uses
// them as the provider. File convention: {tag}.yaml, e.g. en.yaml, pt-BR.yaml.
func WithProviderFS(fsys fs.FS) Option {
	return func(f *Formatter) error {
		p, err := LoadLocales(fsys)
		if err != nil {
			return err
		}
		f.provider = p
		return nil
	}
}

// New creates a Formatter with the given options. The timezone is resolved
// against the platform timezone database and the locale against the provider's
// tables here, so a successfully constructed Formatter cannot fail to format.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		timezone: DefaultTimezone,
		locale:   DefaultLocale,
		provider: DefaultProvider(),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, f.timezone)
	}
	f.loc = loc

	names, err := f.provider.Names(f.locale)
	if err != nil {
		return nil, err
	}
	f.names = names

	return f, nil
}

// Format renders t with the given template. Unrecognized template characters
// pass through literally; a backslash escapes the following character.
func (f *Formatter) Format(t time.Time, template string) string {
	zoned := t.In(f.loc)
	r := &render{
		instant:  t,
		zoned:    zoned,
		local:    projectLocal(zoned),
		timezone: f.timezone,
		names:    f.names,
		memo:     make(map[byte]string, len(template)),
	}
	return r.process(template)
}

// FormatString coerces value into an instant with ParseInstant and formats it.
func (f *Formatter) FormatString(value, template string) (string, error) {
	t, err := ParseInstant(value)
	if err != nil {
		return "", err
	}
	return f.Format(t, template), nil
}

// FormatUnixMilli formats an epoch-milliseconds instant.
func (f *Formatter) FormatUnixMilli(ms int64, template string) string {
	return f.Format(time.UnixMilli(ms), template)
}

// Timezone returns the configured IANA timezone identifier.
func (f *Formatter) Timezone() string { return f.timezone }

// Locale returns the configured locale tag.
func (f *Formatter) Locale() string { return f.locale }

// Format renders t with a one-shot Formatter built from opts.
func Format(t time.Time, template string, opts ...Option) (string, error) {
	f, err := New(opts...)
	if err != nil {
		return "", err
	}
	return f.Format(t, template), nil
}

// instantLayouts are tried in order by ParseInstant after the epoch-millis
// fast path. Layouts without a zone designator are read as UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant converts a string into an absolute instant. It accepts epoch
// milliseconds as a decimal integer, RFC 3339, and common ISO 8601 variants,
// and fails with ErrInvalidInstant for anything else.
func ParseInstant(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}

	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, value)
}
