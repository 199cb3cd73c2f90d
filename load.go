package cursors

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Loader errors.
var (
	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("cursors: unsupported config format")

	// ErrInvalidConfig is returned when a config document has a field of
	// the wrong type or an unknown enumeration value.
	ErrInvalidConfig = errors.New("cursors: invalid config")
)

// Format is a config file format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FileConfig is the content of a config file: the initial cursors and the
// plot options.
type FileConfig struct {
	Cursors []Config
	Options []PlotOption
}

// PlotOptions returns the file's options followed by WithCursors.
func (f *FileConfig) PlotOptions() []PlotOption {
	opts := append([]PlotOption(nil), f.Options...)
	return append(opts, WithCursors(f.Cursors...))
}

// LoadConfigFile reads a YAML or TOML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cursors: reading config file %s: %w", path, err)
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes a config document.
//
// The document has optional plot keys (grabMargin, symbolSize,
// labelPadding, hitPriority, language, thumbs) and a "cursors" list whose
// entries use the same keys as Config fields in lower camel case. Unknown
// keys are ignored.
func ParseConfig(data []byte, format Format) (*FileConfig, error) {
	var doc map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return decodeDocument(doc)
}

func decodeDocument(doc map[string]any) (*FileConfig, error) {
	out := &FileConfig{}
	for _, key := range sortedKeys(doc) {
		v := doc[key]
		var err error
		switch key {
		case "cursors":
			out.Cursors, err = decodeCursors(v)
		case "grabMargin":
			err = decodeFloatOption(v, key, WithGrabMargin, out)
		case "symbolSize":
			err = decodeFloatOption(v, key, WithSymbolSize, out)
		case "labelPadding":
			err = decodeFloatOption(v, key, WithLabelPadding, out)
		case "thumbRadius":
			err = decodeFloatOption(v, key, WithThumbRadius, out)
		case "hitPriority":
			var s string
			if s, err = asString(v, key); err == nil {
				switch s {
				case "last-match", "lastMatch":
					out.Options = append(out.Options, WithHitPriority(PriorityLastMatch))
				case "ordered":
					out.Options = append(out.Options, WithHitPriority(PriorityOrdered))
				default:
					err = fmt.Errorf("%w: hitPriority %q", ErrInvalidConfig, s)
				}
			}
		case "language":
			var s string
			if s, err = asString(v, key); err == nil {
				var tag language.Tag
				if tag, err = language.Parse(s); err != nil {
					err = fmt.Errorf("%w: language %q: %w", ErrInvalidConfig, s, err)
				} else {
					out.Options = append(out.Options, WithLanguage(tag))
				}
			}
		case "thumbs":
			var s string
			if s, err = asString(v, key); err == nil && s != "" {
				out.Options = append(out.Options, WithThumbs(s))
			}
		default:
			Logger().Debug("cursors: ignoring unknown config key", "key", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeFloatOption(v any, key string, opt func(float64) PlotOption, out *FileConfig) error {
	f, err := asFloat(v, key)
	if err != nil {
		return err
	}
	out.Options = append(out.Options, opt(f))
	return nil
}

func decodeCursors(v any) ([]Config, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: cursors must be a list, got %T", ErrInvalidConfig, v)
	}
	cfgs := make([]Config, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: cursors[%d] must be a table, got %T", ErrInvalidConfig, i, item)
		}
		cfg, err := decodeCursor(m)
		if err != nil {
			return nil, fmt.Errorf("cursors[%d]: %w", i, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func decodeCursor(m map[string]any) (Config, error) {
	var opts []Option
	for _, key := range sortedKeys(m) {
		v := m[key]
		opt, err := decodeCursorField(key, v)
		if err != nil {
			Logger().Warn("cursors: config field rejected", "key", key, "err", err)
			return Config{}, err
		}
		if opt != nil {
			opts = append(opts, opt)
		}
	}
	return NewConfig(opts...), nil
}

func decodeCursorField(key string, v any) (Option, error) {
	switch key {
	case "name":
		s, err := asString(v, key)
		return WithName(s), err
	case "mode":
		s, err := asString(v, key)
		if err != nil {
			return nil, err
		}
		if m := Mode(s); m.Valid() {
			return WithMode(m), nil
		}
		return nil, fmt.Errorf("%w: mode %q", ErrInvalidConfig, s)
	case "position":
		p, err := decodePosition(v)
		return WithPosition(p), err
	case "color":
		s, err := asString(v, key)
		return WithColor(s), err
	case "lineWidth":
		f, err := asFloat(v, key)
		return WithLineWidth(f), err
	case "dashes":
		n, err := asInt(v, key)
		return WithDashes(n), err
	case "symbol":
		s, err := asString(v, key)
		return WithSymbol(s), err
	case "fontSize":
		f, err := asFloat(v, key)
		return WithFontSize(f), err
	case "fontFamily":
		s, err := asString(v, key)
		return WithFontFamily(s), err
	case "intersectionColor":
		s, err := asString(v, key)
		return WithIntersectionColor(s), err
	case "intersectionLabelPosition":
		s, err := asString(v, key)
		if err != nil {
			return nil, err
		}
		if p := LabelPosition(s); p.Valid() {
			return WithIntersectionLabelPosition(p), nil
		}
		return nil, fmt.Errorf("%w: intersectionLabelPosition %q", ErrInvalidConfig, s)
	case "movable":
		b, err := asBool(v, key)
		return WithMovable(b), err
	case "mouseButton":
		s, err := asString(v, key)
		if err != nil {
			return nil, err
		}
		switch b := MouseButton(s); b {
		case ButtonAll, ButtonLeft, ButtonMiddle, ButtonRight:
			return WithMouseButton(b), nil
		}
		return nil, fmt.Errorf("%w: mouseButton %q", ErrInvalidConfig, s)
	case "show":
		b, err := asBool(v, key)
		return WithShow(b), err
	case "showIntersections":
		s, err := decodeSelection(v)
		return WithShowIntersections(s), err
	case "showThumbs":
		b, err := asBool(v, key)
		return WithShowThumbs(b), err
	case "showLabel":
		b, err := asBool(v, key)
		return WithShowLabel(b), err
	case "showValuesRelativeToSeries":
		n, err := asInt(v, key)
		return WithValuesRelativeToSeries(n), err
	case "snapToPlot":
		if s, ok := v.(string); ok {
			if s == "any" {
				return WithSnapToPlot(SnapAny), nil
			}
			return nil, fmt.Errorf("%w: snapToPlot %q", ErrInvalidConfig, s)
		}
		n, err := asInt(v, key)
		return WithSnapToPlot(n), err
	default:
		Logger().Debug("cursors: ignoring unknown cursor key", "key", key)
		return nil, nil
	}
}

// decodePosition reads relativeX/relativeY and data keys x, y, x2, y2, ...
// When several data axes are given the lowest numbered one wins.
func decodePosition(v any) (*Position, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: position must be a table, got %T", ErrInvalidConfig, v)
	}
	p := &Position{}
	for _, key := range sortedKeys(m) {
		f, err := asFloat(m[key], "position."+key)
		if err != nil {
			return nil, err
		}
		switch key {
		case "relativeX":
			p.setRelativeX(f)
			continue
		case "relativeY":
			p.setRelativeY(f)
			continue
		}
		dir, n, ok := parseAxisKey(key)
		if !ok {
			Logger().Debug("cursors: ignoring unknown position key", "key", key)
			continue
		}
		av := &AxisValue{Axis: n, Value: f}
		if dir == 'x' && (p.X == nil || n < p.X.Axis) {
			p.X = av
		}
		if dir == 'y' && (p.Y == nil || n < p.Y.Axis) {
			p.Y = av
		}
	}
	return p, nil
}

// parseAxisKey splits "x", "y2", ... into a direction and an axis number.
func parseAxisKey(key string) (dir byte, n int, ok bool) {
	if key == "" || (key[0] != 'x' && key[0] != 'y') {
		return 0, 0, false
	}
	if len(key) == 1 {
		return key[0], 1, true
	}
	n, err := strconv.Atoi(key[1:])
	if err != nil || n < 1 {
		return 0, 0, false
	}
	return key[0], n, true
}

func decodeSelection(v any) (Selection, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return ShowAll(), nil
		}
		return ShowNone(), nil
	case []any:
		idx := make([]int, 0, len(t))
		for i, item := range t {
			n, err := asInt(item, fmt.Sprintf("showIntersections[%d]", i))
			if err != nil {
				return Selection{}, err
			}
			idx = append(idx, n)
		}
		return ShowSeries(idx...), nil
	default:
		return Selection{}, fmt.Errorf("%w: showIntersections must be a bool or list, got %T", ErrInvalidConfig, v)
	}
}

func asString(v any, key string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidConfig, key, v)
	}
	return s, nil
}

func asBool(v any, key string) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidConfig, key, v)
	}
	return b, nil
}

// asFloat accepts the numeric types produced by both YAML and TOML decoders.
func asFloat(v any, key string) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidConfig, key, v)
	}
}

func asInt(v any, key string) (int, error) {
	f, err := asFloat(v, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidConfig, key, v)
	}
	return int(f), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
