package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/monitorctl/monitorctl/internal/models"
	"github.com/monitorctl/monitorctl/internal/platform"
)

// DefaultSelector is used when nothing else picks a display.
const DefaultSelector = "1"

// Resolve combines the config, the current displays and an optional explicit
// selector into the display to drive and the presets available for it.
//
// The explicit selector wins, then default_display, then the first monitor
// rule (in file order) that matches a display, then DefaultSelector. Rule
// inputs are layered over the global inputs. Resolve has no side effects.
func Resolve(cfg *models.Config, displays []platform.DisplayInfo, explicit string) models.ResolvedConfig {
	resolved := models.ResolvedConfig{
		DisplaySelector: explicit,
		Inputs:          map[string]uint16{},
	}

	if cfg == nil {
		if resolved.DisplaySelector == "" {
			resolved.DisplaySelector = DefaultSelector
		}
		return resolved
	}

	for name, value := range cfg.Inputs {
		resolved.Inputs[name] = value
	}
	if resolved.DisplaySelector == "" && cfg.DefaultDisplay != nil {
		resolved.DisplaySelector = *cfg.DefaultDisplay
	}

	if resolved.DisplaySelector == "" {
		for _, rule := range cfg.Monitors {
			d, ok := matchDisplay(rule.Match, displays)
			if !ok {
				continue
			}

			if rule.Display != nil {
				resolved.DisplaySelector = *rule.Display
			} else {
				resolved.DisplaySelector = SelectorFor(d)
			}
			for name, value := range rule.Inputs {
				resolved.Inputs[name] = value
			}
			break
		}
	}

	if resolved.DisplaySelector == "" {
		resolved.DisplaySelector = DefaultSelector
	}
	return resolved
}

// NeedsDisplays reports whether Resolve would consult the display list, so
// callers can skip a potentially slow enumeration.
func NeedsDisplays(cfg *models.Config, explicit string) bool {
	if explicit != "" || cfg == nil || len(cfg.Monitors) == 0 {
		return false
	}
	return cfg.DefaultDisplay == nil || *cfg.DefaultDisplay == ""
}

func matchDisplay(m models.MonitorMatch, displays []platform.DisplayInfo) (platform.DisplayInfo, bool) {
	if m.Index != nil {
		for _, d := range displays {
			if d.Index == *m.Index {
				return d, true
			}
		}
		return platform.DisplayInfo{}, false
	}

	if m.Contains == nil {
		return platform.DisplayInfo{}, false
	}
	needle := strings.ToLower(*m.Contains)
	for _, d := range displays {
		if d.ProductName != "" && strings.Contains(strings.ToLower(d.ProductName), needle) {
			return d, true
		}
	}
	return platform.DisplayInfo{}, false
}

// SelectorFor returns "uuid:<UUID>" when the display has one, otherwise its index.
func SelectorFor(d platform.DisplayInfo) string {
	if d.SystemUUID != "" {
		return platform.UUIDPrefix + d.SystemUUID
	}
	return strconv.FormatUint(uint64(d.Index), 10)
}

// DefaultInputs are offered when the config defines no presets.
var DefaultInputs = map[string]uint16{
	"dp1":   15,
	"usb_c": 26,
}

// EffectiveInputs returns inputs, or DefaultInputs when inputs is empty.
// The CLI and the tray menu both go through it so they accept the same names.
func EffectiveInputs(inputs map[string]uint16) map[string]uint16 {
	if len(inputs) == 0 {
		return DefaultInputs
	}
	return inputs
}

// ParseInputValue turns a raw number or a preset name into a VCP 0x60 value.
// Numbers take priority over preset names.
func ParseInputValue(value string, resolved models.ResolvedConfig) (uint16, error) {
	if v, err := strconv.ParseUint(value, 10, 16); err == nil {
		return uint16(v), nil
	}
	inputs := EffectiveInputs(resolved.Inputs)
	if v, ok := inputs[value]; ok {
		return v, nil
	}

	known := PresetNames(inputs)
	hint := "Known presets: " + strings.Join(known, ", ")
	if len(resolved.Inputs) == 0 {
		hint += " (built-in defaults)"
	}
	if s := suggest(value, known); s != "" {
		hint += fmt.Sprintf(". Did you mean %q?", s)
	}
	return 0, fmt.Errorf("invalid input value %q: expected a number or a configured preset name. %s", value, hint)
}

// PresetNames returns the preset names in lexicographic order.
func PresetNames(inputs map[string]uint16) []string {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func suggest(value string, known []string) string {
	if ranks := fuzzy.RankFindNormalizedFold(value, known); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", 3
	for _, name := range known {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(value), strings.ToLower(name)); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
