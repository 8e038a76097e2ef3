package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector prefixes understood by Select.
const (
	UUIDPrefix = "uuid:"
	NamePrefix = "name:"
)

// Select resolves a display selector against an enumeration. Accepted forms
// are a 1-based index ("2"), "uuid:<UUID>" and "name:<substring>".
func Select(selector string, displays []DisplayInfo) (DisplayInfo, error) {
	selector = strings.TrimSpace(selector)

	if idx, err := strconv.ParseUint(selector, 10, 32); err == nil {
		if idx == 0 {
			return DisplayInfo{}, fmt.Errorf("display selector must be >= 1")
		}
		for _, d := range displays {
			if uint64(d.Index) == idx {
				return d, nil
			}
		}
		return DisplayInfo{}, fmt.Errorf("%w: display %d out of range. Available:\n%s", ErrNotFound, idx, FormatDisplays(displays))
	}

	if rest, ok := cutPrefixFold(selector, UUIDPrefix); ok {
		want := strings.TrimSpace(rest)
		if want == "" {
			return DisplayInfo{}, fmt.Errorf("display selector %q requires a UUID", selector)
		}
		for _, d := range displays {
			if d.SystemUUID != "" && strings.EqualFold(d.SystemUUID, want) {
				return d, nil
			}
		}
		return DisplayInfo{}, fmt.Errorf("%w: no display with UUID %s. Available:\n%s", ErrNotFound, want, FormatDisplays(displays))
	}

	if rest, ok := cutPrefixFold(selector, NamePrefix); ok {
		needle := strings.ToLower(strings.TrimSpace(rest))
		if needle == "" {
			return DisplayInfo{}, fmt.Errorf("display selector %q requires a non-empty substring", selector)
		}
		var matches []DisplayInfo
		for _, d := range displays {
			if d.ProductName != "" && strings.Contains(strings.ToLower(d.ProductName), needle) {
				matches = append(matches, d)
			}
		}
		switch len(matches) {
		case 0:
			return DisplayInfo{}, fmt.Errorf("%w: selector %q. Available:\n%s", ErrNotFound, selector, FormatDisplays(displays))
		case 1:
			return matches[0], nil
		default:
			return DisplayInfo{}, fmt.Errorf("%w: %q matches:\n%s\n\nUse --display <index> from `list`, or a more specific name:<substring>",
				ErrAmbiguous, selector, FormatDisplays(matches))
		}
	}

	return DisplayInfo{}, fmt.Errorf("invalid display selector %q: expected a 1-based index, uuid:<UUID> or name:<substring>", selector)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
