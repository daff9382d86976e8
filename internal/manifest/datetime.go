package manifest

import (
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

// datetimeTexts maps the dotted path of every datetime leaf in the document
// to its verbatim source text. toml.Unmarshal decodes offset datetimes into
// time.Time, which forgets the author's spelling (a space instead of 'T',
// trailing fraction zeros), so a second pass over the raw bytes records the
// original text for each path.
func datetimeTexts(data []byte) map[string]string {
	texts := make(map[string]string)
	parser := &unstable.Parser{}
	parser.Reset(data)

	var prefix string
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			prefix = joinKey(expr.Key())
		case unstable.KeyValue:
			value := expr.Value()
			switch value.Kind {
			case unstable.DateTime, unstable.LocalDateTime, unstable.LocalDate, unstable.LocalTime:
				path := joinKey(expr.Key())
				if prefix != "" {
					path = prefix + "." + path
				}
				texts[path] = string(value.Data)
			}
		}
	}
	// The document already survived toml.Unmarshal; a parser error here
	// only means some paths went uncaptured and keep their formatted
	// rendering.
	return texts
}

func joinKey(it unstable.Iterator) string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}

// restoreDatetimeTexts rewrites every DatetimeValue in the manifest with
// the source text captured for its path.
func restoreDatetimeTexts(full *FullManifest, texts map[string]string) {
	if len(texts) == 0 {
		return
	}
	for _, target := range full.Targets {
		restoreGroup(target.DirectProperties, target.Identity.Name(), texts)
		for profile, group := range target.ProfileProperties {
			restoreGroup(group, target.Identity.Name()+"."+profile.Name(), texts)
		}
		for platform, group := range target.PlatformProperties {
			restoreGroup(group, target.Identity.Name()+"."+platform.Name(), texts)
		}
	}
}

func restoreGroup(group []FlatProperty, prefix string, texts map[string]string) {
	for i, p := range group {
		if _, ok := p.Value.(DatetimeValue); !ok {
			continue
		}
		if text, ok := texts[prefix+"."+p.Name]; ok {
			group[i].Value = DatetimeValue(text)
		}
	}
}
