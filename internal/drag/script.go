package drag

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// scriptEvent is one line of a recorded event script:
//
//	- {type: start, item: playlist-1}
//	- {type: hover, point: folder-1/insertion/1}
//	- {type: release, point: folder-1/insertion/1}
//	- {type: cancel}
//
// JSON arrays of the same objects are accepted too.
type scriptEvent struct {
	Type  string `yaml:"type"`
	Item  string `yaml:"item"`
	Point string `yaml:"point"`
}

func LoadScript(path string) ([]Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	evs, err := ParseScript(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return evs, nil
}

func ParseScript(b []byte) ([]Event, error) {
	var raw []scriptEvent
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse events: %w", err)
	}
	out := make([]Event, 0, len(raw))
	for i, r := range raw {
		switch strings.ToLower(strings.TrimSpace(r.Type)) {
		case "start":
			if strings.TrimSpace(r.Item) == "" {
				return nil, fmt.Errorf("event %d: start requires item", i)
			}
			out = append(out, DragStart{ItemID: strings.TrimSpace(r.Item)})
		case "hover", "over":
			out = append(out, DragHover{PointKey: r.Point})
		case "release", "drop", "end":
			out = append(out, DragRelease{PointKey: r.Point})
		case "cancel":
			out = append(out, DragCancel{})
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, r.Type)
		}
	}
	return out, nil
}
