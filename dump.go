package main

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/ledanim/config"
	tp "github.com/xlab/treeprint"
)

// dumpPlaylist renders the configured animations as a tree.
func dumpPlaylist(cfg config.Config) string {
	printer := tp.New()
	for _, a := range cfg.Animations {
		easing := a.Easing
		if easing == "" {
			easing = "easeNone"
		}
		branch := printer.AddBranch(fmt.Sprintf("%s (%s, %s)", a.Name, a.Duration(), easing))
		names := make([]string, 0, len(a.Properties))
		for name := range a.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			branch.AddNode(name + describeTween(a.Properties[name]))
		}
	}
	return printer.String()
}

func describeTween(p config.Tween) string {
	var s string
	if len(p.From) > 0 {
		s += fmt.Sprintf(" from %v", p.From)
	}
	switch {
	case len(p.To) > 0:
		s += fmt.Sprintf(" to %v", p.To)
	case len(p.By) > 0:
		s += fmt.Sprintf(" by %v", p.By)
	default:
		s += " (ignored)"
	}
	if p.Unit != nil {
		s += fmt.Sprintf(" unit %q", *p.Unit)
	}
	return s
}
