// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BusPinName returns the pin name for the i-th pin of the given bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// ParseIOSpec parses the pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIOSpec(spec string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		name, size := item, 0
		if i := strings.IndexByte(item, '['); i >= 0 {
			if !strings.HasSuffix(item, "]") {
				return nil, parseError(spec, "missing close bracket in "+item)
			}
			n, err := strconv.Atoi(item[i+1 : len(item)-1])
			if err != nil || n <= 0 {
				return nil, parseError(spec, "invalid bus size in "+item)
			}
			name, size = item[:i], n
		}
		if !isIdent(name) {
			return nil, parseError(spec, "expected pin name, got "+strconv.Quote(item))
		}
		var pins []string
		if size == 0 {
			pins = []string{name}
		} else {
			for i := 0; i < size; i++ {
				pins = append(pins, BusPinName(name, i))
			}
		}
		for _, p := range pins {
			if seen[p] {
				return nil, parseError(spec, "duplicate pin name "+p)
			}
			seen[p] = true
			out = append(out, p)
		}
	}

	return out, nil
}

// ParseConnections parses a connection configuration like "a=x, b=y" into a
// map of part pin names to wire names.
//
// Bus ranges are expanded pin by pin: "out[0..3]=in[4..7]" connects out[0] to
// in[4], out[1] to in[5] and so on. Both sides of a range connection must have
// the same length. A pin can only be connected to a single wire.
//
func ParseConnections(c string) (map[string]string, error) {
	conns := make(map[string]string)
	if strings.TrimSpace(c) == "" {
		return conns, nil
	}
	for _, item := range strings.Split(c, ",") {
		kv := strings.Split(item, "=")
		if len(kv) != 2 {
			return nil, parseError(c, "expected pin=wire, got "+strconv.Quote(strings.TrimSpace(item)))
		}
		k, v := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if k == "" || v == "" {
			return nil, parseError(c, "invalid pin mapping "+k+"="+v)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand pin "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand wire "+v)
		}
		if len(ks) != len(vs) {
			return nil, parseError(c, "pin count mismatch in pin mapping "+k+"="+v)
		}
		for i := range ks {
			if _, ok := conns[ks[i]]; ok {
				return nil, parseError(c, "pin "+ks[i]+" connected more than once")
			}
			conns[ks[i]] = vs[i]
		}
	}
	return conns, nil
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func parseError(in string, msg string) error {
	return errors.Errorf("in %q: %s", in, msg)
}
