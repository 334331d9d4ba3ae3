package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// inches is a flag value holding a length in inches. It accepts decimals
// and mixed fractions: "1.125", "3/4", "6-5/8" and "6 5/8".
type inches float64

func (in *inches) String() string { return strconv.FormatFloat(float64(*in), 'g', -1, 64) }

func (in *inches) Type() string { return "inches" }

func (in *inches) Set(s string) error {
	v, err := parseInches(s)
	if err != nil {
		return err
	}
	*in = inches(v)
	return nil
}

func parseInches(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "\"")
	whole, frac := s, ""
	if i := strings.IndexAny(s, "- "); i > 0 {
		whole, frac = s[:i], strings.TrimSpace(s[i+1:])
		if frac == "" {
			return 0, fmt.Errorf("bad length %q: missing fraction", s)
		}
	} else if strings.Contains(s, "/") {
		whole, frac = "0", s
	}
	v, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, fmt.Errorf("bad length %q: %w", s, err)
	}
	if frac == "" {
		return v, nil
	}
	nd := strings.SplitN(frac, "/", 2)
	if len(nd) != 2 {
		return 0, fmt.Errorf("bad fraction in %q", s)
	}
	n, err := strconv.ParseFloat(nd[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad fraction in %q: %w", s, err)
	}
	d, err := strconv.ParseFloat(nd[1], 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("bad fraction denominator in %q", s)
	}
	return v + n/d, nil
}

// parseLayer parses "diameter,height,wall".
func parseLayer(s string) (d, h, w float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("layer %q: want diameter,height,wall", s)
	}
	var v [3]float64
	for i, p := range parts {
		v[i], err = parseInches(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("layer %q: %w", s, err)
		}
	}
	return v[0], v[1], v[2], nil
}
