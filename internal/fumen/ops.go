package fumen

import "fmt"

// Glue concatenates the pages of N input fumen codes into a single
// multi-page fumen.
func Glue(codes []string) (string, error) {
	var all Grid
	for i, c := range codes {
		g, err := Decode(c)
		if err != nil {
			return "", fmt.Errorf("fumen: glue: input %d: %w", i, err)
		}
		all = append(all, g...)
	}
	return Encode(all)
}

// Optimize re-encodes a fumen, choosing the shortest legal per-page
// encoding.
func Optimize(code string) (string, error) {
	g, err := Decode(code)
	if err != nil {
		return "", fmt.Errorf("fumen: optimize: %w", err)
	}
	return EncodeOptimized(g)
}
