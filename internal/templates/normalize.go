package templates

import "strings"

// Normalize is the post-processing pass over emitted wrapper source: trailing
// whitespace stripped per line, runs of blank lines collapsed to one, exactly
// one trailing newline. The output is byte-stable, so re-running the pipeline
// on the same input reproduces the file byte for byte.
func Normalize(source string) string {
	lines := strings.Split(source, "\n")

	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}

	// Drop leading and trailing blank lines before pinning the final newline.
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n"
}
