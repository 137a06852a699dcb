package main

import (
	"slices"
	"strings"
)

const (
	searchCommand     = "search"
	dumpconfigCommand = "dumpconfig"
	logFlag           = "log"
)

var (
	// commands besides search, including built-in help
	otherCommands = []string{dumpconfigCommand, "help", "h"}
	// global flags which take value as separate argument
	valuedGlobals = []string{"-c", "--c", "-config", "--config"}
	globalFlags   = []string{"c", "config", "d", "debug", "h", "help", "v", "version"}
)

func isGlobalFlag(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return false
	}
	name, _, _ := strings.Cut(strings.TrimLeft(tok, "-"), "=")
	return slices.Contains(globalFlags, name)
}

// normalizeArgs rearranges search command arguments so regions on minus strand
// ("-chr1:10-20") are not taken for flags. When command line starts with a
// region instead of a command, search is assumed. After search command only
// tokens starting with "--" (and "-h") are flags, everything else is a region.
// Flags are moved ahead and regions are put after "--" terminator.
func normalizeArgs(args []string) []string {
	pos := -1
	for i := 1; i < len(args); i++ {
		tok := args[i]
		if slices.Contains(valuedGlobals, tok) {
			i++
			continue
		}
		if isGlobalFlag(tok) {
			continue
		}
		switch {
		case tok == searchCommand:
			pos = i
		case slices.Contains(otherCommands, tok):
		default:
			args = slices.Concat(args[:i], []string{searchCommand}, args[i:])
			pos = i
		}
		break
	}
	if pos < 0 {
		return args
	}

	var flags, regions []string
	rest := args[pos+1:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		switch {
		case tok == "--":
			regions = append(regions, rest[i+1:]...)
			i = len(rest)
		case tok == "-h" || strings.HasPrefix(tok, "--"):
			flags = append(flags, tok)
			if tok == "--"+logFlag && i+1 < len(rest) {
				i++
				flags = append(flags, rest[i])
			}
		default:
			regions = append(regions, tok)
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[:pos+1]...)
	out = append(out, flags...)
	if len(regions) > 0 {
		out = append(out, "--")
		out = append(out, regions...)
	}
	return out
}

// stdoutTaken reports whether command (first of args) writes its output to
// stdout.
func stdoutTaken(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case searchCommand:
		return true
	case dumpconfigCommand:
		// without destination configuration goes to stdout
		return !slices.ContainsFunc(args[1:], func(a string) bool { return !strings.HasPrefix(a, "-") })
	}
	return false
}
