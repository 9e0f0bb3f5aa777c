package opts

import (
	"os"
	"sort"
	"strings"

	"github.com/amterp/color"
)

const (
	optionLongest = 30
	descGap       = 2
)

var (
	headerStyle = color.New(color.Bold)
	optionStyle = color.New(color.FgGreen)
	argStyle    = color.New(color.FgCyan)
)

// initializeColorFromEnv lets OPTS_COLOR=always|never override the tty
// detection the color package does on its own.
func initializeColorFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OPTS_COLOR"))) {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// helpOption is the snapshot of one option taken at Add time, everything
// the renderer needs without reaching back into the registry.
type helpOption struct {
	short        string
	long         string
	desc         string
	argHelp      string
	defaultText  string
	implicitText string
	envVar       string
	hasDefault   bool
	hasImplicit  bool
	hasEnv       bool
	isBoolean    bool
	isContainer  bool
}

type helpGroup struct {
	options []helpOption
}

// Groups returns the help group names, the unnamed group first.
func (o *Options) Groups() []string {
	names := make([]string, 0, len(o.help))
	for g := range o.help {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// Help renders the usage text. With no arguments every group is printed;
// otherwise only the named groups, in the given order.
func (o *Options) Help(groups ...string) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString("Usage:\n  " + o.program)
	if o.customHelp != "" {
		sb.WriteString(" " + o.customHelp)
	}
	if len(o.positional) > 0 && o.positionalHelp != "" {
		sb.WriteString(" " + o.positionalHelp)
	}
	sb.WriteString("\n\n")
	if o.description != "" {
		sb.WriteString(o.description + "\n\n")
	}

	if len(groups) == 0 {
		groups = o.Groups()
	}
	for _, g := range groups {
		o.helpOneGroup(&sb, g)
	}
	return sb.String()
}

func (o *Options) helpOneGroup(sb *strings.Builder, group string) {
	g := o.help[group]
	if g == nil || len(g.options) == 0 {
		return
	}

	type row struct {
		text  string
		width int
		opt   helpOption
	}
	var rows []row
	longest := 0
	for _, opt := range g.options {
		// Positional-plan options are implementation detail unless the
		// caller asked to show them.
		if !o.showPositional && (o.positionalSet[opt.long] || o.positionalSet[opt.short]) {
			continue
		}
		text, width := formatOption(opt)
		if width > longest {
			longest = width
		}
		rows = append(rows, row{text: text, width: width, opt: opt})
	}
	if len(rows) == 0 {
		return
	}
	if longest > optionLongest {
		longest = optionLongest
	}

	if group != "" {
		sb.WriteString(" " + headerStyle.Sprint(group) + " options:\n")
	}
	start := longest + descGap
	allowed := o.width - start
	for _, r := range rows {
		sb.WriteString(r.text)
		if r.width > longest {
			sb.WriteString("\n" + strings.Repeat(" ", start))
		} else {
			sb.WriteString(strings.Repeat(" ", start-r.width))
		}
		sb.WriteString(formatDescription(r.opt, start, allowed, o.tabExpansion))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// formatOption builds the left column. The returned width is the visible
// width, excluding any color escapes.
func formatOption(o helpOption) (string, int) {
	var sb strings.Builder
	width := 0

	sb.WriteString("  ")
	width += 2
	if o.short != "" {
		sb.WriteString(optionStyle.Sprint("-" + o.short))
		width += 2
		if o.long != "" {
			sb.WriteString(", ")
			width += 2
		}
	} else {
		sb.WriteString("    ")
		width += 4
	}
	if o.long != "" {
		sb.WriteString(optionStyle.Sprint("--" + o.long))
		width += 2 + len(o.long)
	}

	if !o.isBoolean {
		arg := o.argHelp
		if arg == "" {
			arg = "arg"
		}
		if o.hasImplicit {
			sb.WriteString(" [=" + argStyle.Sprint(arg) + "(=" + o.implicitText + ")]")
			width += 3 + len(arg) + 2 + len(o.implicitText) + 2
		} else {
			sb.WriteString(" " + argStyle.Sprint(arg))
			width += 1 + len(arg)
		}
	}
	return sb.String(), width
}

// formatDescription builds the right column: the description plus default
// and env annotations, wrapped to the allowed width and indented to start
// on continuation lines.
func formatDescription(o helpOption, start, allowed int, tabExpand bool) string {
	desc := o.desc
	if o.hasDefault && !(o.isBoolean && o.defaultText == "false") {
		if desc != "" {
			desc += " "
		}
		desc += "(default: " + o.defaultText + ")"
	}
	if o.hasEnv {
		if desc != "" {
			desc += " "
		}
		desc += "(env: $" + o.envVar + ")"
	}
	if tabExpand {
		desc = expandTabs(desc)
	}
	return wrapText(desc, start, allowed)
}

// expandTabs replaces tabs with spaces up to the next multiple-of-8
// column, tracking columns per line.
func expandTabs(text string) string {
	var sb strings.Builder
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			n := 8 - col%8
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune('\n')
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// wrapText word-wraps to the allowed width. Explicit newlines force a
// break; continuation lines are indented to the description column.
func wrapText(text string, indent, allowed int) string {
	if allowed <= 0 {
		return text
	}
	pad := strings.Repeat(" ", indent)
	var sb strings.Builder
	for li, line := range strings.Split(text, "\n") {
		if li > 0 {
			sb.WriteString("\n" + pad)
		}
		col := 0
		for _, word := range strings.Fields(line) {
			switch {
			case col == 0:
				sb.WriteString(word)
				col = len(word)
			case col+1+len(word) > allowed:
				sb.WriteString("\n" + pad + word)
				col = len(word)
			default:
				sb.WriteString(" " + word)
				col += 1 + len(word)
			}
		}
	}
	return sb.String()
}
