package opts

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	dumpHeader = color.New(color.FgGreen, color.Bold)
	dumpValue  = color.New(color.Bold)
	dumpUnset  = color.New(color.FgCyan)
)

// DumpSpec renders the full specification and parsing context as text,
// for debugging and golden tests. Nothing is parsed; argv is only echoed.
func (o *Options) DumpSpec(argv []string, popts ...ParseOpt) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Options Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(o.dumpParseConfigSection(popts...))
	sb.WriteString(o.dumpSpecInfoSection())
	sb.WriteString(dumpArgumentsSection(argv))
	sb.WriteString(o.dumpEntriesSection())
	sb.WriteString(o.dumpPositionalSection())
	sb.WriteString(dumpEnvironmentSection())

	return sb.String()
}

func (o *Options) dumpParseConfigSection(popts ...ParseOpt) string {
	cfg := &parseCfg{}
	for _, opt := range popts {
		opt(cfg)
	}

	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Parse Configuration:") + "\n")
	if cfg.lookupEnv != nil {
		sb.WriteString("  Env Lookup: " + dumpValue.Sprint("custom") + "\n")
	} else {
		sb.WriteString("  Env Lookup: " + dumpUnset.Sprint("process environment") + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (o *Options) dumpSpecInfoSection() string {
	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Specification:") + "\n")

	sb.WriteString("  Program: " + dumpValue.Sprint(o.program) + "\n")
	if o.description != "" {
		sb.WriteString("  Description: " + dumpValue.Sprint(o.description) + "\n")
	} else {
		sb.WriteString("  Description: " + dumpUnset.Sprint("<not set>") + "\n")
	}
	sb.WriteString(fmt.Sprintf("  Allow Unrecognised: %s\n", dumpValue.Sprintf("%t", o.allowUnrecognised)))
	sb.WriteString(fmt.Sprintf("  Stop On Positional: %s\n", dumpValue.Sprintf("%t", o.stopOnPositional)))
	sb.WriteString(fmt.Sprintf("  Width: %s\n", dumpValue.Sprintf("%d", o.width)))
	sb.WriteString(fmt.Sprintf("  Tab Expansion: %s\n", dumpValue.Sprintf("%t", o.tabExpansion)))

	sb.WriteString("\n")
	return sb.String()
}

func dumpArgumentsSection(argv []string) string {
	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Arguments to Parse:") + "\n")
	if len(argv) == 0 {
		sb.WriteString("  " + dumpUnset.Sprint("<no arguments>") + "\n")
	} else {
		for i, arg := range argv {
			sb.WriteString(fmt.Sprintf("  [%d]: %s\n", i, dumpValue.Sprintf("%q", arg)))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (o *Options) dumpEntriesSection() string {
	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Registered Options:") + "\n")
	sb.WriteString(fmt.Sprintf("  Total: %s\n\n", dumpValue.Sprintf("%d", len(o.entries))))

	for _, d := range o.entries {
		sb.WriteString("  " + formatEntryForDump(d) + "\n")
	}
	if len(o.entries) > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatEntryForDump(d *optionDetails) string {
	var parts []string

	if d.short != "" && d.long != "" {
		parts = append(parts, fmt.Sprintf("%s (-%s)", dumpValue.Sprint(d.long), dumpValue.Sprint(d.short)))
	} else {
		parts = append(parts, dumpValue.Sprint(d.name()))
	}

	parts = append(parts, "type:"+dumpUnset.Sprint(d.value.typeName()))

	if d.value.IsBoolean() {
		parts = append(parts, "boolean")
	}
	if d.value.IsContainer() {
		parts = append(parts, "container")
	}
	if d.value.HasDefault() {
		parts = append(parts, fmt.Sprintf("default:%q", d.value.DefaultText()))
	}
	if d.value.HasImplicit() {
		parts = append(parts, fmt.Sprintf("implicit:%q", d.value.ImplicitText()))
	}
	if d.value.HasEnv() {
		parts = append(parts, "env:$"+d.value.EnvVar())
	}
	if d.desc != "" {
		parts = append(parts, fmt.Sprintf("desc:%q", d.desc))
	}

	return strings.Join(parts, " ")
}

func (o *Options) dumpPositionalSection() string {
	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Positional Plan:") + "\n")
	if len(o.positional) == 0 {
		sb.WriteString("  " + dumpUnset.Sprint("none") + "\n")
	} else {
		for i, name := range o.positional {
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, dumpValue.Sprint(name)))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func dumpEnvironmentSection() string {
	var sb strings.Builder
	sb.WriteString(dumpHeader.Sprint("Environment:") + "\n")
	optsColor := os.Getenv("OPTS_COLOR")
	if optsColor != "" {
		sb.WriteString("  OPTS_COLOR: " + dumpValue.Sprint(optsColor) + "\n")
	} else {
		sb.WriteString("  OPTS_COLOR: " + dumpUnset.Sprint("not set") + "\n")
	}
	return sb.String()
}
