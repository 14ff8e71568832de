package polaris

import "github.com/rs/zerolog"

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Filename is reported in error positions. Empty means no name.
	Filename string
}

// ResolveOptions controls matcher resolution.
type ResolveOptions struct {
	// Root is the scope every evaluation starts from.
	// Defaults to NewRootScope().
	Root *Scope
	// Logger receives debug events about skipped scripts and applied matchers.
	// Defaults to a disabled logger.
	Logger *zerolog.Logger
	// Parse is passed to every script and expression parse.
	Parse *ParseOptions
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation of matcher lines (default is two spaces).
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// Root is the scope names are checked against. Defaults to NewRootScope().
	Root *Scope
	// DisableUnmatchedCheck disables warnings for prefixes that match no entity.
	DisableUnmatchedCheck bool
	// DisableNameCheck disables checks of variable and function names.
	DisableNameCheck bool
	// DisableExpressionCheck disables parsing of per-entity expressions.
	DisableExpressionCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the ResolveOptions.
func (o *ResolveOptions) normalize() ResolveOptions {
	var out ResolveOptions
	if o != nil {
		out = *o
	}

	if out.Root == nil {
		out.Root = NewRootScope()
	}
	if out.Logger == nil {
		nop := zerolog.Nop()
		out.Logger = &nop
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "  "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "  "
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	var out ValidateOptions
	if o != nil {
		out = *o
	}

	if out.Root == nil {
		out.Root = NewRootScope()
	}

	return out
}
