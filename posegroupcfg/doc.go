// Package posegroupcfg holds the grouping engine's Config: the ordered
// part-name/edge skeleton topology plus the numeric thresholds of
// spec.md §6, resolved and validated once per skeleton definition rather
// than once per frame.
//
// Config is built through a functional-options constructor in the
// teacher's builder.BuilderOption idiom (options mutate a private config
// struct in order, later options win), then Validate resolves edge names
// to channel indices and runs the ConfigError taxonomy of spec.md §7.
package posegroupcfg
