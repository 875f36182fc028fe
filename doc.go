// File: miniconf/doc.go

// Package miniconf provides a small configuration/argument-definition
// engine: a program declares named options (flag, short flag, default,
// required, description), then the engine resolves concrete values from a
// config file and command-line tokens, validates them and can serialize the
// result back out.
//
// Features:
//   - Dotted hierarchical flags ("part1.value2") resolved against nested
//     file trees and flat CLI tokens
//   - Scalar values typed by each option's default (int, float, bool, string)
//   - Config file merge (JSON, TOML, YAML, flat CSV) below CLI precedence
//   - Boolean presence flags with optional explicit values
//   - Format and post-parse validation with an inspectable diagnostic log
//   - Struct decoding of subtrees via mapstructure
//   - Automatic --help/-h and --config/-cfg handling
//
// Quick Start:
//
//	conf := miniconf.New()
//	conf.SetDescription("demo application")
//	conf.Option("server.port").ShortFlag("p").DefaultInt(8080).Description("listen port")
//	conf.Option("verbose").ShortFlag("v").DefaultBool(false).Description("chatty output")
//
//	if !conf.Parse(os.Args) {
//		fmt.Print(conf.LogString())
//		os.Exit(1)
//	}
//
//	port, _ := conf.GetInt("server.port")
//
// Values resolve in precedence order: declared defaults, then a config file
// named by --config, then the command-line tokens themselves.
package miniconf
