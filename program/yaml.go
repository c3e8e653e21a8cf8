package program

import (
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a rule, recording its source line.
func (rule *RuleDef) UnmarshalYAML(value *yaml.Node) (err error) {
	type plain RuleDef

	var decoded plain
	err = value.Decode(&decoded)
	if err != nil {
		return
	}

	*rule = RuleDef(decoded)
	rule.Line = value.Line

	return
}

// ParseYAML parses a YAML definition:
//
//	name: 2-state, 2-symbol busy beaver
//	initial: A
//	head: 2
//	rules:
//	  - {state: A, read: _, write: 1, move: R, next: B}
//	  - {state: A, read: 1, write: 1, move: L, next: B}
//	  - {state: B, read: _, write: 1, move: L, next: A}
//	  - {state: B, read: 1, write: 1, move: R, next: halt}
func ParseYAML(source string, input io.Reader, opts Options) (prog *Program, err error) {
	var def Definition

	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	err = decoder.Decode(&def)
	if err != nil {
		err = &ErrSyntax{Source: source, Err: err}
		return
	}

	return def.Compile(source, opts)
}
