// Package templates contains the embedded files written by "basics init".
package templates

import (
	_ "embed"
)

//go:embed basics.template.yaml

// ConfigYAML contains the embedded configuration template.
var ConfigYAML []byte

//go:embed env.template

// EnvFile contains the embedded environment file template.
var EnvFile []byte
