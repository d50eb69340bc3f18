package easydata

import (
	"github.com/stoewer/go-strcase"
)

// Field namers for use with WithFieldNamer.
var (
	SnakeCaseFields      = strcase.SnakeCase
	LowerCamelCaseFields = strcase.LowerCamelCase
	KebabCaseFields      = strcase.KebabCase
)
