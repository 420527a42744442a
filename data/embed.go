package data

import _ "embed"

//go:embed help.en.template
var HelpTemplate string

//go:embed captions.en.json
var CaptionsJSON []byte
