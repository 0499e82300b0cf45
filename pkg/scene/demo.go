package scene

import (
	_ "embed"
	"fmt"
)

//go:embed demo.yaml
var demoScene []byte

// Demo returns the built-in reactor scene shown when no file is given
func Demo() *Description {
	desc, err := Parse(demoScene)
	if err != nil {
		panic(fmt.Sprintf("embedded demo scene is invalid: %v", err))
	}
	return desc
}
