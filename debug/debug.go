package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Containers bool
	Format     bool
	Visit      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Containers = boolEnv("JSONENC_DEBUG_CONTAINERS")
	d.Format = boolEnv("JSONENC_DEBUG_FORMAT")
	d.Visit = boolEnv("JSONENC_DEBUG_VISIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Containers() bool {
	return d.Containers
}
func Format() bool {
	return d.Format
}
func Visit() bool {
	return d.Visit
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Marshaler:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
