package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Generate bool
	Equal    bool
	Number   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Generate = boolEnv("JCS_DEBUG_GENERATE")
	d.Equal = boolEnv("JCS_DEBUG_EQUAL")
	d.Number = boolEnv("JCS_DEBUG_NUMBER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Generate() bool {
	return d.Generate
}
func Equal() bool {
	return d.Equal
}
func Number() bool {
	return d.Number
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
