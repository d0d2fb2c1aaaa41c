package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber turns the 1-based position shown by "goals list" into an
// index.
func ParseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a goal number, see \"goals list\"", arg)
	}
	return n - 1, nil
}
