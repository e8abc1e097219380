package cli

import (
	"fmt"
	"strconv"
)

// parseHabitID parses the <id> argument shared by several commands
func parseHabitID(args []string) (uint64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing habit id, see 'habitsync list'")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid habit id %q", args[0])
	}
	return id, nil
}

// optionalDate returns the optional [date] argument, empty for today
func optionalDate(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
