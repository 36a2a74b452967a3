package cmd

import "strings"

// splitErrors breaks an errors.Join result (as produced by
// ValidationErrors.ErrorOrNil) back into its one-line-per-problem form
// for terminal output.
func splitErrors(err error) []string {
	if err == nil {
		return nil
	}
	return strings.Split(err.Error(), "\n")
}
