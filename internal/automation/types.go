package automation

import "fmt"

// Result is the user visible outcome of one automation action.
type Result struct {
	OK      bool
	Message string
}

// Config holds the automation settings that are not launcher specific.
type Config struct {
	DataDir  string
	Username string
	// Browser is never closed by CloseApp.
	Browser string
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}
