package nandoku

import "log"

var verboseMode bool

// SetVerbose toggles verbose pipeline logging (cache hits, backend
// responses, retry attempts).
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// VerboseLog logs only when verbose mode is enabled.
func VerboseLog(format string, v ...interface{}) {
	if verboseMode {
		log.Printf(format, v...)
	}
}
