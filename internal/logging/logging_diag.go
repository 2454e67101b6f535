package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Strips the date / time prefix the file loggers put in front of each line.
var logPrefixPattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}\s\d{2}:\d{2}:\d{2}\s`)

// Scans today's error log file and returns a printable summary of every
// error found, or an empty string when the file is clean.
//
// Used by diagnosis mode only.
func CheckErrorLogs(logsDir string) (string, error) {
	if !logsDirExist(logsDir) {
		return "", errors.New("logs directory does not exist")
	}

	f, err := loadErrorLog(logsDir)
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(f)

	foundErrs := []string{}
	for scanner.Scan() {
		foundErrs = append(foundErrs, logPrefixPattern.ReplaceAllString(scanner.Text(), ""))
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	res := fmt.Sprintf("\nFound %d error(s) in error log file.\nThe following errors have been found:\n\n%s", len(foundErrs), strings.Join(foundErrs, "\n"))

	if len(foundErrs) == 0 {
		res = ""
	}

	return res, f.Close()
}

func logsDirExist(logsDir string) bool {
	_, err := os.Stat(logsDir)
	return !os.IsNotExist(err)
}

func loadErrorLog(logsDir string) (*os.File, error) {
	return os.Open(fmt.Sprintf("%s/error_%s.log", logsDir, formatDate))
}
