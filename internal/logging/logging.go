package logging

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
)

// All of these vars will be assigned automatically, do not modify!
var (
	// "✓" in green
	SuccessSign = color.GreenString("✓")
	// "i" in yellow
	InfoSign = color.YellowString("i")
	// "x" in red
	ErrorSign = color.RedString("x")
	// "!" in magenta
	WarnSign = color.MagentaString("!")

	// # NOTE: Do not modify manually!
	logDir      = ""
	currentDate = time.Now().Local()
	// y_m_d - does not display time
	formatDate = fmt.Sprintf("%d_%d_%d", currentDate.Year(), currentDate.Month(), currentDate.Day())

	// # NOTE: Do not modify manually!
	openLogFiles []*os.File

	// Logger used to write to app.log file.
	appLogger *log.Logger
	// Logger used to write to error.log file.
	errorLogger *log.Logger

	// Logger used to write to stdout.
	consoleInfoLogger *log.Logger
	// Logger used to write to stderr.
	consoleErrorLogger *log.Logger
)

// Creates a directory with specified name and stores the name in a variable.
//
// Returns a nil error if the directory already exists.
func CreateLogsDirectory(dir string) error {
	logDir = dir
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

// Creates the app.log and error.log file depending on date.
//
// Appends to files if they already exist.
func CreateFileLoggers() error {
	if logDir == "" {
		return errors.New("logDir not set")
	}

	appLog := fmt.Sprintf("%s/app_%s.log", logDir, formatDate)
	errorLog := fmt.Sprintf("%s/error_%s.log", logDir, formatDate)

	appLogFile, err := os.OpenFile(appLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return err
	}

	errorLogFile, err := os.OpenFile(errorLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.ModePerm)
	if err != nil {
		return err
	}

	openLogFiles = append(openLogFiles, appLogFile)
	openLogFiles = append(openLogFiles, errorLogFile)

	appLogger = log.New(appLogFile, "", log.LstdFlags)
	errorLogger = log.New(errorLogFile, "", log.LstdFlags)

	return nil
}

// Creates the loggers for console logging.
//
// # NOTE: They will not work after closing the log files.
func CreateConsoleLoggers() {
	consoleInfoLogger = log.New(os.Stdout, "", log.LstdFlags)
	consoleErrorLogger = log.New(os.Stderr, "", log.LstdFlags)
}

// Writes a message to os.Stdout and the app.log file.
//
// Prepends the InfoSign to signalise it's an info log process.
//
// Writers which have not been created yet are skipped silently.
func WriteInfo(message interface{}) {
	if appLogger != nil {
		appLogger.Println(message)
	}
	if consoleInfoLogger != nil {
		consoleInfoLogger.Printf("[%s] %v\n", InfoSign, message)
	}
}

// Writes a message to os.Stdout and the app.log file.
//
// Prepends the SuccessSign to signalise it's a success log process.
func WriteSuccess(message interface{}) {
	if appLogger != nil {
		appLogger.Println(message)
	}
	if consoleInfoLogger != nil {
		consoleInfoLogger.Printf("[%s] %v\n", SuccessSign, message)
	}
}

// Writes a message to os.Stderr and the error.log file.
//
// # NOTE: does not shutdown the app, use default log.Fatal or os.Exit(1) for that
func WriteError(message interface{}) {
	if errorLogger != nil {
		errorLogger.Println(message)
	}
	if consoleErrorLogger != nil {
		consoleErrorLogger.Printf("[%s] %v\n", ErrorSign, message)
	}
}

// Writes a message to os.Stdout and the app.log file.
//
// # NOTE: does not shutdown the app, use default log.Fatal or os.Exit(1) for that
func WriteWarn(message interface{}) {
	if appLogger != nil {
		appLogger.Println(message)
	}
	if consoleInfoLogger != nil {
		consoleInfoLogger.Printf("[%s] %v\n", WarnSign, message)
	}
}

// This function closes every open log file and logger.
//
// # NOTE: only use it on app exit, else it might kill the app.
func CloseLogFiles() error {
	for _, f := range openLogFiles {
		err := f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
