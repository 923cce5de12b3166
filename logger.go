package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hako/durafmt"
	"golang.org/x/time/rate"

	"tweakdock/dock"
)

var (
	errorLogger  *log.Logger
	errorLogPath string
	errorLogOnce sync.Once

	debugLogger  *log.Logger
	debugLogPath string
	debugLogOnce sync.Once

	// valueLogLimiter throttles slider change lines while a thumb is dragged.
	valueLogLimiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 1)

	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
)

func setupLogging(debug bool) {
	logDir := "logs"
	if !isWASM {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
		}
	}
	ts := time.Now().Format("20060102-150405")

	errorLogPath = filepath.Join(logDir, fmt.Sprintf("error-%s.log", ts))
	errorLogOnce = sync.Once{}
	errorLogger = log.New(os.Stdout, "", log.LstdFlags)
	log.SetOutput(errorLogger.Writer())

	setDebugLogging(debug)
}

// openErrorLog creates the error log file on first use, so clean runs
// leave nothing behind.
func openErrorLog() {
	errorLogOnce.Do(func() {
		if isWASM {
			return
		}
		if f, err := os.Create(errorLogPath); err == nil {
			errorLogger.SetOutput(io.MultiWriter(os.Stdout, f))
			log.SetOutput(errorLogger.Writer())
		}
	})
}

func logError(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	openErrorLog()
	errorLogger.Printf(format, v...)
}

func logWarn(format string, v ...interface{}) {
	if errorLogger == nil {
		return
	}
	openErrorLog()
	errorLogger.Printf("warning: %s", fmt.Sprintf(format, v...))
}

func logDebug(format string, v ...interface{}) {
	if debugLogger == nil {
		return
	}
	debugLogOnce.Do(func() {
		if isWASM {
			return
		}
		if f, err := os.Create(debugLogPath); err == nil {
			debugLogger.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	})
	debugLogger.Printf(format, v...)
}

func setDebugLogging(enabled bool) {
	if enabled {
		logDir := "logs"
		if err := os.MkdirAll(logDir, 0755); err != nil {
			log.Printf("could not create log directory: %v", err)
		}
		ts := time.Now().Format("20060102-150405")
		debugLogPath = filepath.Join(logDir, fmt.Sprintf("debug-%s.log", ts))
		debugLogOnce = sync.Once{}
		debugLogger = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		debugLogger = nil
	}
}

// logTransition records panel state changes.
func logTransition(tr dock.Transition) {
	if debugLogger == nil {
		return
	}
	msg := fmt.Sprintf("panel %s -> %s", tr.From, tr.To)
	if tr.Collapsed {
		msg += " at " + tr.Anchor.String()
	}
	if tr.Elapsed > 0 {
		msg += " after " + formatElapsed(tr.Elapsed)
	}
	logDebug("%s", msg)
}

func formatElapsed(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// logValueChange records a slider edit, at most a few times a second.
func logValueChange(p *dock.Parameter) {
	if debugLogger == nil || !valueLogLimiter.Allow() {
		return
	}
	logDebug("%s = %v", p.Title(), p.Value())
}
