package services

import (
	"fmt"
	"os"
	"time"
)

const reportTimeLayout = "02/01/2006-15:04:05"

func reportTimestamp(at time.Time) string {
	return at.Format(reportTimeLayout)
}

// appendReportLines writes to the plain-text report files the cron jobs keep
// alongside the structured log. The file is created on first use and only ever
// appended to.
func appendReportLines(path string, lines ...string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}

	return nil
}
