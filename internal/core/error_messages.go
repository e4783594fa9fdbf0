// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. Only whole-view failures ever reach users: ingestion, filtering
// and sorting absorb anomalies instead of failing.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Data unavailable: A risk dataset could not be read
//	         Action: Check that both dataset files are present and readable
//	         Patterns: "source not found", "no such file", "permission denied"
//
//	SRC002 - Load failed: The report data could not be loaded
//	         Action: Please try again in a few moments
//	         Patterns: "load snapshot"
//
// # Dataset Errors (DS001-DS099)
//
//	DS001 - Unknown dataset: The requested dataset does not exist
//	        Action: Pick one of the report tabs
//	        Patterns: "unknown dataset"
//
// # Export Errors (EXP001-EXP099)
//
//	EXP001 - Export failed: The spreadsheet could not be generated
//	         Action: Please try again or narrow the filters
//	         Patterns: "export"
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Connection refused: Unable to connect to database
//	DB002 - Connection reset: Database connection was interrupted
//	DB003 - Timeout: Operation timed out
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled: Request was cancelled
//	REQ002 - Request timeout: Request timed out
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check application logs for the
// original technical error.
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns come first.

package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDataset is returned for a dataset key that is not registered.
	ErrUnknownDataset = errors.New("unknown dataset")
	// ErrSourceNotFound is returned by sources that have no data for a name.
	ErrSourceNotFound = errors.New("source not found")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgDataUnavailable = UserMessage{
		Message: "A risk dataset could not be read",
		Action:  "Check that both dataset files are present and readable",
		Code:    "SRC001",
	}
	msgRequestCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Order matters: context errors are checked before the generic load and
// export patterns that usually wrap them.
var errorPatterns = []errorPattern{
	{pattern: "context canceled", msg: msgRequestCancelled},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},

	{pattern: "source not found", msg: msgDataUnavailable},
	{pattern: "no such file", msg: msgDataUnavailable},
	{pattern: "permission denied", msg: msgDataUnavailable},

	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},

	{
		pattern: "unknown dataset",
		msg: UserMessage{
			Message: "The requested dataset does not exist",
			Action:  "Pick one of the report tabs",
			Code:    "DS001",
		},
	},
	{
		pattern: "load snapshot",
		msg: UserMessage{
			Message: "Failed to load data",
			Action:  "Please try again in a few moments",
			Code:    "SRC002",
		},
	},
	{
		pattern: "export",
		msg: UserMessage{
			Message: "The spreadsheet could not be generated",
			Action:  "Please try again or narrow the filters",
			Code:    "EXP001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
