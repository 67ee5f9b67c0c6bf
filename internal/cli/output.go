package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it tagged with exitCode
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: exitCode, Err: err, Reported: true}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.out(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
