package models

import "time"

// ConversionRequest is one press of the Convert button on a category screen
type ConversionRequest struct {
	Category string
	Input    string
	From     string
	To       string
}

// BaseRequest is one press of the Convert button on the base converter
type BaseRequest struct {
	Input    string
	FromBase int
	ToBase   int
}

// ConversionResult is what the screen displays after a conversion.
// Text is always set; Failed marks results that replaced the value
// with an error message.
type ConversionResult struct {
	Category  string
	Input     string
	From      string
	To        string
	Value     float64
	Text      string
	Failed    bool
	Timestamp time.Time
}

// Summary renders the result as a single history line
func (r ConversionResult) Summary() string {
	if r.Failed {
		return r.Category + ": " + r.Text
	}
	return r.Category + ": " + r.Input + " " + r.From + " → " + trimResultPrefix(r.Text)
}

func trimResultPrefix(text string) string {
	const prefix = "Result: "
	if len(text) >= len(prefix) && text[:len(prefix)] == prefix {
		return text[len(prefix):]
	}
	return text
}
