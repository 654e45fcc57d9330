// Package aiparse pulls structured JSON out of free-form generative model output.
package aiparse

import (
	"healthportal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

type ParseStatus string

const (
	StatusParsed   ParseStatus = constvars.ParseStatusParsed
	StatusFallback ParseStatus = constvars.ParseStatusFallback
)

var (
	fencedBlock = regexp.MustCompile(constvars.RegexFencedJSONBlock)
	braceSpan   = regexp.MustCompile(constvars.RegexBraceDelimitedObj)
)

// ExtractJSON returns the JSON candidate inside text. A fenced block wins over
// the widest brace-delimited span.
func ExtractJSON(text string) (string, bool) {
	if match := fencedBlock.FindStringSubmatch(text); len(match) == 2 {
		candidate := strings.TrimSpace(match[1])
		if candidate != "" {
			return candidate, true
		}
	}
	if match := braceSpan.FindString(text); match != "" {
		return match, true
	}
	return "", false
}

// Decode fills dst from the JSON found in text. dst must be a non-nil pointer.
// It never fails: when no candidate parses, dst keeps whatever it held before
// the call.
func Decode(text string, dst interface{}) ParseStatus {
	candidate, ok := ExtractJSON(text)
	if !ok {
		return StatusFallback
	}
	if !json.Valid([]byte(candidate)) {
		return StatusFallback
	}

	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return StatusFallback
	}
	// The copy is a deep one so slices in dst are not written through.
	scratch := reflect.New(target.Elem().Type())
	current, err := json.Marshal(dst)
	if err != nil {
		return StatusFallback
	}
	if err := json.Unmarshal(current, scratch.Interface()); err != nil {
		return StatusFallback
	}
	if err := json.Unmarshal([]byte(candidate), scratch.Interface()); err != nil {
		return StatusFallback
	}
	target.Elem().Set(scratch.Elem())
	return StatusParsed
}
