/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Text source loader for the Tablesniff detector. Supplies decoded
text given a local file path or an HTTP/HTTPS URL, stripping a UTF-8 byte
order mark and falling back to Latin-1 decoding for non-UTF-8 bytes. Read
failures surface as typed InputReadError values, never retried here.
*/

package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// InputReadError reports a failure to load the source text. The CLI maps it
// to exit code 2.
type InputReadError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read input %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputReadError) Unwrap() error {
	return e.Err
}

// Loader fetches and decodes source text.
type Loader struct {
	// Timeout applies to URL fetches only.
	Timeout time.Duration
}

// NewLoader returns a loader with a 30s URL fetch timeout.
func NewLoader() *Loader {
	return &Loader{Timeout: 30 * time.Second}
}

// Load is shorthand for NewLoader().Load.
func Load(source string) (string, error) {
	return NewLoader().Load(source)
}

// Load fetches source, which is either a local file path or an http(s) URL,
// and returns decoded text. The detection core assumes this text is already
// a decoded sequence of characters.
func (l *Loader) Load(source string) (string, error) {
	var data []byte

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: l.Timeout}
		resp, err := client.Get(source)
		if err != nil {
			return "", &InputReadError{Source: source, Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", &InputReadError{Source: source, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return "", &InputReadError{Source: source, Err: err}
		}
	} else {
		var err error
		data, err = os.ReadFile(source)
		if err != nil {
			return "", &InputReadError{Source: source, Err: err}
		}
	}

	return Decode(data), nil
}

// utf8BOM is the byte order mark some tools prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw bytes to text: the UTF-8 BOM is stripped, valid UTF-8
// passes through unchanged, and anything else is decoded as Latin-1 so every
// input yields some character sequence for the detector to work on.
func Decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
