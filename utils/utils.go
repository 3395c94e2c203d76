package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// PrettyPrint outputs v to w as JSON with indentation
func PrettyPrint(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode output")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// IsDir reports whether path exists and is a directory.
// Errors other than "not exist" are returned to the caller.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ExecutableName appends the platform executable suffix to name.
func ExecutableName(name string) string {
	if filepath.Ext(name) == "" && executableSuffix != "" {
		return name + executableSuffix
	}
	return name
}
