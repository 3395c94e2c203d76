package java

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Release is the metadata from the release file at the root of a home.
type Release struct {
	JavaVersion string            `json:"javaVersion"`
	Implementor string            `json:"implementor,omitempty"`
	OSName      string            `json:"osName,omitempty"`
	OSArch      string            `json:"osArch,omitempty"`
	Values      map[string]string `json:"values"`
}

// Release reads <home>/release.
func (h *Home) Release() (*Release, error) {
	path := h.Join("release")
	values, err := godotenv.Read(path)
	if os.IsNotExist(errors.Cause(err)) {
		return nil, &BadHomePathError{Path: h.Path}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	return &Release{
		JavaVersion: values["JAVA_VERSION"],
		Implementor: values["IMPLEMENTOR"],
		OSName:      values["OS_NAME"],
		OSArch:      values["OS_ARCH"],
		Values:      values,
	}, nil
}

// Version parses JAVA_VERSION.
func (r *Release) Version() (*Version, error) {
	if r.JavaVersion == "" {
		return nil, errors.New("release file has no JAVA_VERSION")
	}
	return ParseVersion(r.JavaVersion)
}

// Version returns the version recorded in the home's release file.
func (h *Home) Version() (*Version, error) {
	release, err := h.Release()
	if err != nil {
		return nil, err
	}
	return release.Version()
}
