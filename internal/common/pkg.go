package common

import (
	"path"
	"strings"
)

// PkgAlias guesses the package name of an import path from its last
// element. Major version suffixes are skipped ("example.com/lib/v2" is
// "lib") and gopkg.in style versions are trimmed ("gopkg.in/yaml.v3" is
// "yaml"). Returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	if i := strings.Index(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}

	return base
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
