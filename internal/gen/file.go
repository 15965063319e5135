package gen

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/tools/imports"

	"codec-generator/internal/analyze"
)

// Header is the first line of every generated file.
const Header = "// Code generated by codec-generator. DO NOT EDIT."

var importOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: false,
}

// AssembleFile joins the functions of the given classes into one source
// file of package pkg. Unused imports are pruned and standard library
// imports referenced only by override text are added. On failure the
// unprocessed source is returned together with the error.
func AssembleFile(pkg *analyze.PackageInfo, classes []*ClassResult) ([]byte, error) {
	var paths []string
	for _, c := range classes {
		paths = append(paths, c.Imports...)
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)

	var buf bytes.Buffer

	buf.WriteString(Header)
	buf.WriteString("\n\npackage ")
	buf.WriteString(pkg.Name)
	buf.WriteString("\n\n")

	if len(paths) > 0 {
		buf.WriteString("import (\n")

		for _, p := range paths {
			if p == pkg.Path {
				continue
			}

			buf.WriteString("\t")
			buf.WriteString(strconv.Quote(p))
			buf.WriteString("\n")
		}

		buf.WriteString(")\n")
	}

	for _, c := range classes {
		for _, fn := range c.Functions {
			buf.WriteString("\n")
			buf.Write(fn.Source)
		}
	}

	src := buf.Bytes()

	out, err := imports.Process(pkg.Name+".go", src, importOptions)
	if err != nil {
		return src, fmt.Errorf("formatting %s: %w (unformatted code returned)", pkg.Path, err)
	}

	return out, nil
}
