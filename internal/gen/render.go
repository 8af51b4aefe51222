package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/xraph/berth"
)

const berthImport = "github.com/xraph/berth"

// Header marks generated files; Parse skips files carrying it.
const Header = "// Code generated by berthgen. DO NOT EDIT.\n"

var lifetimeIdents = map[berth.Lifetime]string{
	berth.Singleton: "berth.Singleton",
	berth.Scoped:    "berth.Scoped",
	berth.Transient: "berth.Transient",
}

// Render produces the gofmt-ed source of a file whose init declares the
// contracts and implementations of pkg.
func Render(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer

	printf := func(format string, args ...any) {
		fmt.Fprintf(&buf, format, args...)
	}

	printf("%s\n", Header)
	printf("package %s\n\n", pkg.Name)

	printf("import (\n")
	printf("\t%q\n", berthImport)
	for _, spec := range pkg.importSpecs() {
		printf("\t%s\n", spec)
	}
	printf(")\n\n")

	printf("func init() {\n")
	for _, contract := range pkg.Contracts {
		printf("\tberth.DeclareContract[%s]()\n", contract)
	}

	if len(pkg.Implementations) > 0 {
		if len(pkg.Contracts) > 0 {
			printf("\n")
		}

		printf("\tberth.DeclareAll(\n")
		for _, impl := range pkg.Implementations {
			printf("\t\tberth.Type[%s](\n", impl.TypeExpr())
			for _, marker := range impl.Markers {
				printf("\t\t\tberth.Mark(%s),\n", markerOptions(marker))
			}
			for _, base := range impl.BaseExprs() {
				printf("\t\t\tberth.Base[%s](),\n", base)
			}
			printf("\t\t),\n")
		}
		printf("\t)\n")
	}
	printf("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", pkg.Name, err)
	}

	return src, nil
}

func markerOptions(marker MarkerSpec) string {
	var opts []string

	if marker.Contract != "" {
		opts = append(opts, "berth.As["+marker.Contract+"]()")
	}

	opts = append(opts, "berth.WithLifetime("+lifetimeIdents[marker.Lifetime]+")")

	return strings.Join(opts, ", ")
}
