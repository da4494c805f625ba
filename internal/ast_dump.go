package internal

import (
	"github.com/sanity-io/litter"
)

// DumpAST renders a parsed program's statement list with litter; it
// backs the -ast debug flag.
func DumpAST(stmts []stmt) string {
	return litter.Sdump(stmts)
}
