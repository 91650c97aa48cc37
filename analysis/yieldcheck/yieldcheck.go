// Package yieldcheck defines an analyzer reporting producers which ignore the
// error returned by a yielder.Bridge.
//
// The error returned by Yield is how the consumer side of a bridge asks the
// producer to stop. A producer which drops it keeps running after it was
// stopped, and in the case of the enumerator package it keeps burning CPU
// while its values are thrown away.
package yieldcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `check that errors returned by yielder bridges are not discarded

The yieldcheck analyzer reports calls to (*yielder.Bridge).Yield, Append and
Initialize, and to yielder.New, whose error result is dropped, either because
the call is used as a statement or because the error is assigned to the blank
identifier.`

// Analyzer is the yieldcheck analyzer.
var Analyzer = &analysis.Analyzer{
	Name:     "yieldcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// PackagePath is the import path of the package whose calls are checked.
const PackagePath = "github.com/dispatchrun/yielder"

var bridgeMethods = map[string]bool{
	"Yield":      true,
	"Append":     true,
	"Initialize": true,
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.ExprStmt:
			call, ok := astutil.Unparen(n.X).(*ast.CallExpr)
			if !ok {
				return
			}
			if name := calleeName(pass.TypesInfo, call); name != "" {
				pass.Reportf(call.Pos(), "error returned by %s is not checked", name)
			}

		case *ast.AssignStmt:
			if len(n.Rhs) != 1 {
				return
			}
			call, ok := astutil.Unparen(n.Rhs[0]).(*ast.CallExpr)
			if !ok {
				return
			}
			name := calleeName(pass.TypesInfo, call)
			if name == "" {
				return
			}
			if id, ok := n.Lhs[len(n.Lhs)-1].(*ast.Ident); ok && id.Name == "_" {
				pass.Reportf(call.Pos(), "error returned by %s is assigned to the blank identifier", name)
			}
		}
	})

	return nil, nil
}

// calleeName returns the name used in diagnostics for call, or the empty
// string if call does not need to be checked.
func calleeName(info *types.Info, call *ast.CallExpr) string {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PackagePath {
		return ""
	}

	sig := fn.Type().(*types.Signature)
	recv := sig.Recv()
	if recv == nil {
		if fn.Name() == "New" {
			return "yielder.New"
		}
		return ""
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Name() != "Bridge" || !bridgeMethods[fn.Name()] {
		return ""
	}
	return "(*yielder.Bridge)." + fn.Name()
}
