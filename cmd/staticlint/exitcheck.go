package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// exitFuncs функции, завершающие процесс в обход отложенных вызовов
// (закрытие хранилища и graceful shutdown сервера).
//
//nolint:gochecknoglobals
var exitFuncs = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

// NoDirectExit проверяет, что функция main пакета main не завершает процесс напрямую
// через os.Exit или log.Fatal*.
//
//nolint:gochecknoglobals
var NoDirectExit = &analysis.Analyzer{
	Name:     "nodirectexit",
	Doc:      "check for direct os.Exit and log.Fatal calls in main function",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoDirectExit,
}

func runNoDirectExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		funcDecl, _ := n.(*ast.FuncDecl)
		if funcDecl.Name.Name != "main" || funcDecl.Recv != nil || funcDecl.Body == nil {
			return
		}
		// Пропускаем файлы из кэша сборки
		if strings.Contains(pass.Fset.Position(funcDecl.Pos()).Filename, "go-build") {
			return
		}

		ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
			// Замыкания внутри main выполняются отдельно, их не проверяем
			if _, isLit := n.(*ast.FuncLit); isLit {
				return false
			}
			callExpr, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			selExpr, ok := callExpr.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			ident, ok := selExpr.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
			if !ok {
				return true
			}
			path := pkgName.Imported().Path()
			if exitFuncs[path][selExpr.Sel.Name] {
				pass.Reportf(callExpr.Pos(), "direct call %s.%s is not allowed in main function", path, selExpr.Sel.Name)
			}
			return true
		})
	})

	return nil, nil //nolint:nilnil
}
