// Command staticlint запускает набор статических анализаторов для проекта.
//
// Состав:
//   - стандартные анализаторы golang.org/x/tools/go/analysis/passes;
//   - все анализаторы класса SA из staticcheck и выбранные из simple, stylecheck и quickfix;
//   - nilerr: возврат nil вместо проверенной ошибки;
//   - bodyclose: незакрытое тело http.Response;
//   - noosexit: прямой вызов os.Exit в функции main пакета main.
//
// Запуск: go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// extraChecks анализаторы вне класса SA
var extraChecks = map[string]bool{
	"S1000":  true,
	"S1002":  true,
	"ST1005": true,
	"ST1019": true,
	"QF1003": true,
}

func main() {
	analyzers := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		nilerr.Analyzer,
		bodyclose.Analyzer,
		OsExitAnalyzer,
	}

	for _, v := range staticcheck.Analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") {
			analyzers = append(analyzers, v.Analyzer)
		}
	}

	for _, group := range [][]*lint.Analyzer{simple.Analyzers, stylecheck.Analyzers, quickfix.Analyzers} {
		for _, v := range group {
			if extraChecks[v.Analyzer.Name] {
				analyzers = append(analyzers, v.Analyzer)
			}
		}
	}

	multichecker.Main(analyzers...)
}
