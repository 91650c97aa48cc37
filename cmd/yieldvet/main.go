// Command yieldvet reports producers which discard the errors returned by
// yielder bridges.
//
//	go vet -vettool=$(which yieldvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/dispatchrun/yielder/analysis/yieldcheck"
)

func main() { singlechecker.Main(yieldcheck.Analyzer) }
