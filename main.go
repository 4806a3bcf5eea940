package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/3ajes/URL/internal/engine"
	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/output"
)

func main() {
	if len(os.Args) < 2 || strings.TrimSpace(os.Args[1]) == "" {
		fmt.Printf("usage: %s <url>\n", os.Args[0])
		os.Exit(1)
	}
	res, events := engine.Default().Scan(os.Args[1])
	output.PrintReport(model.Report{Result: res, Trace: events})
}
