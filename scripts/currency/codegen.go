package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

func main() {
	recs, err := readRecords(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading currency table: %w", err))
	}

	currs, err := toCurrencies(recs)
	if err != nil {
		panic(fmt.Errorf("converting currency table: %w", err))
	}

	code, err := render(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("rendering currency table: %w", err))
	}

	if err := os.WriteFile("currency_data.go", code, 0o644); err != nil { //nolint:gosec
		panic(fmt.Errorf("writing currency table: %w", err))
	}
}

func readRecords(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// rank keeps XXX at index 0, so that the zero value of Currency is XXX,
// and XTS right after it.
func rank(code string) int {
	switch code {
	case "XXX":
		return 0
	case "XTS":
		return 1
	}
	return 2
}

func toCurrencies(recs [][]string) ([]currency, error) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i][1], recs[j][1]
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})

	currs := make([]currency, 0, len(recs))
	for _, rec := range recs {
		if len(rec) != 4 {
			return nil, fmt.Errorf("record %v: want 4 fields, got %v", rec, len(rec))
		}
		scale, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("record %v: %w", rec, err)
		}
		if scale < 0 || scale > 9 {
			return nil, fmt.Errorf("record %v: scale %v out of range", rec, scale)
		}
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: scale,
		})
	}
	return currs, nil
}

func render(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, currs); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}
