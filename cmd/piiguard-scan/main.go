package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/adrian-lorenz/pii-guard/internal/config"
	"github.com/adrian-lorenz/pii-guard/internal/logging"
	"github.com/adrian-lorenz/pii-guard/internal/pii"
	"github.com/adrian-lorenz/pii-guard/internal/scanner"
)

func main() {
	os.Exit(run())
}

func run() int {
	textFlag := flag.String("text", "", "inline text to scan")
	fileFlag := flag.String("file", "", "path to file to scan")
	configFlag := flag.String("config", "", "path to config YAML file")
	jsonFlag := flag.Bool("json", false, "output structured JSON")
	flag.Parse()

	text, err := readInput(*textFlag, *fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var cfg *config.Config
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			return 2
		}
	} else {
		cfg = config.DefaultConfig()
	}

	logger := logging.New(cfg.Logging.Level, os.Stderr)

	s, err := scanner.New(
		scanner.WithExtraWhitelistNames(cfg.Scanner.ExtraWhitelistNames),
		scanner.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building scanner: %v\n", err)
		return 2
	}
	for _, name := range cfg.Scanner.DisabledTypes {
		s.DisableDetector(pii.PiiType(name))
	}

	result := s.Scan(text)

	if *jsonFlag {
		return outputJSON(result)
	}
	return outputPretty(result, isTerminal())
}

func readInput(textFlag, fileFlag string) (string, error) {
	switch {
	case textFlag != "":
		return textFlag, nil
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), nil
	default:
		stat, err := os.Stdin.Stat()
		if err != nil {
			return "", fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("no input provided (use --text, --file, or pipe to stdin)")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func outputJSON(result pii.ScanResult) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding JSON: %v\n", err)
		return 2
	}
	if len(result.Findings) > 0 {
		return 1
	}
	return 0
}

// ANSI color codes.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
)

func typeColor(typ pii.PiiType) string {
	switch typ {
	case pii.Name:
		return colorMagenta
	case pii.Phone:
		return colorYellow
	case pii.Email, pii.URLSecret:
		return colorCyan
	case pii.Secret, pii.CreditCard:
		return colorRed
	case pii.Address, pii.IBAN:
		return colorGreen
	default:
		return colorBlue
	}
}

func outputPretty(result pii.ScanResult, useColor bool) int {
	count := len(result.Findings)

	header := fmt.Sprintf("─── ORIGINAL (%d findings) ", count)
	header += strings.Repeat("─", max(0, 56-len(header)))
	if useColor {
		fmt.Printf("%s%s%s\n", colorBold, header, colorReset)
	} else {
		fmt.Println(header)
	}

	if useColor && count > 0 {
		fmt.Println(highlightFindings(result.OriginalText, result.Findings))
	} else {
		fmt.Println(result.OriginalText)
	}

	fmt.Println()
	anonHeader := "─── ANONYMISED " + strings.Repeat("─", 41)
	if useColor {
		fmt.Printf("%s%s%s\n", colorBold, anonHeader, colorReset)
	} else {
		fmt.Println(anonHeader)
	}
	fmt.Println(result.AnonymisedText)

	if count > 0 {
		fmt.Println()
		statsHeader := "─── STATISTICS " + strings.Repeat("─", 41)
		if useColor {
			fmt.Printf("%s%s%s\n", colorBold, statsHeader, colorReset)
		} else {
			fmt.Println(statsHeader)
		}
		fmt.Printf("Redacted: %d\n\n", count)

		typeCounts := make(map[pii.PiiType]int)
		for _, f := range result.Findings {
			typeCounts[f.Type]++
		}
		types := make([]string, 0, len(typeCounts))
		for t := range typeCounts {
			types = append(types, string(t))
		}
		sort.Strings(types)

		fmt.Printf("  %-16s %s\n", "Type", "Count")
		for _, t := range types {
			typ := pii.PiiType(t)
			if useColor {
				fmt.Printf("  %s%-16s%s %d\n", typeColor(typ), t, colorReset, typeCounts[typ])
			} else {
				fmt.Printf("  %-16s %d\n", t, typeCounts[typ])
			}
		}
	}

	fmt.Println()

	if count > 0 {
		return 1
	}
	return 0
}

func highlightFindings(text string, findings []pii.Finding) string {
	if len(findings) == 0 {
		return text
	}

	sorted := make([]pii.Finding, len(findings))
	copy(sorted, findings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var buf strings.Builder
	lastEnd := 0
	for _, f := range sorted {
		if f.Start < lastEnd {
			continue
		}
		buf.WriteString(text[lastEnd:f.Start])
		buf.WriteString(typeColor(f.Type))
		buf.WriteString(colorBold)
		buf.WriteString(text[f.Start:f.End])
		buf.WriteString(colorReset)
		lastEnd = f.End
	}
	buf.WriteString(text[lastEnd:])
	return buf.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
